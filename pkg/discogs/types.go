package discogs

// Image is a picture attached to a release, artist or label.
type Image struct {
	Type     string `json:"type"` // "primary" or "secondary"
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	URL      string `json:"url"`
	ThumbURL string `json:"thumb_url"`
}

// Credit is an artist credited on a release or track with a role.
type Credit struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// ReleaseArtist is a main artist of a release.
type ReleaseArtist struct {
	Name string `json:"name"`
}

// ReleaseLabel is a label a release was issued on.
type ReleaseLabel struct {
	Name  string `json:"name"`
	CatNo string `json:"catno"`
}

// Format describes a physical or digital format of a release.
type Format struct {
	Name         string   `json:"name"`
	Qty          string   `json:"qty"`
	Description  string   `json:"description"`  // first description
	Descriptions []string `json:"descriptions"` // all descriptions
}

// Track is one entry of a release's tracklist.
//
// ExtraArtists is nil unless the track carries its own credits.
type Track struct {
	Position     string   `json:"position"`
	Title        string   `json:"title"`
	Duration     string   `json:"duration"`
	ExtraArtists []Credit `json:"extra_artists,omitempty"`
}

// Release is the result of GetRelease.
//
// All slices are non-nil, even when the response has no matching nodes.
type Release struct {
	ID           string          `json:"id"`
	Status       string          `json:"status"`
	Title        string          `json:"title"`
	Genre        string          `json:"genre"` // first genre
	Genres       []string        `json:"genres"`
	Country      string          `json:"country"`
	Released     string          `json:"released"`
	Notes        string          `json:"notes"`
	Images       []Image         `json:"images"`
	Artists      []ReleaseArtist `json:"artists"`
	ExtraArtists []Credit        `json:"extra_artists"`
	Labels       []ReleaseLabel  `json:"labels"`
	Formats      []Format        `json:"formats"`
	Styles       []string        `json:"styles"`
	Tracklist    []Track         `json:"tracklist"`
}

// ArtistRelease is a release listed on an artist page.
type ArtistRelease struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Type   string `json:"type"`
	Title  string `json:"title"`
	Format string `json:"format"`
	Label  string `json:"label"`
	Year   string `json:"year"`
}

// Artist is the result of GetArtist.
//
// A nil slice means the response did not include that node at all.
type Artist struct {
	Name           string          `json:"name"`
	RealName       string          `json:"real_name"`
	URLs           []string        `json:"urls,omitempty"`
	NameVariations []string        `json:"name_variations,omitempty"`
	Aliases        []string        `json:"aliases,omitempty"`
	Images         []Image         `json:"images,omitempty"`
	Releases       []ArtistRelease `json:"releases,omitempty"`
}

// LabelRelease is a release listed on a label page.
type LabelRelease struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	CatNo  string `json:"catno"`
	Artist string `json:"artist"`
	Title  string `json:"title"`
	Format string `json:"format"`
}

// Label is the result of GetLabel.
//
// ParentLabel and the slices are nil when the response omits them.
type Label struct {
	Name        string         `json:"name"`
	Profile     string         `json:"profile"`
	ContactInfo string         `json:"contact_info"`
	ParentLabel *string        `json:"parent_label,omitempty"`
	Sublabels   []string       `json:"sublabels,omitempty"`
	Images      []Image        `json:"images,omitempty"`
	Releases    []LabelRelease `json:"releases,omitempty"`
}

// SearchResult is one row of a search response.
//
// ID is derived from URL for artist, label and release rows and is empty
// for every other type.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Type    string `json:"type"`
	Summary string `json:"summary,omitempty"`
	ID      string `json:"id,omitempty"`
}

// SearchResults is the result of Search.
type SearchResults struct {
	ExactResults  []SearchResult `json:"exact_results"`
	SearchResults []SearchResult `json:"search_results"`
	Total         int            `json:"total"` // numResults attribute
	Start         int            `json:"start"`
	End           int            `json:"end"`
}

// Search types understood by the API.
const (
	SearchAll      = "all"
	SearchArtists  = "artists"
	SearchLabels   = "labels"
	SearchReleases = "releases"
	SearchCatNo    = "catno"
)
