package discogs

import (
	"context"
	"net/url"
)

// GetRelease fetches a release by its Discogs ID.
//
// Every slice of the returned Release is non-nil, so a release without a
// tracklist yields an empty Tracklist rather than a nil one.
//
// Example:
//
//	release, err := client.GetRelease(ctx, "1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, track := range release.Tracklist {
//	    fmt.Println(track.Position, track.Title)
//	}
func (c *Client) GetRelease(ctx context.Context, id string) (*Release, error) {
	doc, err := c.call(ctx, "release/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	return decodeRelease(doc)
}

// releaseXML represents the <release> element.
type releaseXML struct {
	ID           string     `xml:"id,attr"`
	Status       string     `xml:"status,attr"`
	Title        string     `xml:"title"`
	Genres       []string   `xml:"genres>genre"`
	Country      string     `xml:"country"`
	Released     string     `xml:"released"`
	Notes        string     `xml:"notes"`
	Images       []imageXML `xml:"images>image"`
	Artists      []struct {
		Name string `xml:"name"`
	} `xml:"artists>artist"`
	ExtraArtists []creditXML `xml:"extraartists>artist"`
	Labels       []struct {
		Name  string `xml:"name,attr"`
		CatNo string `xml:"catno,attr"`
	} `xml:"labels>label"`
	Formats []struct {
		Name         string   `xml:"name,attr"`
		Qty          string   `xml:"qty,attr"`
		Descriptions []string `xml:"descriptions>description"`
	} `xml:"formats>format"`
	Styles []string `xml:"styles>style"`
	Tracks []struct {
		Position     string      `xml:"position"`
		Title        string      `xml:"title"`
		Duration     string      `xml:"duration"`
		ExtraArtists *creditsXML `xml:"extraartists"`
	} `xml:"tracklist>track"`
}

// decodeRelease projects a release document.
func decodeRelease(doc *Document) (*Release, error) {
	var r releaseXML
	if err := doc.expect("release", &r); err != nil {
		return nil, err
	}

	release := &Release{
		ID:           r.ID,
		Status:       r.Status,
		Title:        r.Title,
		Genres:       copyStrings(r.Genres),
		Country:      r.Country,
		Released:     r.Released,
		Notes:        r.Notes,
		Images:       projectImages(r.Images),
		Artists:      make([]ReleaseArtist, 0, len(r.Artists)),
		ExtraArtists: projectCredits(r.ExtraArtists),
		Labels:       make([]ReleaseLabel, 0, len(r.Labels)),
		Formats:      make([]Format, 0, len(r.Formats)),
		Styles:       copyStrings(r.Styles),
		Tracklist:    make([]Track, 0, len(r.Tracks)),
	}

	if len(r.Genres) > 0 {
		release.Genre = r.Genres[0]
	}

	for _, a := range r.Artists {
		release.Artists = append(release.Artists, ReleaseArtist{Name: a.Name})
	}

	for _, l := range r.Labels {
		release.Labels = append(release.Labels, ReleaseLabel{Name: l.Name, CatNo: l.CatNo})
	}

	for _, f := range r.Formats {
		format := Format{
			Name:         f.Name,
			Qty:          f.Qty,
			Descriptions: copyStrings(f.Descriptions),
		}
		if len(f.Descriptions) > 0 {
			format.Description = f.Descriptions[0]
		}
		release.Formats = append(release.Formats, format)
	}

	for _, t := range r.Tracks {
		track := Track{
			Position: t.Position,
			Title:    t.Title,
			Duration: t.Duration,
		}
		// Only tracks with at least one credited artist get ExtraArtists.
		if t.ExtraArtists != nil && len(t.ExtraArtists.Artist) > 0 {
			track.ExtraArtists = projectCredits(t.ExtraArtists.Artist)
		}
		release.Tracklist = append(release.Tracklist, track)
	}

	return release, nil
}
