package discogs

import (
	"context"
	"net/url"
	"strings"
)

// GetArtist fetches an artist by name.
//
// Optional sections (URLs, NameVariations, Aliases, Images, Releases) are
// nil when Discogs does not return them.
func (c *Client) GetArtist(ctx context.Context, name string) (*Artist, error) {
	doc, err := c.call(ctx, "artist/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, err
	}

	return decodeArtist(doc)
}

// artistXML represents the <artist> element.
type artistXML struct {
	Name     string `xml:"name"`
	RealName string `xml:"realname"`
	URLs     *struct {
		URL []string `xml:"url"`
	} `xml:"urls"`
	NameVariations *namesXML  `xml:"namevariations"`
	Aliases        *namesXML  `xml:"aliases"`
	Images         *imagesXML `xml:"images"`
	Releases       *struct {
		Release []struct {
			ID     string `xml:"id,attr"`
			Status string `xml:"status,attr"`
			Type   string `xml:"type,attr"`
			Title  string `xml:"title"`
			Format string `xml:"format"`
			Label  string `xml:"label"`
			Year   string `xml:"year"`
		} `xml:"release"`
	} `xml:"releases"`
}

// decodeArtist projects an artist document.
func decodeArtist(doc *Document) (*Artist, error) {
	var a artistXML
	if err := doc.expect("artist", &a); err != nil {
		return nil, err
	}

	artist := &Artist{
		Name:     a.Name,
		RealName: a.RealName,
	}

	if a.URLs != nil && len(a.URLs.URL) > 0 {
		// present but possibly empty once blank entries are dropped
		artist.URLs = make([]string, 0, len(a.URLs.URL))
		for _, u := range a.URLs.URL {
			if u = strings.TrimSpace(u); u != "" {
				artist.URLs = append(artist.URLs, u)
			}
		}
	}

	if a.NameVariations != nil && len(a.NameVariations.Name) > 0 {
		artist.NameVariations = copyStrings(a.NameVariations.Name)
	}

	if a.Aliases != nil && len(a.Aliases.Name) > 0 {
		artist.Aliases = copyStrings(a.Aliases.Name)
	}

	if a.Images != nil && len(a.Images.Image) > 0 {
		artist.Images = projectImages(a.Images.Image)
	}

	if a.Releases != nil && len(a.Releases.Release) > 0 {
		artist.Releases = make([]ArtistRelease, 0, len(a.Releases.Release))
		for _, r := range a.Releases.Release {
			artist.Releases = append(artist.Releases, ArtistRelease{
				ID:     r.ID,
				Status: r.Status,
				Type:   r.Type,
				Title:  r.Title,
				Format: r.Format,
				Label:  r.Label,
				Year:   r.Year,
			})
		}
	}

	return artist, nil
}
