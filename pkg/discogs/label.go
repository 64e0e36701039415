package discogs

import (
	"context"
	"net/url"
)

// GetLabel fetches a record label by name.
//
// ParentLabel, Sublabels, Images and Releases are nil when Discogs does
// not return them.
func (c *Client) GetLabel(ctx context.Context, name string) (*Label, error) {
	doc, err := c.call(ctx, "label/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, err
	}

	return decodeLabel(doc)
}

// labelXML represents the <label> element.
type labelXML struct {
	Name        string  `xml:"name"`
	Profile     string  `xml:"profile"`
	ContactInfo string  `xml:"contactinfo"`
	ParentLabel *string `xml:"parentLabel"`
	Sublabels   *struct {
		Label []string `xml:"label"`
	} `xml:"sublabels"`
	Images   *imagesXML `xml:"images"`
	Releases *struct {
		Release []struct {
			ID     string `xml:"id,attr"`
			Status string `xml:"status,attr"`
			CatNo  string `xml:"catno"`
			Artist string `xml:"artist"`
			Title  string `xml:"title"`
			Format string `xml:"format"`
		} `xml:"release"`
	} `xml:"releases"`
}

// decodeLabel projects a label document.
func decodeLabel(doc *Document) (*Label, error) {
	var l labelXML
	if err := doc.expect("label", &l); err != nil {
		return nil, err
	}

	label := &Label{
		Name:        l.Name,
		Profile:     l.Profile,
		ContactInfo: l.ContactInfo,
		ParentLabel: l.ParentLabel,
	}

	if l.Sublabels != nil && len(l.Sublabels.Label) > 0 {
		label.Sublabels = copyStrings(l.Sublabels.Label)
	}

	if l.Images != nil && len(l.Images.Image) > 0 {
		label.Images = projectImages(l.Images.Image)
	}

	if l.Releases != nil && len(l.Releases.Release) > 0 {
		label.Releases = make([]LabelRelease, 0, len(l.Releases.Release))
		for _, r := range l.Releases.Release {
			label.Releases = append(label.Releases, LabelRelease{
				ID:     r.ID,
				Status: r.Status,
				CatNo:  r.CatNo,
				Artist: r.Artist,
				Title:  r.Title,
				Format: r.Format,
			})
		}
	}

	return label, nil
}
