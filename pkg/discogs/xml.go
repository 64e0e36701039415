package discogs

import (
	"encoding/xml"
	"errors"
	"io"
	"strconv"
)

// Wire types shared by more than one endpoint.

type imageXML struct {
	Type   string `xml:"type,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	URI    string `xml:"uri,attr"`
	URI150 string `xml:"uri150,attr"`
}

type imagesXML struct {
	Image []imageXML `xml:"image"`
}

type namesXML struct {
	Name []string `xml:"name"`
}

type creditXML struct {
	Name string `xml:"name"`
	Role string `xml:"role"`
}

type creditsXML struct {
	Artist []creditXML `xml:"artist"`
}

// element finds name as the document element or as a direct child of it
// and decodes it into v. It reports whether the element was found.
func (d *Document) element(name string, v interface{}) (bool, error) {
	dec := newDecoder(d.raw)

	depth := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth <= 1 && t.Name.Local == name {
				return true, dec.DecodeElement(v, &t)
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
}

// expect decodes the endpoint's element or fails with "Invalid XML.".
func (d *Document) expect(name string, v interface{}) error {
	found, err := d.element(name, v)
	if err != nil || !found {
		return &APIError{Message: "Invalid XML.", Err: ErrUnexpectedDocument}
	}
	return nil
}

func projectImages(in []imageXML) []Image {
	out := make([]Image, 0, len(in))
	for _, img := range in {
		out = append(out, Image{
			Type:     img.Type,
			Width:    atoi(img.Width),
			Height:   atoi(img.Height),
			URL:      img.URI,
			ThumbURL: img.URI150,
		})
	}
	return out
}

func projectCredits(in []creditXML) []Credit {
	out := make([]Credit, 0, len(in))
	for _, a := range in {
		out = append(out, Credit{Name: a.Name, Role: a.Role})
	}
	return out
}

// copyStrings returns a non-nil copy of in.
func copyStrings(in []string) []string {
	out := make([]string, 0, len(in))
	return append(out, in...)
}

// atoi parses a leading integer the way a loose cast would, returning 0
// for anything unparseable.
func atoi(s string) int {
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || end == 0 && s[end] == '-') {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
