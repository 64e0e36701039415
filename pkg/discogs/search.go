package discogs

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// Search queries the Discogs database.
//
// searchType is one of the Search* constants (an empty string means
// SearchAll). The page parameter is only sent for pages after the first.
//
// Example:
//
//	results, err := client.Search(ctx, "Radiohead", discogs.SearchArtists, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range results.ExactResults {
//	    fmt.Println(r.Type, r.ID, r.Title)
//	}
func (c *Client) Search(ctx context.Context, term, searchType string, page int) (*SearchResults, error) {
	if searchType == "" {
		searchType = SearchAll
	}

	params := map[string]string{
		"type": searchType,
		"q":    term,
	}
	if page > 1 {
		params["page"] = strconv.Itoa(page)
	}

	doc, err := c.call(ctx, "search", params)
	if err != nil {
		return nil, err
	}

	return decodeSearch(doc)
}

type searchResultXML struct {
	Type    string `xml:"type,attr"`
	Title   string `xml:"title"`
	URI     string `xml:"uri"`
	Summary string `xml:"summary"`
}

// searchXML represents the search response. Both sections are optional.
type searchXML struct {
	ExactResults  []searchResultXML `xml:"exactresults>result"`
	SearchResults struct {
		NumResults string            `xml:"numResults,attr"`
		Start      string            `xml:"start,attr"`
		End        string            `xml:"end,attr"`
		Result     []searchResultXML `xml:"result"`
	} `xml:"searchresults"`
}

// decodeSearch projects a search document.
func decodeSearch(doc *Document) (*SearchResults, error) {
	var s searchXML
	if err := doc.decode(&s); err != nil {
		return nil, &APIError{Message: "Invalid XML.", Err: ErrUnexpectedDocument}
	}

	results := &SearchResults{
		ExactResults:  make([]SearchResult, 0, len(s.ExactResults)),
		SearchResults: make([]SearchResult, 0, len(s.SearchResults.Result)),
		Total:         atoi(s.SearchResults.NumResults),
		Start:         atoi(s.SearchResults.Start),
		End:           atoi(s.SearchResults.End),
	}

	for _, r := range s.ExactResults {
		results.ExactResults = append(results.ExactResults, SearchResult{
			Title: r.Title,
			URL:   r.URI,
			Type:  r.Type,
			ID:    resultID(r.Type, r.URI),
		})
	}

	for _, r := range s.SearchResults.Result {
		results.SearchResults = append(results.SearchResults, SearchResult{
			Title:   r.Title,
			URL:     r.URI,
			Type:    r.Type,
			Summary: r.Summary,
			ID:      resultID(r.Type, r.URI),
		})
	}

	return results, nil
}

// resultID returns the percent-decoded part of uri following the first
// "<type>/" for artist, label and release rows, and "" otherwise.
func resultID(resultType, uri string) string {
	switch resultType {
	case "artist", "label", "release":
	default:
		return ""
	}

	marker := resultType + "/"
	idx := strings.Index(uri, marker)
	if idx < 0 {
		return ""
	}

	raw := uri[idx+len(marker):]
	id, err := url.QueryUnescape(raw)
	if err != nil {
		return raw
	}
	return id
}
