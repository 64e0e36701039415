package discogs

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// Document is a parsed, well-formed XML response.
type Document struct {
	Root xml.Name // name of the document element
	raw  []byte
}

// decode unmarshals the whole document into v.
func (d *Document) decode(v interface{}) error {
	dec := newDecoder(d.raw)
	return dec.Decode(v)
}

// errorBody matches both a bare <error> document and one nested in <resp>.
type errorBody struct {
	XMLName xml.Name
	Text    string  `xml:",chardata"`
	Error   *string `xml:"error"`
}

const (
	// maxBodySize caps how much of a response body is read.
	maxBodySize = 32 << 20
)

// call makes a GET request to the Discogs API and parses the XML response.
//
// It handles:
// - Query string construction with the mandatory f and api_key parameters
// - User-Agent and per-call timeout
// - Mapping of transport failures to TransportError
// - Mapping of non-200 responses and malformed bodies to APIError
func (c *Client) call(ctx context.Context, path string, params map[string]string) (*Document, error) {
	reqURL, err := c.buildURL(path, params)
	if err != nil {
		return nil, fmt.Errorf("discogs: failed to build URL: %w", err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("discogs: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent())

	c.logDebugf("discogs: GET %s", redactKey(reqURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newTransportError(err)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	_ = resp.Body.Close()
	if err != nil {
		return nil, newTransportError(err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logDebugf("discogs: %s returned status %d", path, resp.StatusCode)
		return nil, statusError(resp.StatusCode, body)
	}

	doc, err := parseDocument(body)
	if err != nil {
		c.logDebugf("discogs: %s returned invalid XML: %v", path, err)
		return nil, &APIError{Message: "Invalid XML", Err: ErrInvalidXML}
	}

	c.logDebugf("discogs: %s succeeded", path)
	return doc, nil
}

// buildURL assembles <baseURL>/<path>?<query>.
func (c *Client) buildURL(path string, params map[string]string) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	if c.port > 0 {
		base.Host = base.Hostname() + ":" + strconv.Itoa(c.port)
	}

	return strings.TrimRight(base.String(), "/") + "/" + path + "?" + c.queryString(params), nil
}

// queryString merges params with f=xml and api_key and encodes them.
// Keys are sorted so the result is deterministic.
func (c *Client) queryString(params map[string]string) string {
	merged := make(map[string]string, len(params)+2)
	for k, v := range params {
		merged[k] = v
	}
	merged["f"] = "xml"
	merged["api_key"] = c.apiKey

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var qs strings.Builder
	for _, k := range keys {
		qs.WriteString("&")
		qs.WriteString(url.QueryEscape(k))
		qs.WriteString("=")
		qs.WriteString(url.QueryEscape(merged[k]))
	}

	return strings.TrimLeft(qs.String(), "&")
}

// statusError builds the APIError for a non-200 response, preferring the
// message from an <error> element when the body carries one.
func statusError(status int, body []byte) *APIError {
	var eb errorBody
	if err := newDecoder(body).Decode(&eb); err == nil {
		switch {
		case eb.XMLName.Local == "error":
			return &APIError{Code: status, Message: strings.TrimSpace(eb.Text)}
		case eb.Error != nil:
			return &APIError{Code: status, Message: strings.TrimSpace(*eb.Error)}
		}
	}

	return &APIError{Code: status, Message: fmt.Sprintf("Invalid headers (%d)", status)}
}

// parseDocument reads every token of body and returns a Document if it is
// well-formed with exactly one root element.
func parseDocument(body []byte) (*Document, error) {
	dec := newDecoder(body)

	var root xml.Name
	depth := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if root.Local != "" {
					return nil, fmt.Errorf("multiple root elements")
				}
				root = t.Name
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				return nil, fmt.Errorf("text outside root element")
			}
		}
	}

	if root.Local == "" {
		return nil, fmt.Errorf("no root element")
	}

	return &Document{Root: root, raw: body}, nil
}

// utf8BOM is the byte order mark some servers prepend to UTF-8 bodies.
var utf8BOM = []byte("\xEF\xBB\xBF")

// newDecoder returns a strict decoder that never expands custom entities
// and transcodes declared non-UTF-8 charsets. A leading UTF-8 byte order
// mark is skipped.
func newDecoder(body []byte) *xml.Decoder {
	dec := xml.NewDecoder(bytes.NewReader(bytes.TrimPrefix(body, utf8BOM)))
	dec.Strict = true
	dec.CharsetReader = charset.NewReaderLabel
	return dec
}

// redactKey hides the api_key value in URLs written to the debug log.
func redactKey(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	if q.Has("api_key") {
		q.Set("api_key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
