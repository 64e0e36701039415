package discogs

import (
	"errors"
	"net/http"
	"reflect"
	"testing"
)

// parseFixture parses a testdata file into a Document.
func parseFixture(t *testing.T, name string) *Document {
	t.Helper()
	doc, err := parseDocument(loadFixture(t, name))
	if err != nil {
		t.Fatalf("parsing fixture %s: %v", name, err)
	}
	return doc
}

func TestDecodeRelease(t *testing.T) {
	release, err := decodeRelease(parseFixture(t, "release.xml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if release.ID != "1" || release.Status != "Accepted" {
		t.Errorf("unexpected id/status %q/%q", release.ID, release.Status)
	}
	if release.Title != "Stockholm" {
		t.Errorf("expected title Stockholm, got %q", release.Title)
	}
	if release.Genre != "Electronic" {
		t.Errorf("expected genre Electronic, got %q", release.Genre)
	}
	if release.Country != "Sweden" {
		t.Errorf("expected country Sweden, got %q", release.Country)
	}
	if release.Released != "1999-03-00" {
		t.Errorf("expected released 1999-03-00, got %q", release.Released)
	}
	if release.Notes != "Recorded at the Globe Studio." {
		t.Errorf("unexpected notes %q", release.Notes)
	}

	wantImages := []Image{
		{Type: "primary", Width: 600, Height: 600, URL: "http://s.dsimg.com/image/R-1-1193812031.jpeg", ThumbURL: "http://s.dsimg.com/image/R-150-1-1193812031.jpeg"},
		{Type: "secondary", Width: 600, Height: 337, URL: "http://s.dsimg.com/image/R-1-1193812053.jpeg", ThumbURL: "http://s.dsimg.com/image/R-150-1-1193812053.jpeg"},
	}
	if !reflect.DeepEqual(release.Images, wantImages) {
		t.Errorf("images = %+v, want %+v", release.Images, wantImages)
	}

	if want := []ReleaseArtist{{Name: "Persuader, The"}}; !reflect.DeepEqual(release.Artists, want) {
		t.Errorf("artists = %+v, want %+v", release.Artists, want)
	}
	if want := []ReleaseLabel{{Name: "Svek", CatNo: "SK032"}}; !reflect.DeepEqual(release.Labels, want) {
		t.Errorf("labels = %+v, want %+v", release.Labels, want)
	}

	wantCredits := []Credit{
		{Name: "Alexi Delano", Role: "Mastered By"},
		{Name: "Jesper Dahlbäck", Role: "Written-By, Producer"},
	}
	if !reflect.DeepEqual(release.ExtraArtists, wantCredits) {
		t.Errorf("extra artists = %+v, want %+v", release.ExtraArtists, wantCredits)
	}

	wantFormats := []Format{{
		Name:         "Vinyl",
		Qty:          "2",
		Description:  `12"`,
		Descriptions: []string{`12"`, "33 ⅓ RPM"},
	}}
	if !reflect.DeepEqual(release.Formats, wantFormats) {
		t.Errorf("formats = %+v, want %+v", release.Formats, wantFormats)
	}

	if want := []string{"Deep House"}; !reflect.DeepEqual(release.Styles, want) {
		t.Errorf("styles = %v, want %v", release.Styles, want)
	}
}

func TestDecodeRelease_Tracklist(t *testing.T) {
	release, err := decodeRelease(parseFixture(t, "release.xml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		position     string
		title        string
		duration     string
		extraArtists []Credit
	}{
		{position: "A", title: "Östermalm", duration: "4:45"},
		{
			position:     "B1",
			title:        "Vasastaden",
			duration:     "6:11",
			extraArtists: []Credit{{Name: "Jesper Dahlbäck", Role: "Remix"}},
		},
		// an empty <extraartists/> counts as no credits
		{position: "B2", title: "Kungsholmen", duration: "2:49"},
	}

	if len(release.Tracklist) != len(tests) {
		t.Fatalf("expected %d tracks, got %d", len(tests), len(release.Tracklist))
	}

	for i, tt := range tests {
		t.Run(tt.position, func(t *testing.T) {
			got := release.Tracklist[i]
			if got.Position != tt.position || got.Title != tt.title || got.Duration != tt.duration {
				t.Errorf("track = %+v, want %s %s %s", got, tt.position, tt.title, tt.duration)
			}
			if !reflect.DeepEqual(got.ExtraArtists, tt.extraArtists) {
				t.Errorf("extra artists = %#v, want %#v", got.ExtraArtists, tt.extraArtists)
			}
		})
	}
}

func TestDecodeRelease_EmptySectionsAreNonNil(t *testing.T) {
	release, err := decodeRelease(parseFixture(t, "release_empty.xml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if release.ID != "42" || release.Status != "Draft" || release.Title != "Untitled" {
		t.Errorf("unexpected release header %+v", release)
	}
	if release.Genre != "" || release.Country != "" || release.Notes != "" {
		t.Errorf("expected empty scalars, got %+v", release)
	}

	checks := map[string]bool{
		"Genres":       release.Genres != nil && len(release.Genres) == 0,
		"Images":       release.Images != nil && len(release.Images) == 0,
		"Artists":      release.Artists != nil && len(release.Artists) == 0,
		"ExtraArtists": release.ExtraArtists != nil && len(release.ExtraArtists) == 0,
		"Labels":       release.Labels != nil && len(release.Labels) == 0,
		"Formats":      release.Formats != nil && len(release.Formats) == 0,
		"Styles":       release.Styles != nil && len(release.Styles) == 0,
		"Tracklist":    release.Tracklist != nil && len(release.Tracklist) == 0,
	}
	for field, ok := range checks {
		if !ok {
			t.Errorf("expected %s to be an empty non-nil slice", field)
		}
	}
}

func TestDecodeRelease_MissingElement(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "wrong root", body: `<resp stat="ok"><artist><name>x</name></artist></resp>`},
		{name: "empty resp", body: `<resp/>`},
		{name: "too deep", body: `<resp><wrapper><release id="1"/></wrapper></resp>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parseDocument([]byte(tt.body))
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}

			_, err = decodeRelease(doc)
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %T: %v", err, err)
			}
			if apiErr.Message != "Invalid XML." || apiErr.Code != 0 {
				t.Errorf("unexpected error %+v", apiErr)
			}
			if !errors.Is(err, ErrUnexpectedDocument) {
				t.Error("expected error to wrap ErrUnexpectedDocument")
			}
		})
	}
}

func TestDecodeRelease_BareRoot(t *testing.T) {
	doc, err := parseDocument([]byte(`<release id="7"><title>Bare</title></release>`))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	release, err := decodeRelease(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if release.ID != "7" || release.Title != "Bare" {
		t.Errorf("unexpected release %+v", release)
	}
}

func TestClient_GetRelease(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write(loadFixture(t, "release.xml"))
	})

	release, err := client.GetRelease(t.Context(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/release/1" {
		t.Errorf("expected path /release/1, got %s", gotPath)
	}
	if release.Title != "Stockholm" {
		t.Errorf("expected title Stockholm, got %q", release.Title)
	}
}

func TestClient_GetRelease_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`<error>Not found</error>`))
	})

	release, err := client.GetRelease(t.Context(), "999999999")
	if release != nil {
		t.Error("expected nil release")
	}
	if !errors.Is(err, &APIError{Code: 404, Message: "Not found"}) {
		t.Errorf("expected 404 Not found, got %v", err)
	}
}
