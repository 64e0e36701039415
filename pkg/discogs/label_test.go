package discogs

import (
	"net/http"
	"reflect"
	"testing"
)

func TestDecodeLabel(t *testing.T) {
	label, err := decodeLabel(parseFixture(t, "label.xml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if label.Name != "Warp Records" {
		t.Errorf("expected name Warp Records, got %q", label.Name)
	}
	if label.Profile != "Sheffield-based independent label." {
		t.Errorf("unexpected profile %q", label.Profile)
	}
	if label.ContactInfo != "info@warp.net" {
		t.Errorf("unexpected contact info %q", label.ContactInfo)
	}
	if label.ParentLabel == nil || *label.ParentLabel != "Warp Music" {
		t.Errorf("expected parent label Warp Music, got %v", label.ParentLabel)
	}
	if want := []string{"Arcola", "Gift Records"}; !reflect.DeepEqual(label.Sublabels, want) {
		t.Errorf("sublabels = %v, want %v", label.Sublabels, want)
	}
	if len(label.Images) != 1 || label.Images[0].Type != "primary" {
		t.Errorf("unexpected images %+v", label.Images)
	}

	wantReleases := []LabelRelease{{
		ID:     "2076",
		Status: "Accepted",
		CatNo:  "WAP 1",
		Artist: "Forgemasters",
		Title:  "Track With No Name",
		Format: `12"`,
	}}
	if !reflect.DeepEqual(label.Releases, wantReleases) {
		t.Errorf("releases = %+v, want %+v", label.Releases, wantReleases)
	}
}

func TestDecodeLabel_Minimal(t *testing.T) {
	label, err := decodeLabel(parseFixture(t, "label_minimal.xml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if label.Name != "Svek" {
		t.Errorf("expected name Svek, got %q", label.Name)
	}
	if label.Profile != "" || label.ContactInfo != "" {
		t.Errorf("expected empty profile and contact info, got %+v", label)
	}
	if label.ParentLabel != nil {
		t.Errorf("expected nil parent label, got %q", *label.ParentLabel)
	}
	if label.Sublabels != nil || label.Images != nil || label.Releases != nil {
		t.Errorf("expected nil optional sections, got %+v", label)
	}
}

func TestDecodeLabel_EmptyParentLabel(t *testing.T) {
	doc, err := parseDocument([]byte(`<resp><label><name>X</name><parentLabel/></label></resp>`))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	label, err := decodeLabel(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label.ParentLabel == nil {
		t.Fatal("expected present parent label")
	}
	if *label.ParentLabel != "" {
		t.Errorf("expected empty parent label, got %q", *label.ParentLabel)
	}
}

func TestClient_GetLabel(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write(loadFixture(t, "label.xml"))
	})

	label, err := client.GetLabel(t.Context(), "Warp Records")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/label/Warp%20Records" {
		t.Errorf("expected path /label/Warp%%20Records, got %s", gotPath)
	}
	if label.Name != "Warp Records" {
		t.Errorf("expected name Warp Records, got %q", label.Name)
	}
}
