// Package render formats catalog data for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/jfmyers9/crate/internal/history"
	"github.com/jfmyers9/crate/pkg/discogs"
)

// Column widths for tabular output.
const (
	typeWidth  = 8
	idWidth    = 24
	queryWidth = 30
	titleWidth = 40
)

const templates = `
{{- define "release" -}}
{{.Title}}
{{- with .Artists}}
Artists:   {{artistNames .}}{{end}}
ID:        {{.ID}}{{with .Status}} ({{.}}){{end}}
{{- with .Labels}}
Labels:    {{labelNames .}}{{end}}
{{- with .Formats}}
Format:    {{formatNames .}}{{end}}
{{- with .Country}}
Country:   {{.}}{{end}}
{{- with .Released}}
Released:  {{.}}{{end}}
{{- with .Genres}}
Genres:    {{join . ", "}}{{end}}
{{- with .Styles}}
Styles:    {{join . ", "}}{{end}}
{{- with .ExtraArtists}}

Credits:
{{- range .}}
  {{.Role}}: {{.Name}}{{end}}{{end}}
{{- with .Tracklist}}

Tracklist:
{{- range .}}
  {{pad .Position 4}} {{.Title}}{{with .Duration}} ({{.}}){{end}}
{{- range .ExtraArtists}}
         {{.Role}}: {{.Name}}{{end}}{{end}}{{end}}
{{- with .Notes}}

Notes:
{{.}}{{end}}
{{end -}}

{{- define "artist" -}}
{{.Name}}
{{- with .RealName}}
Real name: {{.}}{{end}}
{{- with .NameVariations}}
Variations: {{join . ", "}}{{end}}
{{- with .Aliases}}
Aliases:   {{join . ", "}}{{end}}
{{- with .URLs}}

Links:
{{- range .}}
  {{.}}{{end}}{{end}}
{{- with .Releases}}

Releases:
{{- range .}}
  {{pad .Year 4}} {{pad .Title 40}} {{.Label}}{{with .Format}} ({{.}}){{end}}{{end}}{{end}}
{{end -}}

{{- define "label" -}}
{{.Name}}
{{- with deref .ParentLabel}}
Parent:    {{.}}{{end}}
{{- with .ContactInfo}}
Contact:   {{.}}{{end}}
{{- with .Sublabels}}
Sublabels: {{join . ", "}}{{end}}
{{- with .Profile}}

{{.}}{{end}}
{{- with .Releases}}

Releases:
{{- range .}}
  {{pad .CatNo 12}} {{.Artist}} - {{.Title}}{{with .Format}} ({{.}}){{end}}{{end}}{{end}}
{{end -}}

{{- define "row"}}  {{pad .Type typeWidth}} {{pad .ID idWidth}} {{.Title}}
{{end -}}

{{- define "search" -}}
{{- with .ExactResults -}}
Exact matches:
{{range .}}{{template "row" .}}{{end}}
{{end -}}
Results {{.Start}}-{{.End}} of {{.Total}}:
{{range .SearchResults}}{{template "row" .}}{{else}}  none
{{end}}
{{- end -}}

{{- define "history" -}}
{{- range . -}}
{{.Timestamp.Format "2006-01-02 15:04"}}  {{pad .Kind typeWidth}} {{status .}} {{pad .Query queryWidth}} {{or .Summary .Error}}
{{else -}}
No lookups recorded.
{{end -}}
{{- end -}}
`

var tmpl = template.Must(template.New("render").Funcs(template.FuncMap{
	"pad":         PadToWidth,
	"join":        strings.Join,
	"artistNames": artistNames,
	"labelNames":  labelNames,
	"formatNames": formatNames,
	"status":      status,
	"deref":       deref,
	"typeWidth":   func() int { return typeWidth },
	"idWidth":     func() int { return idWidth },
	"queryWidth":  func() int { return queryWidth },
}).Parse(templates))

// Text writes a human readable rendering of v to w.
func Text(w io.Writer, v any) error {
	var name string
	switch v.(type) {
	case *discogs.Release:
		name = "release"
	case *discogs.Artist:
		name = "artist"
	case *discogs.Label:
		name = "label"
	case *discogs.SearchResults:
		name = "search"
	case []history.Entry:
		name = "history"
	default:
		return fmt.Errorf("render: unsupported type %T", v)
	}

	if err := tmpl.ExecuteTemplate(w, name, v); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// JSON writes v to w as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func artistNames(artists []discogs.ReleaseArtist) string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

func labelNames(labels []discogs.ReleaseLabel) string {
	names := make([]string, 0, len(labels))
	for _, l := range labels {
		if l.CatNo != "" {
			names = append(names, l.Name+" ("+l.CatNo+")")
		} else {
			names = append(names, l.Name)
		}
	}
	return strings.Join(names, ", ")
}

// formatNames renders formats the way Discogs lists them, e.g.
// `2xVinyl, 12", 33 ⅓ RPM`.
func formatNames(formats []discogs.Format) string {
	parts := make([]string, 0, len(formats))
	for _, f := range formats {
		s := f.Name
		if f.Qty != "" && f.Qty != "1" {
			s = f.Qty + "x" + s
		}
		if len(f.Descriptions) > 0 {
			s += ", " + strings.Join(f.Descriptions, ", ")
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "; ")
}

// deref returns the string s points to, or "" for nil.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func status(e history.Entry) string {
	if e.Success {
		return "ok  "
	}
	return "fail"
}
