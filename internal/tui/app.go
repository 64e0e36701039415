// Package tui implements the interactive catalog browser.
package tui

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jfmyers9/crate/internal/render"
	"github.com/jfmyers9/crate/pkg/discogs"
	"github.com/rivo/tview"
)

// Catalog is the lookup surface the browser needs. *catalog.Service
// implements it.
type Catalog interface {
	Release(ctx context.Context, id string) (*discogs.Release, error)
	Artist(ctx context.Context, name string) (*discogs.Artist, error)
	Label(ctx context.Context, name string) (*discogs.Label, error)
	Search(ctx context.Context, term, searchType string, page int) (*discogs.SearchResults, error)
}

// Config holds TUI configuration options
type Config struct {
	Timeout    time.Duration // Deadline for each lookup
	SearchType string        // Search type sent with every query
}

// DefaultConfig returns the default TUI configuration
func DefaultConfig() Config {
	return Config{
		Timeout:    30 * time.Second,
		SearchType: discogs.SearchAll,
	}
}

const helpText = "[gray]enter:search/open  tab:focus  q/esc:quit[-]"

// App is the TUI application for browsing the catalog
type App struct {
	app     *tview.Application
	input   *tview.InputField
	results *tview.List
	details *tview.TextView
	status  *tview.TextView

	catalog Catalog
	config  Config

	// rows backs the results list (guarded by mu)
	mu   sync.Mutex
	rows []discogs.SearchResult

	ctx        context.Context
	cancelFunc context.CancelFunc
}

// New creates a browser with default config
func New(catalog Catalog) *App {
	return NewWithConfig(catalog, DefaultConfig())
}

// NewWithConfig creates a browser with the given config
func NewWithConfig(catalog Catalog, cfg Config) *App {
	a := &App{
		app:     tview.NewApplication(),
		catalog: catalog,
		config:  cfg,
	}
	a.ctx, a.cancelFunc = context.WithCancel(context.Background())
	a.setupUI()
	return a
}

// setupUI creates the UI layout
func (a *App) setupUI() {
	a.input = tview.NewInputField().
		SetLabel("Search: ").
		SetFieldWidth(0)
	a.input.SetBorder(true).
		SetTitle(" Discogs ").
		SetTitleAlign(tview.AlignLeft)
	a.input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			a.search(a.input.GetText())
		}
	})

	a.results = tview.NewList().
		ShowSecondaryText(false)
	a.results.SetBorder(true).
		SetTitle(" Results ").
		SetTitleAlign(tview.AlignLeft)
	a.results.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		a.open(index)
	})

	a.details = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	a.details.SetBorder(true).
		SetTitle(" Details ").
		SetTitleAlign(tview.AlignLeft)

	a.status = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText(helpText)

	// Layout:
	// Top: search input
	// Middle: results | details
	// Footer: status bar
	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(a.results, 0, 2, false).
		AddItem(a.details, 0, 3, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.input, 3, 1, true).
		AddItem(body, 0, 1, false).
		AddItem(a.status, 1, 1, false)

	a.app.SetInputCapture(a.handleKeyEvent)
	a.app.SetRoot(flex, true).SetFocus(a.input)
}

// handleKeyEvent processes keyboard input
func (a *App) handleKeyEvent(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		a.Stop()
		return nil
	case tcell.KeyTab:
		a.cycleFocus()
		return nil
	}

	// q is text while typing a query
	if a.app.GetFocus() == a.input {
		return event
	}

	switch event.Rune() {
	case 'q', 'Q':
		a.Stop()
		return nil
	}
	return event
}

func (a *App) cycleFocus() {
	switch a.app.GetFocus() {
	case a.input:
		a.app.SetFocus(a.results)
	case a.results:
		a.app.SetFocus(a.details)
	default:
		a.app.SetFocus(a.input)
	}
}

// Run starts the browser and blocks until it exits
func (a *App) Run() error {
	defer a.cancelFunc()

	if err := a.app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// Stop cancels in-flight lookups and exits
func (a *App) Stop() {
	a.cancelFunc()
	a.app.Stop()
}

// search runs a query in the background and fills the results list
func (a *App) search(term string) {
	if term == "" {
		return
	}
	a.setStatus(fmt.Sprintf("[yellow]Searching for %q...[-]", term))

	go func() {
		ctx, cancel := a.lookupContext()
		defer cancel()

		results, err := a.catalog.Search(ctx, term, a.config.SearchType, 1)
		a.app.QueueUpdateDraw(func() {
			if err != nil {
				a.showError(err)
				return
			}
			a.showResults(results)
			a.app.SetFocus(a.results)
		})
	}()
}

// open fetches the row at index in the background and shows it
func (a *App) open(index int) {
	a.mu.Lock()
	if index < 0 || index >= len(a.rows) {
		a.mu.Unlock()
		return
	}
	row := a.rows[index]
	a.mu.Unlock()

	if row.ID == "" {
		a.setStatus(fmt.Sprintf("[gray]%s results cannot be opened[-]", row.Type))
		return
	}
	a.setStatus(fmt.Sprintf("[yellow]Loading %s %s...[-]", row.Type, row.ID))

	go func() {
		ctx, cancel := a.lookupContext()
		defer cancel()

		text, err := describe(ctx, a.catalog, row)
		a.app.QueueUpdateDraw(func() {
			if err != nil {
				a.showError(err)
				return
			}
			a.showDetails(text)
		})
	}()
}

func (a *App) lookupContext() (context.Context, context.CancelFunc) {
	if a.config.Timeout > 0 {
		return context.WithTimeout(a.ctx, a.config.Timeout)
	}
	return context.WithCancel(a.ctx)
}

// showResults replaces the results list. Must run on the UI goroutine.
func (a *App) showResults(results *discogs.SearchResults) {
	rows := flattenResults(results)

	a.mu.Lock()
	a.rows = rows
	a.mu.Unlock()

	a.results.Clear()
	for _, r := range rows {
		a.results.AddItem(rowText(r), "", 0, nil)
	}

	a.setStatus(fmt.Sprintf("%d of %d results  %s", len(rows), results.Total, helpText))
}

func (a *App) showDetails(text string) {
	a.details.SetText(tview.Escape(text)).ScrollToBeginning()
	a.setStatus(helpText)
}

func (a *App) showError(err error) {
	a.setStatus(fmt.Sprintf("[red]%s[-]", tview.Escape(err.Error())))
}

func (a *App) setStatus(text string) {
	a.status.SetText(text)
}

// flattenResults lists exact matches before the other results
func flattenResults(results *discogs.SearchResults) []discogs.SearchResult {
	if results == nil {
		return nil
	}
	rows := make([]discogs.SearchResult, 0, len(results.ExactResults)+len(results.SearchResults))
	rows = append(rows, results.ExactResults...)
	return append(rows, results.SearchResults...)
}

// rowText is the list label for a search result
func rowText(r discogs.SearchResult) string {
	return tview.Escape(fmt.Sprintf("%s %s", render.PadToWidth("("+r.Type+")", 10), r.Title))
}

// describe fetches the entity behind row and renders it as text
func describe(ctx context.Context, catalog Catalog, row discogs.SearchResult) (string, error) {
	var v any
	var err error

	switch row.Type {
	case "release":
		v, err = catalog.Release(ctx, row.ID)
	case "artist":
		v, err = catalog.Artist(ctx, row.ID)
	case "label":
		v, err = catalog.Label(ctx, row.ID)
	default:
		return "", fmt.Errorf("cannot open %s results", row.Type)
	}
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := render.Text(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}
