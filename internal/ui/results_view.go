package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-optimizer/internal/model"
	"github.com/ytget/yt-optimizer/internal/suggest"
	"github.com/ytget/yt-optimizer/internal/thumbnail"
)

type resultsState int

const (
	statePlaceholder resultsState = iota
	stateEmpty
	stateResults
)

// ResultsView renders the Search Results tab: title cards, keyword chips and
// the thumbnail gallery
type ResultsView struct {
	localization *Localization

	state    resultsState
	result   *model.SuggestionResult
	draft    string
	coverage suggest.KeywordCoverage

	// UI components
	container     *fyne.Container
	messageLabel  *widget.Label
	sections      *fyne.Container
	titlesHeader  *widget.Label
	titlesBox     *fyne.Container
	keywordHeader *widget.Label
	coverageLabel *widget.Label
	keywordGrid   *fyne.Container
	thumbsHeader  *widget.Label
	thumbsGrid    *fyne.Container
	tiles         []*ThumbnailTile
	finished      map[int]bool

	// Callbacks
	onCopyTitle     func(title string)
	onOpenThumbnail func(url string)
}

// NewResultsView creates the results view in its placeholder state
func NewResultsView(localization *Localization) *ResultsView {
	rv := &ResultsView{
		localization: localization,
		finished:     make(map[int]bool),
	}

	rv.createUI()
	rv.ShowPlaceholder()
	return rv
}

func (rv *ResultsView) createUI() {
	rv.messageLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	rv.messageLabel.Wrapping = fyne.TextWrapWord

	rv.titlesHeader = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	rv.titlesBox = container.NewVBox()

	rv.keywordHeader = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	rv.coverageLabel = widget.NewLabel("")
	rv.coverageLabel.Importance = widget.LowImportance
	rv.keywordGrid = container.NewGridWrap(fyne.NewSize(KeywordChipWidth, KeywordChipHeight))

	rv.thumbsHeader = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	rv.thumbsGrid = container.NewGridWrap(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))

	rv.sections = container.NewVBox(
		rv.titlesHeader,
		rv.titlesBox,
		widget.NewSeparator(),
		rv.keywordHeader,
		rv.coverageLabel,
		rv.keywordGrid,
		widget.NewSeparator(),
		rv.thumbsHeader,
		rv.thumbsGrid,
	)

	rv.container = container.NewBorder(
		rv.messageLabel, // top
		nil,             // bottom
		nil,             // left
		nil,             // right
		container.NewVScroll(rv.sections),
	)
	rv.refreshHeaders()
}

// Container returns the root object of the view
func (rv *ResultsView) Container() *fyne.Container {
	return rv.container
}

// SetCallbacks sets the copy and open handlers
func (rv *ResultsView) SetCallbacks(onCopyTitle func(title string), onOpenThumbnail func(url string)) {
	rv.onCopyTitle = onCopyTitle
	rv.onOpenThumbnail = onOpenThumbnail
}

// ShowPlaceholder shows the hint displayed before the first search
func (rv *ResultsView) ShowPlaceholder() {
	rv.clear()
	rv.state = statePlaceholder
	rv.messageLabel.SetText(rv.localization.GetText(KeyResultsPlaceholder))
	rv.messageLabel.Show()
	rv.sections.Hide()
}

// ShowEmpty shows the "no suggestions" state
func (rv *ResultsView) ShowEmpty() {
	rv.clear()
	rv.state = stateEmpty
	rv.messageLabel.SetText(rv.localization.GetText(KeyNoSuggestions))
	rv.messageLabel.Show()
	rv.sections.Hide()
}

// Message returns the text of the state message, empty when results are shown
func (rv *ResultsView) Message() string {
	if !rv.messageLabel.Visible() {
		return ""
	}
	return rv.messageLabel.Text
}

// ShowResult renders result. Only the first thumbnailLimit thumbnails get a
// tile; their URLs are returned in tile order for fetching.
func (rv *ResultsView) ShowResult(result model.SuggestionResult, draftKeywords string, thumbnailLimit int) []string {
	rv.clear()
	rv.state = stateResults
	rv.result = &result
	rv.messageLabel.Hide()

	for _, s := range result.TitleSuggestions {
		rv.titlesBox.Add(NewTitleCard(s, rv.localization, rv.copyTitle))
	}

	rv.renderKeywords(draftKeywords)

	urls := result.CappedThumbnails(thumbnailLimit)
	for _, u := range urls {
		tile := NewThumbnailTile(u, rv.openThumbnail)
		rv.tiles = append(rv.tiles, tile)
		rv.thumbsGrid.Add(tile)
	}

	rv.sections.Show()
	rv.container.Refresh()
	return urls
}

// UpdateCoverage re-marks keyword chips against a new draft
func (rv *ResultsView) UpdateCoverage(draftKeywords string) {
	if rv.result == nil {
		return
	}
	rv.keywordGrid.RemoveAll()
	rv.renderKeywords(draftKeywords)
	rv.keywordGrid.Refresh()
}

func (rv *ResultsView) renderKeywords(draftKeywords string) {
	rv.draft = draftKeywords
	rv.coverage = suggest.CompareKeywords(draftKeywords, rv.result.KeywordSuggestions)
	covered := make(map[string]bool, len(rv.coverage.Covered))
	for _, kw := range rv.coverage.Covered {
		covered[kw] = true
	}

	for _, kw := range rv.result.KeywordSuggestions {
		chip := widget.NewButton(kw, nil)
		if covered[kw] {
			chip.SetText(IconCheck + " " + kw)
			chip.Importance = widget.SuccessImportance
		} else {
			chip.Importance = widget.LowImportance
		}
		keyword := kw
		chip.OnTapped = func() { rv.copyTitle(keyword) }
		rv.keywordGrid.Add(chip)
	}

	rv.coverageLabel.SetText(fmt.Sprintf(rv.localization.GetText(KeyKeywordsCovered),
		len(rv.coverage.Covered), len(rv.result.KeywordSuggestions)))
}

// Coverage returns the keyword coverage of the current draft
func (rv *ResultsView) Coverage() suggest.KeywordCoverage {
	return rv.coverage
}

// ApplyThumbnail updates the tile a finished task belongs to. Tasks from a
// previous search are ignored, canceled tiles keep loading state.
func (rv *ResultsView) ApplyThumbnail(task *model.ThumbnailTask) {
	if task.Status == model.ThumbnailStatusCanceled {
		return
	}
	if task.Index < 0 || task.Index >= len(rv.tiles) {
		return
	}
	tile := rv.tiles[task.Index]
	if tile.URL() != task.URL {
		log.Printf("Ignoring stale thumbnail update: %s", task.URL)
		return
	}
	rv.finished[task.Index] = true
	failure := rv.localization.GetText(KeyThumbnailFailed)
	if task.LastError != "" && task.LastError != thumbnail.ErrTextError {
		failure += " (" + task.LastError + ")"
	}
	tile.Apply(task, failure)
}

// PendingThumbnails returns URLs of tiles whose download never finished,
// keyed by tile index
func (rv *ResultsView) PendingThumbnails() map[int]string {
	pending := make(map[int]string)
	for i, tile := range rv.tiles {
		if !rv.finished[i] {
			pending[i] = tile.URL()
		}
	}
	return pending
}

// RefreshTexts updates static texts after a language change
func (rv *ResultsView) RefreshTexts() {
	rv.refreshHeaders()
	switch rv.state {
	case statePlaceholder:
		rv.ShowPlaceholder()
	case stateEmpty:
		rv.ShowEmpty()
	case stateResults:
		rv.UpdateCoverage(rv.draft)
	}
}

func (rv *ResultsView) refreshHeaders() {
	rv.titlesHeader.SetText(rv.localization.GetText(KeyTitleSuggestions))
	rv.keywordHeader.SetText(rv.localization.GetText(KeyKeywordSuggestions))
	rv.thumbsHeader.SetText(rv.localization.GetText(KeyThumbnailIdeas))
}

func (rv *ResultsView) clear() {
	rv.result = nil
	rv.draft = ""
	rv.coverage = suggest.KeywordCoverage{}
	rv.tiles = nil
	rv.finished = make(map[int]bool)
	rv.titlesBox.RemoveAll()
	rv.keywordGrid.RemoveAll()
	rv.thumbsGrid.RemoveAll()
	rv.coverageLabel.SetText("")
}

func (rv *ResultsView) copyTitle(title string) {
	if rv.onCopyTitle != nil {
		rv.onCopyTitle(title)
	}
}

func (rv *ResultsView) openThumbnail(url string) {
	if rv.onOpenThumbnail != nil {
		rv.onOpenThumbnail(url)
	}
}
