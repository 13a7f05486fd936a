package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-optimizer/internal/analyze"
	"github.com/ytget/yt-optimizer/internal/config"
	"github.com/ytget/yt-optimizer/internal/model"
	"github.com/ytget/yt-optimizer/internal/platform"
)

// ThumbnailFetcher downloads thumbnails in the background
type ThumbnailFetcher interface {
	SetUpdateCallback(func(*model.ThumbnailTask))
	SetMaxParallel(n int)
	SetRateLimit(perSecond float64)
	FetchAll(ctx context.Context, urls []string) []*model.ThumbnailTask
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	analyzer     analyze.Analyzer
	thumbs       ThumbnailFetcher
	settings     *config.Settings
	localization *Localization

	// Ideas tab
	topicEntry    *widget.Entry
	titleEntry    *widget.Entry
	keywordsEntry *widget.Entry
	scriptEntry   *widget.Entry
	searchBtn     *widget.Button
	topicLabel    *widget.Label
	titleLabel    *widget.Label
	keywordsLabel *widget.Label
	scriptLabel   *widget.Label

	tabs        *container.AppTabs
	results     *ResultsView
	settingsBtn *widget.Button

	// Status panel
	statusContainer *fyne.Container
	statusLabel     *widget.Label
	statusSpinner   *widget.ProgressBarInfinite

	// Job currently shown by the UI
	currentJobID string

	// Thumbnail fetch of the shown result
	thumbMutex   sync.Mutex
	thumbCancel  context.CancelFunc
	thumbIndexes []int // fetch position -> tile index

	// onAPIKeyChanged receives the effective key after settings are saved
	onAPIKeyChanged func(key string)

	// openURL opens a link in the browser; replaced in tests
	openURL func(link string) error
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, analyzer analyze.Analyzer, thumbs ThumbnailFetcher) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		analyzer:     analyzer,
		thumbs:       thumbs,
		settings:     settings,
		localization: localization,
	}
	ui.openURL = ui.openInBrowser

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.analyzer.SetUpdateCallback(ui.onJobUpdate)
	ui.thumbs.SetUpdateCallback(ui.onThumbnailUpdate)

	ui.setupUI()
	return ui
}

// SetAPIKeyHandler sets the function that receives the API key whenever the
// settings are saved
func (ui *RootUI) SetAPIKeyHandler(handler func(key string)) {
	ui.onAPIKeyChanged = handler
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	t := ui.localization.GetText

	ui.results = NewResultsView(ui.localization)
	ui.results.SetCallbacks(ui.onCopyText, ui.onOpenThumbnail)

	ui.topicLabel = widget.NewLabel(t(KeyTopic))
	ui.topicEntry = widget.NewEntry()
	ui.topicEntry.SetPlaceHolder(t(KeyEnterTopic))
	// Trigger search when user presses Enter in the topic field
	ui.topicEntry.OnSubmitted = func(string) {
		ui.onSearchClick()
	}

	ui.titleLabel = widget.NewLabel(t(KeyDraftTitle))
	ui.titleEntry = widget.NewEntry()
	ui.titleEntry.SetPlaceHolder(t(KeyDraftTitleHint))

	ui.keywordsLabel = widget.NewLabel(t(KeyDraftKeywords))
	ui.keywordsEntry = widget.NewEntry()
	ui.keywordsEntry.SetPlaceHolder(t(KeyDraftKeywordsHint))
	ui.keywordsEntry.OnChanged = func(text string) {
		ui.results.UpdateCoverage(text)
	}

	ui.scriptLabel = widget.NewLabel(t(KeyScript))
	ui.scriptEntry = widget.NewMultiLineEntry()
	ui.scriptEntry.SetPlaceHolder(t(KeyScriptHint))
	ui.scriptEntry.Wrapping = fyne.TextWrapWord
	ui.scriptEntry.SetMinRowsVisible(ScriptEntryMinRows)

	ui.searchBtn = widget.NewButton(t(KeyGetSuggestions), ui.onSearchClick)
	ui.searchBtn.Importance = widget.HighImportance

	// Status panel under the button (hidden by default)
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignLeading
	ui.statusLabel.Wrapping = fyne.TextWrapWord
	ui.statusSpinner = widget.NewProgressBarInfinite()
	ui.statusSpinner.Hide()
	ui.statusContainer = container.NewBorder(nil, nil, ui.statusSpinner, nil, ui.statusLabel)
	ui.statusContainer.Hide()

	ideas := container.NewBorder(
		container.NewVBox(
			ui.topicLabel, ui.topicEntry,
			ui.titleLabel, ui.titleEntry,
			ui.keywordsLabel, ui.keywordsEntry,
			ui.scriptLabel,
		),
		container.NewVBox(ui.searchBtn, ui.statusContainer),
		nil,
		nil,
		ui.scriptEntry,
	)

	ui.tabs = container.NewAppTabs(
		container.NewTabItem(t(KeyIdeasTab), container.NewPadded(ideas)),
		container.NewTabItem(t(KeyResultsTab), ui.results.Container()),
	)
	ui.tabs.OnSelected = func(*container.TabItem) {
		ui.onTabSelected(ui.tabs.SelectedIndex())
	}

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	var header *fyne.Container
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewBorder(nil, nil, logoImage, ui.settingsBtn)
	} else {
		header = container.NewBorder(nil, nil, nil, ui.settingsBtn)
	}

	content := container.NewBorder(
		header,  // top
		nil,     // bottom
		nil,     // left
		nil,     // right
		ui.tabs, // center
	)

	ui.window.SetContent(content)
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(code)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText

	ui.window.SetTitle(t(KeyAppTitle))

	ui.topicLabel.SetText(t(KeyTopic))
	ui.topicEntry.SetPlaceHolder(t(KeyEnterTopic))
	ui.titleLabel.SetText(t(KeyDraftTitle))
	ui.titleEntry.SetPlaceHolder(t(KeyDraftTitleHint))
	ui.keywordsLabel.SetText(t(KeyDraftKeywords))
	ui.keywordsEntry.SetPlaceHolder(t(KeyDraftKeywordsHint))
	ui.scriptLabel.SetText(t(KeyScript))
	ui.scriptEntry.SetPlaceHolder(t(KeyScriptHint))
	ui.searchBtn.SetText(t(KeyGetSuggestions))

	ui.tabs.Items[TabIdeas].Text = t(KeyIdeasTab)
	ui.tabs.Items[TabResults].Text = t(KeyResultsTab)
	ui.tabs.Refresh()

	ui.results.RefreshTexts()
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.localization, ui.applySettings).Show()
}

// applySettings pushes saved settings into the running services
func (ui *RootUI) applySettings() {
	ui.analyzer.SetMaxResults(ui.settings.GetMaxResults())
	ui.thumbs.SetMaxParallel(ui.settings.GetThumbnailWorkers())
	ui.thumbs.SetRateLimit(ui.settings.GetRequestsPerSecond())
	if ui.onAPIKeyChanged != nil {
		ui.onAPIKeyChanged(ui.settings.APIKey())
	}
	if ui.localization.GetCurrentLanguage() != ui.settings.GetLanguage() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	}
}

// onSearchClick handles the search button click
func (ui *RootUI) onSearchClick() {
	topic := strings.TrimSpace(ui.topicEntry.Text)
	if topic == "" {
		ui.setStatus(ui.localization.GetText(KeyPleaseEnterTopic), false)
		ui.showPopup(ui.localization.GetText(KeyPleaseEnterTopic))
		return
	}

	log.Printf("Submitting search for topic: %s", topic)

	job, err := ui.analyzer.Submit(topic)
	if err != nil {
		log.Printf("Submit failed: %v", err)
		msg := err.Error()
		if errors.Is(err, analyze.ErrEmptyTopic) {
			msg = ui.localization.GetText(KeyPleaseEnterTopic)
		} else if strings.Contains(msg, "already in progress") {
			msg = ui.localization.GetText(KeyAlreadySearching)
		}
		ui.setStatus(msg, false)
		ui.showPopup(msg)
		return
	}

	ui.currentJobID = job.ID
	ui.searchBtn.Disable()
	ui.setStatus(ui.localization.GetText(KeySearching), true)
}

// onJobUpdate is called by the analysis service from its goroutines
func (ui *RootUI) onJobUpdate(job *model.SearchJob) {
	fyne.Do(func() {
		ui.handleJobUpdate(job)
	})
}

// handleJobUpdate applies a job state change. Must run on the UI goroutine.
func (ui *RootUI) handleJobUpdate(job *model.SearchJob) {
	if job == nil || job.ID != ui.currentJobID {
		return
	}

	switch job.Status {
	case model.JobStatusCompleted:
		ui.searchBtn.Enable()
		ui.displayResults(job)
	case model.JobStatusError:
		ui.searchBtn.Enable()
		ui.displayError(job)
	}
}

// displayResults renders a finished job and starts loading its thumbnails
func (ui *RootUI) displayResults(job *model.SearchJob) {
	ui.cancelThumbnails()

	if job.Result.IsEmpty() {
		log.Printf("No suggestions for topic %q", job.Topic)
		ui.setStatus(ui.localization.GetText(KeyNoSuggestions), false)
		ui.results.ShowEmpty()
		ui.tabs.SelectIndex(TabResults)
		return
	}

	log.Printf("Search %s finished in %v: %d titles, %d keywords, %d thumbnails",
		job.ID, job.Duration(), len(job.Result.TitleSuggestions),
		len(job.Result.KeywordSuggestions), len(job.Result.ThumbnailURLs))

	ui.setStatus(fmt.Sprintf(ui.localization.GetText(KeySearchComplete),
		len(job.Result.TitleSuggestions), job.Videos), false)

	urls := ui.results.ShowResult(job.Result, ui.keywordsEntry.Text, ui.settings.GetThumbnailLimit())
	pending := make(map[int]string, len(urls))
	for i, u := range urls {
		pending[i] = u
	}
	ui.startThumbnails(pending)
	ui.tabs.SelectIndex(TabResults)
}

// displayError reports a failed job. Inputs and results stay as they were.
func (ui *RootUI) displayError(job *model.SearchJob) {
	log.Printf("Search %s failed: %s", job.ID, job.LastError)
	ui.setStatus(ui.localization.GetText(KeySearchFailed)+": "+job.LastError, false)
	dialog.ShowError(errors.New(job.LastError), ui.window)
}

// onTabSelected stops thumbnail loading when the results are hidden and
// resumes it for unfinished tiles when they are shown again
func (ui *RootUI) onTabSelected(index int) {
	if index != TabResults {
		ui.cancelThumbnails()
		return
	}

	ui.thumbMutex.Lock()
	running := ui.thumbCancel != nil
	ui.thumbMutex.Unlock()
	if running {
		return
	}
	if pending := ui.results.PendingThumbnails(); len(pending) > 0 {
		ui.startThumbnails(pending)
	}
}

// startThumbnails fetches the given tiles, replacing any running fetch
func (ui *RootUI) startThumbnails(pending map[int]string) {
	if len(pending) == 0 {
		return
	}

	// FetchAll indexes tasks by position; keep the tile index alongside
	indexes := make([]int, 0, len(pending))
	urls := make([]string, 0, len(pending))
	for i := 0; i < len(ui.results.tiles); i++ {
		if u, ok := pending[i]; ok {
			indexes = append(indexes, i)
			urls = append(urls, u)
		}
	}

	ui.thumbMutex.Lock()
	if ui.thumbCancel != nil {
		ui.thumbCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	ui.thumbCancel = cancel
	ui.thumbIndexes = indexes
	ui.thumbMutex.Unlock()

	go func() {
		tasks := ui.thumbs.FetchAll(ctx, urls)
		fetched := 0
		for _, task := range tasks {
			if task.Status == model.ThumbnailStatusComplete {
				fetched++
			}
		}
		log.Printf("Thumbnail fetch finished: %d/%d loaded", fetched, len(tasks))
	}()
}

// cancelThumbnails stops the running thumbnail fetch, if any
func (ui *RootUI) cancelThumbnails() {
	ui.thumbMutex.Lock()
	defer ui.thumbMutex.Unlock()
	if ui.thumbCancel != nil {
		ui.thumbCancel()
		ui.thumbCancel = nil
	}
}

// onThumbnailUpdate is called by the thumbnail pool from worker goroutines
func (ui *RootUI) onThumbnailUpdate(task *model.ThumbnailTask) {
	ui.thumbMutex.Lock()
	tileTask := *task
	if task.Index >= 0 && task.Index < len(ui.thumbIndexes) {
		tileTask.Index = ui.thumbIndexes[task.Index]
	}
	ui.thumbMutex.Unlock()

	fyne.Do(func() {
		ui.results.ApplyThumbnail(&tileTask)
	})
}

// onCopyText copies text to the clipboard and briefly confirms it in the
// status panel
func (ui *RootUI) onCopyText(text string) {
	ui.app.Clipboard().SetContent(text)

	previous := ui.statusLabel.Text
	copied := ui.localization.GetText(KeyCopiedToClipboard)
	ui.setStatus(copied, false)

	time.AfterFunc(StatusRevertDelay, func() {
		fyne.Do(func() {
			if ui.statusLabel.Text == copied {
				ui.setStatus(previous, false)
			}
		})
	})
}

// onOpenThumbnail opens a thumbnail in the browser
func (ui *RootUI) onOpenThumbnail(link string) {
	if err := ui.openURL(link); err != nil {
		log.Printf("Failed to open %s: %v", link, err)
		ui.showPopup(ui.localization.GetText(KeyOpenFailed) + ": " + err.Error())
	}
}

// openInBrowser uses the toolkit first and the platform command as fallback
func (ui *RootUI) openInBrowser(link string) error {
	parsed, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	err = ui.app.OpenURL(parsed)
	if err == nil {
		return nil
	}
	log.Printf("Toolkit could not open URL, falling back to system browser: %v", err)
	return platform.OpenURL(link)
}

// setStatus displays a message in the status panel under the search button.
// When spinning is true, a spinner indicates background activity.
func (ui *RootUI) setStatus(message string, spinning bool) {
	ui.statusLabel.SetText(message)
	if spinning {
		ui.statusSpinner.Show()
		ui.statusSpinner.Start()
	} else {
		ui.statusSpinner.Stop()
		ui.statusSpinner.Hide()
	}
	if message == "" && !spinning {
		ui.statusContainer.Hide()
		return
	}
	ui.statusContainer.Show()
	ui.statusContainer.Refresh()
}

// showPopup shows a short message over the window and hides it after a delay
func (ui *RootUI) showPopup(message string) {
	popup := widget.NewPopUp(widget.NewLabel(message), ui.window.Canvas())
	popup.Show()
	time.AfterFunc(PopupAutoHide, func() {
		fyne.Do(popup.Hide)
	})
}
