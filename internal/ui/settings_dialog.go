package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-optimizer/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	apiKeyEntry       *widget.Entry
	maxResultsEntry   *widget.Entry
	thumbWorkersEntry *widget.Entry
	thumbLimitEntry   *widget.Entry
	rateLimitEntry    *widget.Entry
	languageSelect    *widget.Select

	// display name -> language code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values have been written to preferences.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		window:        window,
		localization:  localization,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.apiKeyEntry = widget.NewPasswordEntry()
	sd.apiKeyEntry.SetPlaceHolder(t(KeyAPIKeyHint))

	sd.maxResultsEntry = widget.NewEntry()
	sd.maxResultsEntry.SetPlaceHolder("1-" + strconv.Itoa(config.MaxResultsLimit))

	sd.thumbWorkersEntry = widget.NewEntry()
	sd.thumbWorkersEntry.SetPlaceHolder("1-" + strconv.Itoa(config.ThumbWorkersLimit))

	sd.thumbLimitEntry = widget.NewEntry()
	sd.thumbLimitEntry.SetPlaceHolder("1-" + strconv.Itoa(config.ThumbLimitMax))

	sd.rateLimitEntry = widget.NewEntry()
	sd.rateLimitEntry.SetPlaceHolder(formatRate(config.DefaultRequestsPerSec))

	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = t(KeySelectLanguage)

	form := container.NewVBox(
		widget.NewLabel(t(KeySearchSettings)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyAPIKey)+":"),
		sd.apiKeyEntry,

		widget.NewLabel(t(KeyMaxResults)+":"),
		sd.maxResultsEntry,

		widget.NewLabel(t(KeyThumbnailWorkers)+":"),
		sd.thumbWorkersEntry,

		widget.NewLabel(t(KeyThumbnailLimit)+":"),
		sd.thumbLimitEntry,

		widget.NewLabel(t(KeyRequestsPerSecond)+":"),
		sd.rateLimitEntry,

		widget.NewSeparator(),
		widget.NewLabel(t(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 520))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.apiKeyEntry.SetText(sd.settings.GetAPIKeyOverride())
	sd.maxResultsEntry.SetText(strconv.Itoa(sd.settings.GetMaxResults()))
	sd.thumbWorkersEntry.SetText(strconv.Itoa(sd.settings.GetThumbnailWorkers()))
	sd.thumbLimitEntry.SetText(strconv.Itoa(sd.settings.GetThumbnailLimit()))
	sd.rateLimitEntry.SetText(formatRate(sd.settings.GetRequestsPerSecond()))

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
		}
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetAPIKeyOverride(sd.apiKeyEntry.Text)

	if n, err := strconv.Atoi(sd.maxResultsEntry.Text); err == nil {
		sd.settings.SetMaxResults(n)
	}
	if n, err := strconv.Atoi(sd.thumbWorkersEntry.Text); err == nil {
		sd.settings.SetThumbnailWorkers(n)
	}
	if n, err := strconv.Atoi(sd.thumbLimitEntry.Text); err == nil {
		sd.settings.SetThumbnailLimit(n)
	}
	if rps, err := strconv.ParseFloat(strings.TrimSpace(sd.rateLimitEntry.Text), 64); err == nil {
		sd.settings.SetRequestsPerSecond(rps)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

func formatRate(rps float64) string {
	return strconv.FormatFloat(rps, 'f', -1, 64)
}
