package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/yt-optimizer/internal/config"
)

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.Settings, *int) {
	t.Helper()
	app := test.NewApp()
	window := app.NewWindow("test")
	settings := config.NewSettings(app, config.Env{})

	saved := 0
	sd := NewSettingsDialog(settings, window, NewLocalization(), func() { saved++ })
	return sd, settings, &saved
}

func TestSettingsDialog_LoadsRequestsPerSecond(t *testing.T) {
	sd, settings, _ := newTestSettingsDialog(t)
	settings.SetRequestsPerSecond(2.5)

	sd.loadCurrentSettings()

	assert.Equal(t, "2.5", sd.rateLimitEntry.Text)
}

func TestSettingsDialog_SavesRequestsPerSecond(t *testing.T) {
	sd, settings, saved := newTestSettingsDialog(t)
	sd.loadCurrentSettings()

	sd.rateLimitEntry.SetText(" 0.5 ")
	sd.onSave(true)

	assert.Equal(t, 0.5, settings.GetRequestsPerSecond())
	assert.Equal(t, 1, *saved)
}

func TestSettingsDialog_IgnoresInvalidRequestsPerSecond(t *testing.T) {
	sd, settings, _ := newTestSettingsDialog(t)
	sd.loadCurrentSettings()

	sd.rateLimitEntry.SetText("fast")
	sd.onSave(true)

	assert.Equal(t, config.DefaultRequestsPerSec, settings.GetRequestsPerSecond())
}

func TestSettingsDialog_CancelKeepsSettings(t *testing.T) {
	sd, settings, saved := newTestSettingsDialog(t)
	sd.loadCurrentSettings()

	sd.rateLimitEntry.SetText("9")
	sd.onSave(false)

	assert.Equal(t, config.DefaultRequestsPerSec, settings.GetRequestsPerSecond())
	assert.Zero(t, *saved)
}
