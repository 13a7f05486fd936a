package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-optimizer/internal/analyze"
	"github.com/ytget/yt-optimizer/internal/config"
	"github.com/ytget/yt-optimizer/internal/platform"
	"github.com/ytget/yt-optimizer/internal/thumbnail"
	"github.com/ytget/yt-optimizer/internal/ui"
	"github.com/ytget/yt-optimizer/internal/youtube"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-optimizer"
	AppName = "YT Optimizer"
)

func main() {
	log.Printf("YT Optimizer v%s starting...", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp, config.LoadEnv())

	client := youtube.NewClient(youtube.Config{
		APIKey:            settings.APIKey(),
		BaseURL:           settings.BaseURL(),
		RequestsPerSecond: settings.GetRequestsPerSecond(),
	})
	if !client.HasAPIKey() {
		log.Printf("No YouTube API key configured; set %s or add one in Settings", config.EnvAPIKey)
	}

	analyzer := analyze.NewService(client, platform.NewPlaylistResolver(), settings.GetMaxResults())
	thumbs := thumbnail.NewService(nil, settings.GetThumbnailWorkers())
	thumbs.SetRateLimit(settings.GetRequestsPerSecond())

	rootUI := ui.NewRootUI(myWindow, myApp, settings, analyzer, thumbs)
	rootUI.SetAPIKeyHandler(client.SetAPIKey)

	myWindow.ShowAndRun()
}
