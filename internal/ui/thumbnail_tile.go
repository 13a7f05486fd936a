package ui

import (
	"bytes"
	"path"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-optimizer/internal/model"
)

// ThumbnailTile shows one thumbnail and opens its URL when tapped. It starts
// with a spinner and switches to the image or a failure label once the
// download task finishes.
type ThumbnailTile struct {
	widget.BaseWidget

	url   string
	onTap func(url string)

	spinner *widget.ProgressBarInfinite
	image   *canvas.Image
	failure *widget.Label
	stack   *fyne.Container
}

// NewThumbnailTile creates a tile in the loading state
func NewThumbnailTile(url string, onTap func(url string)) *ThumbnailTile {
	tt := &ThumbnailTile{url: url, onTap: onTap}
	tt.ExtendBaseWidget(tt)

	tt.spinner = widget.NewProgressBarInfinite()
	tt.failure = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	tt.failure.Wrapping = fyne.TextWrapWord
	tt.failure.Hide()

	tt.image = canvas.NewImageFromResource(theme.FileImageIcon())
	tt.image.FillMode = canvas.ImageFillContain
	tt.image.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))

	tt.stack = container.NewStack(tt.image, container.NewCenter(tt.spinner), tt.failure)
	return tt
}

// URL returns the thumbnail address
func (tt *ThumbnailTile) URL() string {
	return tt.url
}

// Apply updates the tile from a finished task. Must run on the UI goroutine.
func (tt *ThumbnailTile) Apply(task *model.ThumbnailTask, failureText string) {
	tt.spinner.Stop()
	tt.spinner.Hide()

	switch task.Status {
	case model.ThumbnailStatusComplete:
		img := canvas.NewImageFromReader(bytes.NewReader(task.Data), path.Base(task.URL))
		if img != nil {
			img.FillMode = canvas.ImageFillContain
			img.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))
			tt.image = img
			tt.stack.Objects[0] = img
		}
		tt.failure.Hide()
	case model.ThumbnailStatusError:
		tt.failure.SetText(IconError + " " + failureText)
		tt.failure.Show()
	}
	tt.stack.Refresh()
}

// Tapped implements fyne.Tappable
func (tt *ThumbnailTile) Tapped(*fyne.PointEvent) {
	if tt.onTap != nil {
		tt.onTap(tt.url)
	}
}

// Cursor shows a pointer over the tile on desktop
func (tt *ThumbnailTile) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// CreateRenderer implements fyne.Widget
func (tt *ThumbnailTile) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(tt.stack)
}
