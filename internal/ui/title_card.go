package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-optimizer/internal/model"
)

// TitleCard shows one title suggestion with its channel, view count and a
// copy button
type TitleCard struct {
	widget.BaseWidget

	suggestion   model.TitleSuggestion
	localization *Localization

	titleLabel *widget.Label
	metaLabel  *widget.Label
	copyBtn    *widget.Button
	layout     *fyne.Container

	onCopy func(title string)
}

// NewTitleCard creates a card for suggestion. onCopy receives the title when
// the copy button is pressed.
func NewTitleCard(suggestion model.TitleSuggestion, localization *Localization, onCopy func(title string)) *TitleCard {
	tc := &TitleCard{
		suggestion:   suggestion,
		localization: localization,
		onCopy:       onCopy,
	}
	tc.ExtendBaseWidget(tc)
	tc.createUI()
	return tc
}

// Suggestion returns the suggestion shown by the card
func (tc *TitleCard) Suggestion() model.TitleSuggestion {
	return tc.suggestion
}

func (tc *TitleCard) createUI() {
	tc.titleLabel = widget.NewLabel(tc.suggestion.Title)
	tc.titleLabel.Wrapping = fyne.TextWrapWord
	tc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	tc.metaLabel = widget.NewLabel(tc.metaText())
	tc.metaLabel.Importance = widget.LowImportance

	tc.copyBtn = widget.NewButton(IconCopy+" "+tc.localization.GetText(KeyCopy), func() {
		if tc.onCopy != nil {
			tc.onCopy(tc.suggestion.Title)
		}
	})
	tc.copyBtn.Importance = widget.MediumImportance

	text := container.NewVBox(tc.titleLabel, tc.metaLabel)
	tc.layout = container.NewBorder(nil, widget.NewSeparator(), nil, container.NewCenter(tc.copyBtn), text)
}

// metaText formats "channel · 1,234 views"
func (tc *TitleCard) metaText() string {
	channel := tc.suggestion.ChannelTitle
	if channel == "" {
		channel = DashPlaceholder
	}
	views := tc.suggestion.ViewCount.Display(tc.localization.GetCurrentLanguage())
	return channel + MiddleDotSeparator + IconEye + " " + views + " " + tc.localization.GetText(KeyViews)
}

// CreateRenderer implements fyne.Widget
func (tc *TitleCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(tc.layout)
}

// MinSize keeps cards readable in narrow windows
func (tc *TitleCard) MinSize() fyne.Size {
	size := tc.BaseWidget.MinSize()
	return fyne.NewSize(fyne.Max(size.Width, TitleCardMinWidth), fyne.Max(size.Height, TitleCardMinHeight))
}
