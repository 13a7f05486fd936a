package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It relays the topic to the analysis service and renders title, keyword and
// thumbnail suggestions. All UI strings are localized via Localization.
