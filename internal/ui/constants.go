package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconCopy     = "📋"
	IconCheck    = "✓"
	IconEye      = "👁"
	IconError    = "❌"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	TitleCardMinWidth  float32 = 400
	TitleCardMinHeight float32 = 56

	ThumbnailWidth  float32 = 192
	ThumbnailHeight float32 = 108

	KeywordChipWidth  float32 = 150
	KeywordChipHeight float32 = 32

	ScriptEntryMinRows = 8

	WindowWidth  float32 = 900
	WindowHeight float32 = 650
)

// Status and popup behavior
const (
	StatusRevertDelay = 3 * time.Second
	PopupAutoHide     = 2 * time.Second
)

// Tab indexes
const (
	TabIdeas = iota
	TabResults
)
