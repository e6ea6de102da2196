package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconError    = "❌"
	IconDone     = "✔"
	IconFolder   = "📁"
)

// Text fragments
const (
	ProgressLabelFormat = "%d%%"
	MiddleDotSeparator  = " · "
)

// Window and layout sizing
const (
	WindowWidth   float32 = 640
	WindowHeight  float32 = 320
	LogoSize      float32 = 32
	DialogWidth   float32 = 500
	DialogHeight  float32 = 380
	PercentLabelW float32 = 48
)

// Popup behavior
const (
	PopUpAutoHide = 3 * time.Second
)
