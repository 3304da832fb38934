package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Export file naming
const (
	ExportBaseName = "chart"
)

// Tooltip overlay sizing
const (
	TooltipPadding    float32 = 4
	TooltipStrokeSize float32 = 1
	TooltipCorner     float32 = 3
)

// Text baseline sits this fraction of the font size below the top of a canvas.Text
const TextAscent = 0.8

// Notification behavior
const (
	NotificationAutoHide = 3 * time.Second
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 360
)
