package constants

import "time"

// UI Layout Constants
const (
	// ModeIndicatorWidth is the consistent width for all mode indicators
	ModeIndicatorWidth = 10

	// Mode indicator text (all padded to ModeIndicatorWidth)
	ModeTextPlay    = "  PLAY    "
	ModeTextQuiz    = "  QUIZ    "
	ModeTextCommand = " COMMAND  "

	// MinScreenWidth and MinScreenHeight are below which a resize hint is drawn instead
	MinScreenWidth  = 60
	MinScreenHeight = 22

	// PedalButtonWidth and PedalButtonHeight size the main click target
	PedalButtonWidth  = 20
	PedalButtonHeight = 5

	// UpgradeRowWidth is the width of one upgrade row in the shop list
	UpgradeRowWidth = 58

	// NoticeWidth is the width of the tip box in the top-right corner
	NoticeWidth = 36

	// QuizWidth is the width of the quiz modal
	QuizWidth = 52
)

// UI Timing Constants
const (
	// CommandStatusMessageTimeout is how long command status messages are displayed
	CommandStatusMessageTimeout = 2 * time.Second
)

// UI Colors (hex, converted through go-colorful)
const (
	ColorTitle       = "#22c55e"
	ColorText        = "#e5e7eb"
	ColorMuted       = "#6b7280"
	ColorPedal       = "#16a34a"
	ColorAffordable  = "#2563eb"
	ColorBonus       = "#eab308"
	ColorAutoPedal   = "#3b82f6"
	ColorNoticeEdge  = "#22c55e"
	ColorQuizEdge    = "#eab308"
	ColorPopupStart  = "#4ade80"
	ColorPopupEnd    = "#14532d"
	ColorBackground  = "#0b1410"
	ColorStatusBar   = "#1f2937"
	ColorCommandText = "#fde68a"
)
