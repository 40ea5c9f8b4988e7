package constants

import (
	"testing"
)

// TestQuizDelayWindow verifies the quiz trigger window is well formed
func TestQuizDelayWindow(t *testing.T) {
	if QuizMinDelay <= 0 {
		t.Errorf("QuizMinDelay must be positive, got %v", QuizMinDelay)
	}
	if QuizMaxDelay <= QuizMinDelay {
		t.Errorf("QuizMaxDelay %v must exceed QuizMinDelay %v", QuizMaxDelay, QuizMinDelay)
	}
}

// TestTipTimingFitsInterval verifies a scheduled tip hides before the next one fires
func TestTipTimingFitsInterval(t *testing.T) {
	if TipDuration >= TipInterval {
		t.Errorf("TipDuration %v should be shorter than TipInterval %v", TipDuration, TipInterval)
	}
}

// TestModeIndicatorWidth verifies all mode strings share the indicator width
func TestModeIndicatorWidth(t *testing.T) {
	for _, s := range []string{ModeTextPlay, ModeTextQuiz, ModeTextCommand} {
		if len(s) != ModeIndicatorWidth {
			t.Errorf("mode text %q has width %d, want %d", s, len(s), ModeIndicatorWidth)
		}
	}
}

// TestLayoutFitsMinimumScreen verifies fixed widgets fit the minimum screen
func TestLayoutFitsMinimumScreen(t *testing.T) {
	tests := []struct {
		name  string
		width int
	}{
		{"pedal button", PedalButtonWidth},
		{"upgrade row", UpgradeRowWidth},
		{"notice", NoticeWidth},
		{"quiz", QuizWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.width > MinScreenWidth {
				t.Errorf("%s width %d exceeds MinScreenWidth %d", tt.name, tt.width, MinScreenWidth)
			}
		})
	}
}
