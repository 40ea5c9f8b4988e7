package audio

import (
	"errors"
)

// SoundType represents different sound cues
type SoundType int

const (
	SoundClick    SoundType = iota // Pedal press
	SoundDenied                    // Purchase or activation refused
	SoundPurchase                  // Upgrade bought
	SoundBonus                     // Temporary bonus started
	SoundCorrect                   // Quiz answered correctly
	SoundWrong                     // Quiz answered wrongly
	SoundTip                       // Eco tip shown
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundClick:    "click",
	SoundDenied:   "denied",
	SoundPurchase: "purchase",
	SoundBonus:    "bonus",
	SoundCorrect:  "correct",
	SoundWrong:    "wrong",
	SoundTip:      "tip",
}

// String returns the name used in config and logs
func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType maps a config name back to its SoundType
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio output not initialized")
)
