package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume is applied when no config overrides it
	DefaultMasterVolume = 0.6
)

// Click Sound Timing
const (
	ClickSoundDuration = 40 * time.Millisecond
	ClickSoundAttack   = 2 * time.Millisecond
	ClickSoundRelease  = 30 * time.Millisecond
)

// Denied Sound Timing
const (
	DeniedSoundDuration = 120 * time.Millisecond
	DeniedSoundAttack   = 5 * time.Millisecond
	DeniedSoundRelease  = 40 * time.Millisecond
)

// Purchase Sound Timing (two-note chime)
const (
	PurchaseSoundNote1Duration = 70 * time.Millisecond
	PurchaseSoundNote2Duration = 180 * time.Millisecond
	PurchaseSoundAttack        = 3 * time.Millisecond
	PurchaseSoundRelease       = 120 * time.Millisecond
)

// Bonus Sound Timing (rising arpeggio)
const (
	BonusSoundNoteDuration = 60 * time.Millisecond
	BonusSoundAttack       = 3 * time.Millisecond
	BonusSoundRelease      = 40 * time.Millisecond
)

// Tip Chime Timing
const (
	TipSoundDuration = 500 * time.Millisecond
	TipSoundAttack   = 5 * time.Millisecond
	TipSoundRelease  = 450 * time.Millisecond
)
