package audio

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/eco-clicker/constants"
)

// AudioConfig holds audio output settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes map[SoundType]float64
	SampleRate    int
	MinSoundGap   time.Duration // Same sound is dropped if retriggered sooner
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		EffectVolumes: map[SoundType]float64{
			SoundClick:    0.4,
			SoundDenied:   0.6,
			SoundPurchase: 0.7,
			SoundBonus:    0.8,
			SoundCorrect:  0.8,
			SoundWrong:    0.7,
			SoundTip:      0.5,
		},
		SampleRate:  constants.AudioSampleRate,
		MinSoundGap: 30 * time.Millisecond,
	}
}

// LoadAudioConfig applies environment overrides on top of base
// A nil base starts from DefaultAudioConfig
func LoadAudioConfig(base *AudioConfig) *AudioConfig {
	cfg := base
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if cfg.EffectVolumes == nil {
		cfg.EffectVolumes = DefaultAudioConfig().EffectVolumes
	}

	if enabled := os.Getenv("ECO_CLICKER_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv("ECO_CLICKER_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// Per-effect volumes as JSON keyed by sound name
	if effectVols := os.Getenv("ECO_CLICKER_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, ok := ParseSoundType(name); ok {
					cfg.EffectVolumes[st] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("ECO_CLICKER_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
