// Package config loads the runtime settings from an optional TOML file,
// then applies environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/eco-clicker/audio"
	"github.com/lixenwraith/eco-clicker/constants"
	"github.com/lixenwraith/eco-clicker/game"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the complete runtime configuration
type Config struct {
	Log     LogConfig     `toml:"log"`
	Audio   AudioConfig   `toml:"audio"`
	Game    GameConfig    `toml:"game"`
	Content ContentConfig `toml:"content"`
}

// LogConfig controls file logging, off by default
type LogConfig struct {
	Enabled   bool       `toml:"enabled"`
	Level     slog.Level `toml:"level"`
	Path      string     `toml:"path"`
	MaxSizeMB int64      `toml:"max_size_mb"`
}

// AudioConfig controls sound cues
type AudioConfig struct {
	Enabled bool     `toml:"enabled"`
	Volume  int      `toml:"volume"` // 0-100
	MinGap  Duration `toml:"min_gap"`
}

// GameConfig holds loop and session timing
type GameConfig struct {
	Tick              Duration `toml:"tick"`
	SweepInterval     Duration `toml:"sweep_interval"`
	AutoPedalInterval Duration `toml:"auto_pedal_interval"`
	PopupDuration     Duration `toml:"popup_duration"`
	TipInterval       Duration `toml:"tip_interval"`
	TipDuration       Duration `toml:"tip_duration"`
	FeedbackDuration  Duration `toml:"feedback_duration"`
	QuizMinDelay      Duration `toml:"quiz_min_delay"`
	QuizMaxDelay      Duration `toml:"quiz_max_delay"`
	QuizRepeat        bool     `toml:"quiz_repeat"`
	Seed              uint64   `toml:"seed"` // Zero seeds from the clock
}

// ContentConfig points at an optional catalog file
type ContentConfig struct {
	Path string `toml:"path"` // Optional YAML catalog override
}

// Duration decodes TOML strings like "15s" or "2m30s"
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration as a Go duration string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func dur(d time.Duration) Duration { return Duration{d} }

// Default returns the settings used when no file is given
func Default() *Config {
	gc := game.DefaultConfig()
	return &Config{
		Log: LogConfig{
			Level:     slog.LevelInfo,
			Path:      "logs/eco-clicker.log",
			MaxSizeMB: 10,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  int(constants.DefaultMasterVolume * 100),
			MinGap:  dur(audio.DefaultAudioConfig().MinSoundGap),
		},
		Game: GameConfig{
			Tick:              dur(constants.GameUpdateInterval),
			SweepInterval:     dur(gc.SweepInterval),
			AutoPedalInterval: dur(gc.AutoPedalInterval),
			PopupDuration:     dur(gc.PopupDuration),
			TipInterval:       dur(gc.TipInterval),
			TipDuration:       dur(gc.TipDuration),
			FeedbackDuration:  dur(gc.FeedbackDuration),
			QuizMinDelay:      dur(gc.QuizMinDelay),
			QuizMaxDelay:      dur(gc.QuizMaxDelay),
			QuizRepeat:        gc.QuizRepeat,
		},
	}
}

// Load reads path over the defaults, applies environment overrides and validates
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open config: %w", err)
		}
		defer file.Close()

		dec := toml.NewDecoder(file)
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return nil, fmt.Errorf("%w: %s", ErrInvalid, strict.String())
			}
			return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides seed and debug logging from the environment
// Audio variables are applied by audio.LoadAudioConfig in AudioSettings
func (c *Config) ApplyEnv() error {
	if seed := os.Getenv("ECO_CLICKER_SEED"); seed != "" {
		v, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: ECO_CLICKER_SEED: %v", ErrInvalid, err)
		}
		c.Game.Seed = v
	}
	if debug := os.Getenv("ECO_CLICKER_DEBUG"); debug != "" {
		if v, err := strconv.ParseBool(debug); err == nil && v {
			c.EnableDebug()
		}
	}
	return nil
}

// EnableDebug turns on file logging at debug level
func (c *Config) EnableDebug() {
	c.Log.Enabled = true
	c.Log.Level = slog.LevelDebug
}

// Validate reports every problem at once
func (c *Config) Validate() error {
	var errs []error

	positive := []struct {
		name string
		d    Duration
	}{
		{"game.tick", c.Game.Tick},
		{"game.sweep_interval", c.Game.SweepInterval},
		{"game.auto_pedal_interval", c.Game.AutoPedalInterval},
		{"game.popup_duration", c.Game.PopupDuration},
		{"game.tip_interval", c.Game.TipInterval},
		{"game.tip_duration", c.Game.TipDuration},
		{"game.feedback_duration", c.Game.FeedbackDuration},
		{"game.quiz_min_delay", c.Game.QuizMinDelay},
		{"game.quiz_max_delay", c.Game.QuizMaxDelay},
	}
	for _, p := range positive {
		if p.d.Duration <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.d.Duration))
		}
	}

	if c.Game.QuizMinDelay.Duration > c.Game.QuizMaxDelay.Duration {
		errs = append(errs, fmt.Errorf("%w: game.quiz_min_delay %v exceeds quiz_max_delay %v",
			ErrInvalid, c.Game.QuizMinDelay.Duration, c.Game.QuizMaxDelay.Duration))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		errs = append(errs, fmt.Errorf("%w: audio.volume must be 0-100, got %d", ErrInvalid, c.Audio.Volume))
	}
	if c.Audio.MinGap.Duration < 0 {
		errs = append(errs, fmt.Errorf("%w: audio.min_gap must not be negative", ErrInvalid))
	}
	if c.Log.Enabled && c.Log.Path == "" {
		errs = append(errs, fmt.Errorf("%w: log.path is required when logging is enabled", ErrInvalid))
	}
	if c.Log.MaxSizeMB <= 0 {
		errs = append(errs, fmt.Errorf("%w: log.max_size_mb must be positive", ErrInvalid))
	}

	return errors.Join(errs...)
}

// GameSettings converts the [game] section to session timing
func (c *Config) GameSettings() game.Config {
	return game.Config{
		SweepInterval:     c.Game.SweepInterval.Duration,
		AutoPedalInterval: c.Game.AutoPedalInterval.Duration,
		PopupDuration:     c.Game.PopupDuration.Duration,
		TipInterval:       c.Game.TipInterval.Duration,
		TipDuration:       c.Game.TipDuration.Duration,
		FeedbackDuration:  c.Game.FeedbackDuration.Duration,
		QuizMinDelay:      c.Game.QuizMinDelay.Duration,
		QuizMaxDelay:      c.Game.QuizMaxDelay.Duration,
		QuizRepeat:        c.Game.QuizRepeat,
	}
}

// AudioSettings converts the [audio] section and applies audio environment overrides
func (c *Config) AudioSettings() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = float64(c.Audio.Volume) / 100.0
	ac.MinSoundGap = c.Audio.MinGap.Duration
	return audio.LoadAudioConfig(ac)
}

// MaxLogBytes is the rotation threshold in bytes
func (c *Config) MaxLogBytes() int64 {
	return c.Log.MaxSizeMB * 1024 * 1024
}
