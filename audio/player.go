package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/eco-clicker/constants"
)

// Player renders every cue once and mixes copies into the speaker on demand
// A disabled or failed player stays silent; Play never blocks on the device
type Player struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	log         *slog.Logger
	mixer       *beep.Mixer
	buffers     [soundTypeCount]*beep.Buffer
	lastPlayed  [soundTypeCount]time.Time
	initialized bool

	// Overridable for throttle tests
	now func() time.Time
}

// NewPlayer creates an uninitialized player
func NewPlayer(cfg *AudioConfig, log *slog.Logger) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Player{
		cfg:   cfg,
		log:   log,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Init opens the speaker and pre-renders all cues
// Returns nil without touching the device when audio is disabled
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init at %d Hz: %w", p.cfg.SampleRate, err)
	}

	for st := SoundType(0); st < soundTypeCount; st++ {
		p.buffers[st] = renderSound(st, p.cfg)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	p.log.Info("audio initialized", "sample_rate", p.cfg.SampleRate, "volume", p.cfg.MasterVolume)
	return nil
}

// Enabled reports whether cues reach the speaker
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues a cue on the mixer
func (p *Player) Play(st SoundType) {
	p.mu.Lock()
	if !p.initialized || !p.admit(st, p.now()) {
		p.mu.Unlock()
		return
	}
	buf := p.buffers[st]
	p.mu.Unlock()

	if buf == nil || buf.Len() == 0 {
		return
	}
	speaker.Lock()
	p.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// admit applies the per-sound retrigger gap; caller holds mu
func (p *Player) admit(st SoundType, now time.Time) bool {
	if st < 0 || st >= soundTypeCount {
		return false
	}
	if last := p.lastPlayed[st]; !last.IsZero() && now.Sub(last) < p.cfg.MinSoundGap {
		return false
	}
	p.lastPlayed[st] = now
	return true
}

// Close stops playback and releases the device
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return ErrNotInitialized
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	p.initialized = false
	return nil
}

// renderSound generates st into a stereo buffer at the configured rate
func renderSound(st SoundType, cfg *AudioConfig) *beep.Buffer {
	format := beep.Format{
		SampleRate:  beep.SampleRate(cfg.SampleRate),
		NumChannels: 2,
		Precision:   2,
	}
	buf := beep.NewBuffer(format)
	if s := GetSoundEffect(st, cfg); s != nil {
		buf.Append(s)
	}
	return buf
}
