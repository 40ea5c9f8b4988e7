package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/eco-clicker/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Note frequencies in Hz
const (
	noteA2 = 110.00
	noteE3 = 164.81
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteA5 = 880.00
	noteB5 = 987.77
	noteC6 = 1046.50
	noteE6 = 1318.51
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-length wave generator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release fade ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or negative volume is silent
// math.Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is an enveloped single note
func tone(freq float64, wave WaveType, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateClickSound generates a short soft tick for each pedal press
func CreateClickSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.ClickSoundDuration

	src := NewOscillator(noteA5, d, WaveSine, rate)
	if sine, err := generators.SineTone(rate, noteA5); err == nil {
		src = beep.Take(rate.N(d), sine)
	}
	s := NewEnvelope(src, d, constants.ClickSoundAttack, constants.ClickSoundRelease, rate)
	return newVolume(s, effectVolume(cfg, SoundClick))
}

// CreateDeniedSound generates a low buzz for refused actions
func CreateDeniedSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(noteA2, WaveSaw, constants.DeniedSoundDuration, constants.DeniedSoundAttack, constants.DeniedSoundRelease, rate)
	return newVolume(s, effectVolume(cfg, SoundDenied))
}

// CreatePurchaseSound generates a two-note coin chime
func CreatePurchaseSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := tone(noteB5, WaveSquare, constants.PurchaseSoundNote1Duration, constants.PurchaseSoundAttack,
		constants.PurchaseSoundNote1Duration/2, rate)
	n2 := tone(noteE6, WaveSquare, constants.PurchaseSoundNote2Duration, constants.PurchaseSoundAttack,
		constants.PurchaseSoundRelease, rate)

	return newVolume(beep.Seq(n1, n2), effectVolume(cfg, SoundPurchase)*0.5)
}

// CreateBonusSound generates a rising C major arpeggio
func CreateBonusSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var notes []beep.Streamer
	for _, f := range []float64{noteC5, noteE5, noteG5, noteC6} {
		notes = append(notes, tone(f, WaveSine, constants.BonusSoundNoteDuration,
			constants.BonusSoundAttack, constants.BonusSoundRelease, rate))
	}
	return newVolume(beep.Seq(notes...), effectVolume(cfg, SoundBonus))
}

// CreateCorrectSound generates an ascending fifth
func CreateCorrectSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.BonusSoundNoteDuration * 2

	seq := beep.Seq(
		tone(noteE5, WaveSine, d, constants.BonusSoundAttack, constants.BonusSoundRelease, rate),
		tone(noteB5, WaveSine, d*2, constants.BonusSoundAttack, d, rate),
	)
	return newVolume(seq, effectVolume(cfg, SoundCorrect))
}

// CreateWrongSound generates a falling saw pair
func CreateWrongSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.DeniedSoundDuration

	seq := beep.Seq(
		tone(noteE3, WaveSaw, d, constants.DeniedSoundAttack, constants.DeniedSoundRelease, rate),
		tone(noteA2, WaveSaw, d*2, constants.DeniedSoundAttack, d, rate),
	)
	return newVolume(seq, effectVolume(cfg, SoundWrong))
}

// CreateTipSound generates a bell with an octave overtone
func CreateTipSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := tone(noteA5, WaveSine, constants.TipSoundDuration, constants.TipSoundAttack, constants.TipSoundRelease, rate)
	over := tone(noteA5*2, WaveSine, constants.TipSoundDuration, constants.TipSoundAttack, constants.TipSoundRelease/2, rate)

	// Take bounds the mix to the chime length
	mixed := beep.Take(rate.N(constants.TipSoundDuration), beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	))
	return newVolume(mixed, effectVolume(cfg, SoundTip))
}

// GetSoundEffect returns a fresh streamer for the sound type, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundClick:
		return CreateClickSound(cfg)
	case SoundDenied:
		return CreateDeniedSound(cfg)
	case SoundPurchase:
		return CreatePurchaseSound(cfg)
	case SoundBonus:
		return CreateBonusSound(cfg)
	case SoundCorrect:
		return CreateCorrectSound(cfg)
	case SoundWrong:
		return CreateWrongSound(cfg)
	case SoundTip:
		return CreateTipSound(cfg)
	default:
		return nil
	}
}
