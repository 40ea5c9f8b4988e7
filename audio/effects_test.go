package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/eco-clicker/constants"
)

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples ok, got n=%d ok=%v", n, ok)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d channels differ: %f vs %f", i, samples[i][0], samples[i][1])
		}
	}

	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave only emits full-scale values
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

// TestOscillatorDrains verifies the oscillator stops at its duration
func TestOscillatorDrains(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 10*time.Millisecond, WaveSaw, rate)

	samples := make([][2]float64, 64)
	n, ok := osc.Stream(samples)
	if n != 10 || !ok {
		t.Fatalf("First stream: expected n=10 ok=true, got n=%d ok=%v", n, ok)
	}

	n, ok = osc.Stream(samples)
	if n != 0 || ok {
		t.Errorf("Drained stream: expected n=0 ok=false, got n=%d ok=%v", n, ok)
	}
}

// TestEnvelopeShape verifies attack starts silent and release ends near silent
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}

	if samples[0][0] != 0 {
		t.Errorf("Attack should start at 0, got %f", samples[0][0])
	}
	if samples[50][0] != 1.0 {
		t.Errorf("Sustain should be unity, got %f", samples[50][0])
	}
	if last := samples[99][0]; last <= 0 || last > 0.1 {
		t.Errorf("Release should end near 0, got %f", last)
	}
}

// TestNewVolumeSilent verifies zero volume mutes instead of producing -Inf gain
func TestNewVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, rate), 0)

	samples := make([][2]float64, 10)
	n, _ := s.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] != 0 || math.IsInf(samples[i][0], 0) {
			t.Errorf("Sample %d should be silent, got %f", i, samples[i][0])
		}
	}
}

// TestSoundEffectLengths verifies every cue renders to its expected length
func TestSoundEffectLengths(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		sound SoundType
		want  int
	}{
		{SoundClick, rate.N(constants.ClickSoundDuration)},
		{SoundDenied, rate.N(constants.DeniedSoundDuration)},
		{SoundPurchase, rate.N(constants.PurchaseSoundNote1Duration) + rate.N(constants.PurchaseSoundNote2Duration)},
		{SoundBonus, 4 * rate.N(constants.BonusSoundNoteDuration)},
		{SoundCorrect, rate.N(2*constants.BonusSoundNoteDuration) + rate.N(4*constants.BonusSoundNoteDuration)},
		{SoundWrong, rate.N(constants.DeniedSoundDuration) + rate.N(2*constants.DeniedSoundDuration)},
		{SoundTip, rate.N(constants.TipSoundDuration)},
	}

	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			buf := renderSound(tt.sound, cfg)
			if buf.Len() != tt.want {
				t.Errorf("Expected %d samples, got %d", tt.want, buf.Len())
			}
		})
	}
}

// TestGetSoundEffectUnknown verifies out-of-range types yield nil
func TestGetSoundEffectUnknown(t *testing.T) {
	if s := GetSoundEffect(soundTypeCount, DefaultAudioConfig()); s != nil {
		t.Error("Expected nil streamer for unknown sound")
	}
	if buf := renderSound(SoundType(-1), DefaultAudioConfig()); buf.Len() != 0 {
		t.Errorf("Expected empty buffer, got %d samples", buf.Len())
	}
}
