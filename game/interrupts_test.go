package game

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/eco-clicker/audio"
	"github.com/lixenwraith/eco-clicker/content"
	"github.com/lixenwraith/eco-clicker/engine"
	"github.com/lixenwraith/eco-clicker/status"
)

func TestTipShownOnInterval(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.s.Start()

	h.advance(14 * time.Second)
	assert.False(t, h.s.CurrentNotice().Visible)

	h.advance(time.Second)
	n := h.s.CurrentNotice()
	require.True(t, n.Visible)

	titles := make([]string, 0, 3)
	for _, tip := range content.Default().Tips {
		titles = append(titles, tip.Title)
	}
	assert.Contains(t, titles, n.Title)
	assert.Contains(t, h.sound.played, audio.SoundTip)

	h.advance(7 * time.Second)
	assert.True(t, h.s.CurrentNotice().Visible)

	h.advance(time.Second)
	assert.False(t, h.s.CurrentNotice().Visible, "tip hides after 8s")

	h.advance(7 * time.Second)
	assert.True(t, h.s.CurrentNotice().Visible, "next tip at 30s")
	assert.Equal(t, int64(2), h.reg.Counters.Get(status.KeyTipsShown).Load())
}

func TestFeedbackKeepsFullDisplayTime(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.s.Start()

	h.advance(15 * time.Second)
	require.True(t, h.s.CurrentNotice().Visible)

	h.advance(6 * time.Second)
	h.s.presentQuiz(0)
	correct, answered := h.s.AnswerQuiz(1)
	require.True(t, answered)
	require.True(t, correct)
	assert.Equal(t, "Well done!", h.s.CurrentNotice().Title)

	// The tip's hide timer fires at 23s but no longer owns the slot
	h.advance(2 * time.Second)
	n := h.s.CurrentNotice()
	assert.True(t, n.Visible)
	assert.Equal(t, "Well done!", n.Title)

	h.advance(time.Second)
	assert.False(t, h.s.CurrentNotice().Visible)
}

func TestQuizCorrectDoubles(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.s.multiplier = 1.5

	h.s.presentQuiz(1)
	require.True(t, h.s.QuizVisible())

	correct, answered := h.s.AnswerQuiz(0)
	assert.True(t, answered)
	assert.True(t, correct)
	assert.Equal(t, 3.0, h.s.Multiplier())
	assert.False(t, h.s.QuizVisible())
	assert.Equal(t, audio.SoundCorrect, h.sound.played[len(h.sound.played)-1])
}

func TestQuizWrongHalves(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.s.multiplier = 3

	h.s.presentQuiz(2)
	correct, answered := h.s.AnswerQuiz(0)
	assert.True(t, answered)
	assert.False(t, correct)
	assert.Equal(t, 1.5, h.s.Multiplier())

	n := h.s.CurrentNotice()
	assert.True(t, n.Visible)
	assert.Equal(t, "Too bad!", n.Title)

	h.advance(3 * time.Second)
	assert.False(t, h.s.CurrentNotice().Visible)
}

func TestAnswerQuizRejected(t *testing.T) {
	h := newHarness(t, DefaultConfig())

	_, answered := h.s.AnswerQuiz(0)
	assert.False(t, answered, "no quiz visible")
	assert.Equal(t, 1.0, h.s.Multiplier())

	h.s.presentQuiz(0)
	for _, idx := range []int{-1, 2, 99} {
		_, answered = h.s.AnswerQuiz(idx)
		assert.False(t, answered, "index %d", idx)
	}
	assert.True(t, h.s.QuizVisible(), "out-of-range answers leave the quiz open")
	assert.Equal(t, 1.0, h.s.Multiplier())
	assert.Empty(t, h.sound.played)
}

func TestDismissQuiz(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.s.presentQuiz(0)

	h.s.DismissQuiz()
	assert.False(t, h.s.QuizVisible())
	assert.Equal(t, 1.0, h.s.Multiplier())
	assert.False(t, h.s.CurrentNotice().Visible)

	_, ok := h.s.CurrentQuiz()
	assert.False(t, ok)

	// Second dismiss is harmless
	h.s.DismissQuiz()
}

func TestMultiplierStaysPositive(t *testing.T) {
	h := newHarness(t, DefaultConfig())

	for i := 0; i < 2000; i++ {
		h.s.presentQuiz(0)
		_, answered := h.s.AnswerQuiz(0)
		require.True(t, answered)
		require.Greater(t, h.s.Multiplier(), 0.0, "after %d wrong answers", i+1)
	}
	assert.Equal(t, int64(2000), h.reg.Counters.Get(status.KeyQuizWrong).Load())
}

func TestMultiplierAndScoreStayFinite(t *testing.T) {
	h := newHarness(t, DefaultConfig())

	for i := 0; i < 2000; i++ {
		h.s.presentQuiz(0)
		correct, answered := h.s.AnswerQuiz(1)
		require.True(t, answered)
		require.True(t, correct)
		require.False(t, math.IsInf(h.s.Multiplier(), 0), "after %d correct answers", i+1)
	}
	assert.Equal(t, math.MaxFloat64, h.s.Multiplier())

	h.clickN(3)
	assert.Equal(t, math.MaxFloat64, h.s.Score())
}

func TestQuizEffectOverwrittenByRecompute(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.s.score = 10

	h.s.presentQuiz(0)
	h.s.AnswerQuiz(1)
	assert.Equal(t, 2.0, h.s.Multiplier())

	require.True(t, h.s.Purchase("helmet"))
	assert.InDelta(t, 1.1, h.s.Multiplier(), 1e-12)
}

func TestQuizFiresOnce(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.s.Start()

	h.advance(179 * time.Second)
	assert.False(t, h.s.QuizVisible())

	h.advance(121 * time.Second)
	require.True(t, h.s.QuizVisible())

	q, ok := h.s.CurrentQuiz()
	require.True(t, ok)
	assert.Len(t, q.Options, 2)

	h.s.DismissQuiz()
	h.advance(20 * time.Minute)
	assert.False(t, h.s.QuizVisible())
}

func TestQuizRepeatRearms(t *testing.T) {
	cfg := DefaultConfig()
	cfg.QuizRepeat = true
	h := newHarness(t, cfg)
	h.s.Start()

	h.advance(300 * time.Second)
	require.True(t, h.s.QuizVisible())
	h.s.DismissQuiz()

	h.advance(300 * time.Second)
	assert.True(t, h.s.QuizVisible())
}

func TestQuizDelayWithinWindow(t *testing.T) {
	cfg := DefaultConfig()
	for seed := uint64(0); seed < 200; seed++ {
		clock := engine.NewMockTimeProvider(epoch)
		sched := engine.NewScheduler(clock)
		s := NewSession(content.Default(), sched, cfg, WithRand(rand.New(rand.NewPCG(seed, seed+1))))

		s.armQuiz()
		due, ok := sched.NextDue()
		require.True(t, ok)

		delay := due.Sub(epoch)
		assert.GreaterOrEqual(t, delay, cfg.QuizMinDelay, "seed %d", seed)
		assert.Less(t, delay, cfg.QuizMaxDelay, "seed %d", seed)
	}
}

func TestPopupExpires(t *testing.T) {
	h := newHarness(t, DefaultConfig())

	h.s.Click(10, 5)
	h.advance(400 * time.Millisecond)
	h.s.Click(12, 6)

	snap := h.s.Snapshot(h.clock.Now())
	require.Len(t, snap.Popups, 2)
	assert.Equal(t, 10, snap.Popups[0].X)
	assert.Equal(t, 5, snap.Popups[0].Y)
	assert.Equal(t, 1.0, snap.Popups[0].Value)
	assert.Equal(t, 400*time.Millisecond, snap.Popups[0].Age)
	assert.NotEqual(t, snap.Popups[0].ID, snap.Popups[1].ID)

	h.advance(600 * time.Millisecond)
	snap = h.s.Snapshot(h.clock.Now())
	require.Len(t, snap.Popups, 1)
	assert.Equal(t, 12, snap.Popups[0].X)

	h.advance(400 * time.Millisecond)
	assert.Empty(t, h.s.Snapshot(h.clock.Now()).Popups)
}

func TestSnapshotAffordability(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.s.score = 60

	snap := h.s.Snapshot(h.clock.Now())
	assert.InDelta(t, 7.8, snap.CO2Kg, 1e-9)
	assert.Len(t, snap.Upgrades, 9)
	assert.Len(t, snap.BonusTypes, 3)

	afford := map[string]bool{}
	for _, u := range snap.Upgrades {
		afford[u.ID] = u.Affordable
	}
	for _, b := range snap.BonusTypes {
		afford[b.ID] = b.Affordable
	}
	assert.True(t, afford["helmet"])
	assert.True(t, afford["bike-lane"])
	assert.False(t, afford["carbon-bike"])
	assert.True(t, afford["sprint"])
	assert.False(t, afford["peloton"])
	assert.False(t, afford["auto-pedal"])

	h.s.presentQuiz(2)
	snap = h.s.Snapshot(h.clock.Now())
	assert.True(t, snap.Quiz.Visible)
	assert.Equal(t, []string{"1km", "2km"}, snap.Quiz.Options)
}
