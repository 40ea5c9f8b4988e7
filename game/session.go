// Package game holds the clicker state machine: score, multiplier, upgrades,
// temporary bonuses and the tip/quiz interrupts.
//
// A Session is owned by a single goroutine (the engine loop). Every exported
// method is a complete state transition; none of them lock.
package game

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/eco-clicker/audio"
	"github.com/lixenwraith/eco-clicker/constants"
	"github.com/lixenwraith/eco-clicker/content"
	"github.com/lixenwraith/eco-clicker/engine"
	"github.com/lixenwraith/eco-clicker/status"
)

// Timers is the scheduled-task queue a session arms its timers on
// *engine.Scheduler implements it
type Timers interface {
	Now() time.Time
	After(d time.Duration, fn engine.Task) engine.TaskID
	Every(interval time.Duration, fn engine.Task) engine.TaskID
	Cancel(id engine.TaskID) bool
}

// SoundPlayer receives audio cues; playback must not block
type SoundPlayer interface {
	Play(sound audio.SoundType)
}

type silentPlayer struct{}

func (silentPlayer) Play(audio.SoundType) {}

// Config holds the session timing
type Config struct {
	SweepInterval     time.Duration
	AutoPedalInterval time.Duration
	PopupDuration     time.Duration
	TipInterval       time.Duration
	TipDuration       time.Duration
	FeedbackDuration  time.Duration
	QuizMinDelay      time.Duration
	QuizMaxDelay      time.Duration
	// QuizRepeat re-arms the quiz with a fresh random delay each time it fires
	QuizRepeat bool
}

// DefaultConfig returns the standard game timing
func DefaultConfig() Config {
	return Config{
		SweepInterval:     constants.BonusSweepInterval,
		AutoPedalInterval: constants.AutoPedalInterval,
		PopupDuration:     constants.PopupDuration,
		TipInterval:       constants.TipInterval,
		TipDuration:       constants.TipDuration,
		FeedbackDuration:  constants.QuizFeedbackDuration,
		QuizMinDelay:      constants.QuizMinDelay,
		QuizMaxDelay:      constants.QuizMaxDelay,
	}
}

// Option customizes a Session
type Option func(*Session)

// WithRand sets the random source for tip and quiz selection
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithSound routes audio cues to p
func WithSound(p SoundPlayer) Option {
	return func(s *Session) {
		if p != nil {
			s.sound = p
		}
	}
}

// WithLogger sets the structured logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithStatus records gameplay counters into reg
func WithStatus(reg *status.Registry) Option {
	return func(s *Session) { s.reg = reg }
}

// Session is the aggregate game state
type Session struct {
	cfg     Config
	catalog *content.Catalog
	timers  Timers
	rng     *rand.Rand
	sound   SoundPlayer
	log     *slog.Logger
	reg     *status.Registry

	score      float64
	multiplier float64

	upgrades []Upgrade
	active   []ActiveBonus

	autoPedalTask  engine.TaskID
	autoPedalUntil time.Time

	notice    Notice
	noticeGen uint64

	quiz        *content.Question
	quizVisible bool
	quizTask    engine.TaskID

	popups      []Popup
	nextPopupID uint64

	started bool

	// Cached metric pointers
	statClicks    *atomic.Int64
	statPurchases *atomic.Int64
	statDenied    *atomic.Int64
	statBonuses   *atomic.Int64
	statCorrect   *atomic.Int64
	statWrong     *atomic.Int64
	statTips      *atomic.Int64
	statAutoKm    *status.AtomicFloat
	statPeak      *status.AtomicFloat
}

// NewSession creates a session at score 0, multiplier 1
// Timers are not armed until Start
func NewSession(cat *content.Catalog, timers Timers, cfg Config, opts ...Option) *Session {
	s := &Session{
		cfg:        cfg,
		catalog:    cat,
		timers:     timers,
		sound:      silentPlayer{},
		log:        slog.New(slog.DiscardHandler),
		multiplier: constants.InitialMultiplier,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	if s.reg == nil {
		s.reg = status.NewRegistry()
	}

	s.statClicks = s.reg.Counters.Get(status.KeyClicks)
	s.statPurchases = s.reg.Counters.Get(status.KeyPurchases)
	s.statDenied = s.reg.Counters.Get(status.KeyDenied)
	s.statBonuses = s.reg.Counters.Get(status.KeyBonuses)
	s.statCorrect = s.reg.Counters.Get(status.KeyQuizCorrect)
	s.statWrong = s.reg.Counters.Get(status.KeyQuizWrong)
	s.statTips = s.reg.Counters.Get(status.KeyTipsShown)
	s.statAutoKm = s.reg.Gauges.Get(status.KeyAutoPedalKm)
	s.statPeak = s.reg.Gauges.Get(status.KeyMultiplierPeak)
	s.statPeak.Set(s.multiplier)

	s.upgrades = make([]Upgrade, len(cat.Upgrades))
	for i, def := range cat.Upgrades {
		s.upgrades[i] = Upgrade{Def: def, Cost: def.BaseCost}
	}

	return s
}

// Start arms the bonus sweep, the tip interval and the quiz trigger
// Calling it twice is a no-op
func (s *Session) Start() {
	if s.started {
		return
	}
	s.started = true

	s.timers.Every(s.cfg.SweepInterval, s.sweepBonuses)
	if len(s.catalog.Tips) > 0 {
		s.timers.Every(s.cfg.TipInterval, s.showRandomTip)
	}
	s.armQuiz()

	s.log.Info("session started",
		"upgrades", len(s.upgrades),
		"bonuses", len(s.catalog.Bonuses),
		"quiz_repeat", s.cfg.QuizRepeat)
}

// Score returns the accumulated kilometers
func (s *Session) Score() float64 { return s.score }

// Multiplier returns the multiplier currently applied to clicks
func (s *Session) Multiplier() float64 { return s.multiplier }

// Click adds the current multiplier to the score and spawns a popup at x,y
// Always succeeds; returns the gain
func (s *Session) Click(x, y int) float64 {
	now := s.timers.Now()
	gain := s.multiplier
	s.addScore(gain)
	s.statClicks.Add(1)

	s.addPopup(now, gain, x, y)
	s.sound.Play(audio.SoundClick)
	return gain
}

// Recompute derives the multiplier from owned upgrades and unexpired bonuses
func (s *Session) Recompute() {
	s.recompute(s.timers.Now())
}

func (s *Session) recompute(now time.Time) {
	m := permanentMultiplier(s.upgrades)
	for _, b := range s.active {
		if b.ExpiresAt.After(now) {
			m *= b.Multiplier
		}
	}
	s.setMultiplier(m)
}

// permanentMultiplier is the product of effect^owned over all upgrades
func permanentMultiplier(upgrades []Upgrade) float64 {
	m := constants.InitialMultiplier
	for _, u := range upgrades {
		if u.Owned > 0 {
			m *= math.Pow(u.Def.Effect, float64(u.Owned))
		}
	}
	return m
}

func (s *Session) setMultiplier(m float64) {
	// Halving underflows to zero after ~1074 wrong answers; the multiplier stays positive
	// Doubling overflows to +Inf after ~1024 correct answers; cap at the largest finite value
	switch {
	case m <= 0:
		m = math.SmallestNonzeroFloat64
	case m > math.MaxFloat64:
		m = math.MaxFloat64
	}
	s.multiplier = m
	if m > s.statPeak.Get() {
		s.statPeak.Set(m)
	}
}

// addScore keeps the score finite
func (s *Session) addScore(gain float64) {
	s.score += gain
	if s.score > math.MaxFloat64 {
		s.score = math.MaxFloat64
	}
}

func (s *Session) deny(action, id string, cost float64) {
	s.statDenied.Add(1)
	s.sound.Play(audio.SoundDenied)
	s.log.Debug("insufficient score", "action", action, "id", id, "cost", cost, "score", s.score)
}
