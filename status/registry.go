package status

import (
	"strconv"
	"sync/atomic"
)

// Well-known metric keys
const (
	KeyClicks          = "game.clicks"
	KeyPurchases       = "game.purchases"
	KeyDenied          = "game.denied"
	KeyBonuses         = "game.bonuses"
	KeyQuizCorrect     = "quiz.correct"
	KeyQuizWrong       = "quiz.wrong"
	KeyTipsShown       = "tips.shown"
	KeyAutoPedalKm     = "autopedal.km"
	KeyMultiplierPeak  = "multiplier.peak"
	KeyEngineTicks     = "engine.ticks"
	KeyEventsProcessed = "engine.events"
	KeyEventsDropped   = "engine.events_dropped"
)

// Registry is the central metrics facade for the stats overlay
// Writers cache pointers during init and update atomics directly
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[AtomicFloat](),
	}
}

// Entry is one formatted metric line
type Entry struct {
	Key   string
	Value string
}

// Entries returns counters then gauges, each sorted by key
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, r.Counters.Count()+r.Gauges.Count())
	r.Counters.Range(func(key string, v *atomic.Int64) {
		out = append(out, Entry{Key: key, Value: strconv.FormatInt(v.Load(), 10)})
	})
	r.Gauges.Range(func(key string, v *AtomicFloat) {
		out = append(out, Entry{Key: key, Value: strconv.FormatFloat(v.Get(), 'f', 1, 64)})
	})
	return out
}
