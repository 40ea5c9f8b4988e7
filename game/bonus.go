package game

import (
	"time"

	"github.com/lixenwraith/eco-clicker/audio"
	"github.com/lixenwraith/eco-clicker/content"
	"github.com/lixenwraith/eco-clicker/engine"
)

// ActiveBonus is a running multiplier boost
type ActiveBonus struct {
	ID         string
	Name       string
	Multiplier float64
	ExpiresAt  time.Time
}

// ActivateBonus buys the temporary bonus with id
// Multiplier bonuses join the active set until now+duration
// Auto-pedal replaces any running auto-pedal timer without refund
// Returns false when id is unknown or the score cannot cover the cost
func (s *Session) ActivateBonus(id string) bool {
	def, ok := s.catalog.Bonus(id)
	if !ok {
		return false
	}
	if s.score < def.Cost {
		s.deny("bonus", id, def.Cost)
		return false
	}

	now := s.timers.Now()
	s.score -= def.Cost

	if def.AutoPedal {
		s.startAutoPedal(now, def)
	} else {
		s.active = append(s.active, ActiveBonus{
			ID:         def.ID,
			Name:       def.Name,
			Multiplier: def.Multiplier,
			ExpiresAt:  now.Add(def.Duration),
		})
		s.recompute(now)
	}

	s.statBonuses.Add(1)
	s.sound.Play(audio.SoundBonus)
	s.log.Debug("bonus activated",
		"id", id,
		"cost", def.Cost,
		"duration", def.Duration,
		"multiplier", s.multiplier)
	return true
}

// ActiveBonuses returns a copy of the active set, including entries the sweep has not yet removed
func (s *Session) ActiveBonuses() []ActiveBonus {
	out := make([]ActiveBonus, len(s.active))
	copy(out, s.active)
	return out
}

// AutoPedalActive reports whether an auto-pedal timer is running
func (s *Session) AutoPedalActive() bool {
	return s.autoPedalTask != 0
}

// sweepBonuses drops expired bonuses; recomputes only when the set changed
func (s *Session) sweepBonuses(now time.Time) {
	kept := s.active[:0]
	for _, b := range s.active {
		if b.ExpiresAt.After(now) {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(s.active) {
		return
	}

	expired := len(s.active) - len(kept)
	clear(s.active[len(kept):])
	s.active = kept
	s.recompute(now)
	s.log.Debug("bonuses expired", "count", expired, "multiplier", s.multiplier)
}

// startAutoPedal arms a repeating accumulation that ends at now+duration
// Each tick adds the multiplier in effect at that tick
func (s *Session) startAutoPedal(now time.Time, def content.BonusDef) {
	if s.autoPedalTask != 0 {
		s.timers.Cancel(s.autoPedalTask)
		s.log.Debug("auto-pedal replaced", "previous_until", s.autoPedalUntil)
	}

	until := now.Add(def.Duration)
	s.autoPedalUntil = until

	var id engine.TaskID
	id = s.timers.Every(s.cfg.AutoPedalInterval, func(tick time.Time) {
		if tick.After(until) {
			s.stopAutoPedal(id)
			return
		}
		gain := s.multiplier
		s.addScore(gain)
		s.statAutoKm.Add(gain)
		if !tick.Before(until) {
			s.stopAutoPedal(id)
		}
	})
	s.autoPedalTask = id
}

func (s *Session) stopAutoPedal(id engine.TaskID) {
	s.timers.Cancel(id)
	if s.autoPedalTask == id {
		s.autoPedalTask = 0
		s.autoPedalUntil = time.Time{}
	}
}
