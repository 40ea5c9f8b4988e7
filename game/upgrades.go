package game

import (
	"math"

	"github.com/lixenwraith/eco-clicker/audio"
	"github.com/lixenwraith/eco-clicker/constants"
	"github.com/lixenwraith/eco-clicker/content"
)

// Upgrade is a catalog entry with its purchase state
type Upgrade struct {
	Def   content.UpgradeDef
	Cost  float64 // Current price, floored after each purchase
	Owned int
}

// NextCost returns the price after one more purchase at cost
// Flooring happens per step, so n purchases are n nested floors, not floor(base*1.5^n)
func NextCost(cost float64) float64 {
	return math.Floor(cost * constants.UpgradeCostGrowth)
}

// Purchase buys one level of the upgrade with id
// Returns false, leaving state untouched, when id is unknown or the score cannot cover the cost
func (s *Session) Purchase(id string) bool {
	u := s.upgrade(id)
	if u == nil {
		return false
	}
	if s.score < u.Cost {
		s.deny("purchase", id, u.Cost)
		return false
	}

	now := s.timers.Now()
	paid := u.Cost
	s.score -= paid
	u.Owned++
	u.Cost = NextCost(u.Cost)
	s.recompute(now)

	s.statPurchases.Add(1)
	s.sound.Play(audio.SoundPurchase)
	s.log.Debug("upgrade purchased",
		"id", id,
		"paid", paid,
		"owned", u.Owned,
		"next_cost", u.Cost,
		"multiplier", s.multiplier)
	return true
}

// Upgrade returns a copy of the upgrade state for id
func (s *Session) Upgrade(id string) (Upgrade, bool) {
	if u := s.upgrade(id); u != nil {
		return *u, true
	}
	return Upgrade{}, false
}

func (s *Session) upgrade(id string) *Upgrade {
	for i := range s.upgrades {
		if s.upgrades[i].Def.ID == id {
			return &s.upgrades[i]
		}
	}
	return nil
}
