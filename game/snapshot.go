package game

import (
	"math"
	"slices"
	"time"

	"github.com/lixenwraith/eco-clicker/constants"
)

// UpgradeView is a shop row
type UpgradeView struct {
	ID          string
	Name        string
	Description string
	Cost        float64
	Effect      float64
	Owned       int
	Affordable  bool
}

// BonusTypeView is a temporary bonus button
type BonusTypeView struct {
	ID          string
	Name        string
	Description string
	Cost        float64
	Multiplier  float64
	Duration    time.Duration
	AutoPedal   bool
	Affordable  bool
}

// ActiveBonusView is a running bonus with whole seconds left
type ActiveBonusView struct {
	ID         string
	Name       string
	Multiplier float64
	Remaining  int
}

// QuizView is the quiz modal
type QuizView struct {
	Question string
	Options  []string
	Visible  bool
}

// PopupView is a score popup with its age for fading
type PopupView struct {
	ID    uint64
	Value float64
	X, Y  int
	Age   time.Duration
}

// Snapshot is the immutable state handed to the presentation layer
type Snapshot struct {
	Time       time.Time
	Score      float64
	Multiplier float64
	CO2Kg      float64

	Upgrades      []UpgradeView
	BonusTypes    []BonusTypeView
	ActiveBonuses []ActiveBonusView

	AutoPedalActive    bool
	AutoPedalRemaining int

	Notice Notice
	Quiz   QuizView
	Popups []PopupView
}

// remainingSeconds rounds the time left up to whole seconds, never below zero
func remainingSeconds(until, now time.Time) int {
	d := until.Sub(now)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}

// CO2Saved converts kilometers to kilograms of CO2 a car would have emitted
func CO2Saved(km float64) float64 {
	return km * constants.CO2PerKm
}

// Snapshot copies the renderable state at now
func (s *Session) Snapshot(now time.Time) Snapshot {
	snap := Snapshot{
		Time:       now,
		Score:      s.score,
		Multiplier: s.multiplier,
		CO2Kg:      CO2Saved(s.score),
		Notice:     s.notice,
	}

	snap.Upgrades = make([]UpgradeView, len(s.upgrades))
	for i, u := range s.upgrades {
		snap.Upgrades[i] = UpgradeView{
			ID:          u.Def.ID,
			Name:        u.Def.Name,
			Description: u.Def.Description,
			Cost:        u.Cost,
			Effect:      u.Def.Effect,
			Owned:       u.Owned,
			Affordable:  s.score >= u.Cost,
		}
	}

	snap.BonusTypes = make([]BonusTypeView, len(s.catalog.Bonuses))
	for i, b := range s.catalog.Bonuses {
		snap.BonusTypes[i] = BonusTypeView{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
			Cost:        b.Cost,
			Multiplier:  b.Multiplier,
			Duration:    b.Duration,
			AutoPedal:   b.AutoPedal,
			Affordable:  s.score >= b.Cost,
		}
	}

	snap.ActiveBonuses = make([]ActiveBonusView, 0, len(s.active))
	for _, b := range s.active {
		snap.ActiveBonuses = append(snap.ActiveBonuses, ActiveBonusView{
			ID:         b.ID,
			Name:       b.Name,
			Multiplier: b.Multiplier,
			Remaining:  remainingSeconds(b.ExpiresAt, now),
		})
	}

	if s.autoPedalTask != 0 {
		snap.AutoPedalActive = true
		snap.AutoPedalRemaining = remainingSeconds(s.autoPedalUntil, now)
	}

	if s.QuizVisible() {
		snap.Quiz = QuizView{
			Question: s.quiz.Text,
			Options:  slices.Clone(s.quiz.Options),
			Visible:  true,
		}
	}

	snap.Popups = make([]PopupView, len(s.popups))
	for i, p := range s.popups {
		snap.Popups[i] = PopupView{ID: p.ID, Value: p.Value, X: p.X, Y: p.Y, Age: now.Sub(p.CreatedAt)}
	}

	return snap
}
