package game

import "time"

// Popup is the transient "+gain" marker left by a click
type Popup struct {
	ID        uint64
	Value     float64
	X, Y      int
	CreatedAt time.Time
}

func (s *Session) addPopup(now time.Time, value float64, x, y int) {
	s.nextPopupID++
	id := s.nextPopupID
	s.popups = append(s.popups, Popup{ID: id, Value: value, X: x, Y: y, CreatedAt: now})

	s.timers.After(s.cfg.PopupDuration, func(time.Time) {
		s.removePopup(id)
	})
}

func (s *Session) removePopup(id uint64) {
	for i, p := range s.popups {
		if p.ID == id {
			s.popups = append(s.popups[:i], s.popups[i+1:]...)
			return
		}
	}
}
