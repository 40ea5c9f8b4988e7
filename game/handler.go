package game

import (
	"github.com/lixenwraith/eco-clicker/events"
)

// EventHandler applies inbound presentation events to a session
type EventHandler struct{}

// NewEventHandler creates the session event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// EventTypes returns every inbound event type
func (h *EventHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventClick,
		events.EventPurchase,
		events.EventActivateBonus,
		events.EventAnswerQuiz,
		events.EventDismissQuiz,
	}
}

// HandleEvent routes the event to the matching session operation
// Malformed payloads are dropped
func (h *EventHandler) HandleEvent(s *Session, event events.GameEvent) {
	switch event.Type {
	case events.EventClick:
		if p, ok := event.Payload.(*events.ClickPayload); ok {
			s.Click(p.X, p.Y)
		}
	case events.EventPurchase:
		if p, ok := event.Payload.(*events.PurchasePayload); ok {
			s.Purchase(p.UpgradeID)
		}
	case events.EventActivateBonus:
		if p, ok := event.Payload.(*events.ActivateBonusPayload); ok {
			s.ActivateBonus(p.BonusID)
		}
	case events.EventAnswerQuiz:
		if p, ok := event.Payload.(*events.AnswerQuizPayload); ok {
			s.AnswerQuiz(p.Index)
		}
	case events.EventDismissQuiz:
		s.DismissQuiz()
	}
}
