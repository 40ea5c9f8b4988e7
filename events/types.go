package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventClick signals one press of the pedal button
	// Trigger: InputHandler (mouse on pedal, space, enter)
	// Consumer: Session | Payload: *ClickPayload
	EventClick EventType = iota

	// EventPurchase signals a permanent upgrade purchase attempt
	// Trigger: InputHandler (shop row, digit key, :buy)
	// Consumer: Session | Payload: *PurchasePayload
	EventPurchase

	// EventActivateBonus signals a temporary bonus activation attempt
	// Trigger: InputHandler (bonus button, s/p/a keys, :bonus)
	// Consumer: Session | Payload: *ActivateBonusPayload
	EventActivateBonus

	// EventAnswerQuiz signals a quiz option selection
	// Trigger: InputHandler (option button, 1/2 while quiz visible, :answer)
	// Consumer: Session | Payload: *AnswerQuizPayload
	EventAnswerQuiz

	// EventDismissQuiz closes the quiz without answering
	// Trigger: InputHandler (close button, esc while quiz visible)
	// Consumer: Session | Payload: nil
	EventDismissQuiz
)

// String returns the event name used in logs
func (t EventType) String() string {
	switch t {
	case EventClick:
		return "Click"
	case EventPurchase:
		return "Purchase"
	case EventActivateBonus:
		return "ActivateBonus"
	case EventAnswerQuiz:
		return "AnswerQuiz"
	case EventDismissQuiz:
		return "DismissQuiz"
	default:
		return "Unknown"
	}
}

// GameEvent is a single inbound event awaiting dispatch
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
