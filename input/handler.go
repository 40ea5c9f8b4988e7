// Package input turns terminal key and mouse events into game events.
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/eco-clicker/constants"
	"github.com/lixenwraith/eco-clicker/events"
	"github.com/lixenwraith/eco-clicker/game"
	"github.com/lixenwraith/eco-clicker/render"
	"github.com/lixenwraith/eco-clicker/status"
)

// Publisher accepts game events; *events.EventQueue implements it
type Publisher interface {
	Push(event events.GameEvent)
}

// Pauser freezes game time; *engine.PausableClock implements it
type Pauser interface {
	Pause()
	Resume()
}

// View is the frame the user is reacting to
type View struct {
	Snapshot *game.Snapshot
	Layout   render.Layout
}

// Handler owns presentation-side input state: command line, status message, stats overlay
// Used only from the main goroutine
type Handler struct {
	queue  Publisher
	now    func() time.Time
	pauser Pauser

	commandMode bool
	cmdBuffer   []rune

	statusMessage string
	statusUntil   time.Time

	showStats bool
	mouseDown bool
}

// NewHandler creates an input handler publishing to queue
func NewHandler(queue Publisher, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		queue:     queue,
		now:       now,
		cmdBuffer: make([]rune, 0, 32),
	}
}

// SetPauser freezes game time while the command line is open
func (h *Handler) SetPauser(p Pauser) {
	h.pauser = p
}

// HandleEvent processes one terminal event; returns false when the user quits
func (h *Handler) HandleEvent(ev tcell.Event, view View) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyPress(ev.Key(), ev.Rune(), view)
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.handlePointer(x, y, ev.Buttons()&tcell.Button1 != 0, view)
	}
	return true
}

// UIState returns the presentation state for the renderer
func (h *Handler) UIState(quizVisible bool, stats []status.Entry) render.UIState {
	ui := render.UIState{Mode: render.ModePlay, ShowStats: h.showStats}
	switch {
	case h.commandMode:
		ui.Mode = render.ModeCommand
		ui.CommandText = string(h.cmdBuffer)
	case quizVisible:
		ui.Mode = render.ModeQuiz
	}
	if h.statusMessage != "" && h.now().Before(h.statusUntil) {
		ui.StatusMessage = h.statusMessage
	}
	if h.showStats {
		ui.Stats = stats
	}
	return ui
}

func (h *Handler) publish(t events.EventType, payload any) {
	h.queue.Push(events.GameEvent{Type: t, Payload: payload, Timestamp: h.now()})
}

func (h *Handler) setStatus(msg string) {
	h.statusMessage = msg
	h.statusUntil = h.now().Add(constants.CommandStatusMessageTimeout)
}

func (h *Handler) handleKeyPress(key tcell.Key, r rune, view View) bool {
	if h.commandMode {
		return h.handleCommandKey(key, r, view)
	}

	snap := view.Snapshot
	switch key {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		if snap.Quiz.Visible {
			h.publish(events.EventDismissQuiz, nil)
		} else {
			h.showStats = false
		}
		return true
	case tcell.KeyEnter:
		if !snap.Quiz.Visible {
			h.clickPedal(view)
		}
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch {
	case r == 'q':
		return false
	case r == ':':
		h.enterCommand()
		return true
	case snap.Quiz.Visible:
		// Modal: digits answer, everything else waits
		if idx := int(r - '1'); r >= '1' && idx < len(snap.Quiz.Options) {
			h.publish(events.EventAnswerQuiz, &events.AnswerQuizPayload{Index: idx})
		}
		return true
	case r == ' ':
		h.clickPedal(view)
	case r >= '1' && r <= '9':
		if idx := int(r - '1'); idx < len(snap.Upgrades) {
			h.publish(events.EventPurchase, &events.PurchasePayload{UpgradeID: snap.Upgrades[idx].ID})
		}
	default:
		if id, ok := render.BonusShortcuts[r]; ok {
			h.publish(events.EventActivateBonus, &events.ActivateBonusPayload{BonusID: id})
		}
	}
	return true
}

// clickPedal emits a click at the pedal center so the popup lands on the button
func (h *Handler) clickPedal(view View) {
	x, y := view.Layout.Pedal.Center()
	h.publish(events.EventClick, &events.ClickPayload{X: x, Y: y - 1})
}

func (h *Handler) handlePointer(x, y int, pressed bool, view View) {
	// Act on the press edge only; drags and releases repeat the button state
	if !pressed || h.mouseDown {
		h.mouseDown = pressed
		return
	}
	h.mouseDown = true

	// Game time is frozen while the command line is open; presses would score against it
	if h.commandMode {
		return
	}

	snap := view.Snapshot
	action := view.Layout.HitTest(x, y, snap.Quiz.Visible)

	switch action.Kind {
	case render.ActionClick:
		h.publish(events.EventClick, &events.ClickPayload{X: x, Y: y})
	case render.ActionPurchase:
		if action.Index < len(snap.Upgrades) {
			h.publish(events.EventPurchase, &events.PurchasePayload{UpgradeID: snap.Upgrades[action.Index].ID})
		}
	case render.ActionBonus:
		if action.Index < len(snap.BonusTypes) {
			h.publish(events.EventActivateBonus, &events.ActivateBonusPayload{BonusID: snap.BonusTypes[action.Index].ID})
		}
	case render.ActionAnswer:
		h.publish(events.EventAnswerQuiz, &events.AnswerQuizPayload{Index: action.Index})
	case render.ActionDismiss:
		h.publish(events.EventDismissQuiz, nil)
	}
}

func (h *Handler) handleCommandKey(key tcell.Key, r rune, view View) bool {
	switch key {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		h.exitCommand()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(h.cmdBuffer) == 0 {
			h.exitCommand()
		} else {
			h.cmdBuffer = h.cmdBuffer[:len(h.cmdBuffer)-1]
		}
	case tcell.KeyEnter:
		line := string(h.cmdBuffer)
		h.exitCommand()
		res := executeCommand(line, view.Snapshot)
		if res.event != nil {
			res.event.Timestamp = h.now()
			h.queue.Push(*res.event)
		}
		if res.toggleStats {
			h.showStats = !h.showStats
		}
		if res.message != "" {
			h.setStatus(res.message)
		}
		if res.quit {
			return false
		}
	case tcell.KeyRune:
		h.cmdBuffer = append(h.cmdBuffer, r)
	}
	return true
}

func (h *Handler) enterCommand() {
	h.commandMode = true
	h.cmdBuffer = h.cmdBuffer[:0]
	if h.pauser != nil {
		h.pauser.Pause()
	}
}

func (h *Handler) exitCommand() {
	h.commandMode = false
	h.cmdBuffer = h.cmdBuffer[:0]
	if h.pauser != nil {
		h.pauser.Resume()
	}
}
