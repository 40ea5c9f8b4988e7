package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/eco-clicker/constants"
	"github.com/lixenwraith/eco-clicker/game"
	"github.com/lixenwraith/eco-clicker/status"
)

// Mode is the input mode shown in the status bar
type Mode int

const (
	ModePlay Mode = iota
	ModeQuiz
	ModeCommand
)

// UIState is presentation-only state owned by the input handler
type UIState struct {
	Mode          Mode
	CommandText   string
	StatusMessage string
	ShowStats     bool
	Stats         []status.Entry
}

const gameTitle = "EcoMobile Clicker"

// Renderer draws snapshots into a Buffer
type Renderer struct {
	palette       Palette
	popupLifetime time.Duration
}

// NewRenderer creates a renderer; popupLifetime drives the popup fade
func NewRenderer(popupLifetime time.Duration) *Renderer {
	return &Renderer{palette: NewPalette(), popupLifetime: popupLifetime}
}

// Palette returns the resolved styles
func (r *Renderer) Palette() Palette { return r.palette }

// LayoutFor computes the layout matching snap at the buffer size
func LayoutFor(width, height int, snap *game.Snapshot) Layout {
	return NewLayout(width, height, len(snap.Upgrades), len(snap.BonusTypes), len(snap.Quiz.Options))
}

// Draw composes one frame and returns the layout used, for hit testing
func (r *Renderer) Draw(buf *Buffer, snap *game.Snapshot, ui UIState) Layout {
	buf.Clear()
	w, h := buf.Bounds()
	l := LayoutFor(w, h, snap)

	if l.TooSmall {
		msg := fmt.Sprintf("Terminal too small: need %dx%d", constants.MinScreenWidth, constants.MinScreenHeight)
		drawText(buf, center(msg, w), h/2, msg, r.palette.Text, w)
		return l
	}

	r.drawHeader(buf, l, snap)
	r.drawPedal(buf, l)
	r.drawBonuses(buf, l, snap)
	r.drawActive(buf, l, snap)
	r.drawShop(buf, l, snap)
	r.drawPopups(buf, snap)
	if snap.Notice.Visible {
		r.drawNotice(buf, l, snap.Notice)
	}
	if snap.Quiz.Visible {
		r.drawQuiz(buf, l, snap.Quiz)
	}
	if ui.ShowStats {
		r.drawStats(buf, l, ui.Stats)
	}
	r.drawStatusBar(buf, l, ui)
	return l
}

func (r *Renderer) drawHeader(buf *Buffer, l Layout, snap *game.Snapshot) {
	drawText(buf, center(gameTitle, l.Title.W), l.Title.Y, gameTitle, r.palette.Title, l.Title.W)

	line := fmt.Sprintf("Distance: %s   Multiplier: %s   Saved: %s",
		FormatKm(snap.Score), FormatMultiplier(snap.Multiplier), FormatCO2(snap.CO2Kg))
	drawText(buf, center(line, l.Stats.W), l.Stats.Y, line, r.palette.Text, l.Stats.W)
}

func (r *Renderer) drawPedal(buf *Buffer, l Layout) {
	p := l.Pedal
	buf.Fill(p, r.palette.Pedal)
	label := "PEDAL!"
	_, cy := p.Center()
	drawText(buf, p.X+center(label, p.W), cy, label, r.palette.Pedal, p.W)
	hint := "[space]"
	drawText(buf, p.X+center(hint, p.W), cy+1, hint, r.palette.Pedal, p.W)
}

// BonusShortcuts maps keys to the bonus they activate
var BonusShortcuts = map[rune]string{'s': "sprint", 'p': "peloton", 'a': constants.BonusAutoPedal}

func bonusKey(id string) string {
	for k, v := range BonusShortcuts {
		if v == id {
			return string(k)
		}
	}
	return " "
}

func (r *Renderer) drawBonuses(buf *Buffer, l Layout, snap *game.Snapshot) {
	drawText(buf, l.BonusHeader.X, l.BonusHeader.Y, "BOOSTS", r.palette.Title, l.BonusHeader.W)
	for i, b := range snap.BonusTypes {
		if i >= len(l.Bonuses) {
			break
		}
		rect := l.Bonuses[i]
		label := fmt.Sprintf("[%s] %s %s", bonusKey(b.ID), b.Name, FormatKm(b.Cost))
		style := r.palette.Muted
		if b.Affordable {
			style = r.palette.Bonus
		}
		drawText(buf, rect.X, rect.Y, fit(label, rect.W), style, rect.W)
	}
}

func (r *Renderer) drawActive(buf *Buffer, l Layout, snap *game.Snapshot) {
	drawText(buf, l.ActiveHeader.X, l.ActiveHeader.Y, "ACTIVE", r.palette.Title, l.ActiveHeader.W)
	y := l.Active.Y
	limit := l.Active.Y + l.Active.H
	for _, b := range snap.ActiveBonuses {
		if y >= limit {
			return
		}
		line := fmt.Sprintf("%s x%g %s", b.Name, b.Multiplier, FormatRemaining(b.Remaining))
		drawText(buf, l.Active.X, y, fit(line, l.Active.W), r.palette.Bonus, l.Active.W)
		y++
	}
	if snap.AutoPedalActive && y < limit {
		line := "Auto-pedal " + FormatRemaining(snap.AutoPedalRemaining)
		drawText(buf, l.Active.X, y, fit(line, l.Active.W), r.palette.AutoPedal, l.Active.W)
	}
}

func (r *Renderer) drawShop(buf *Buffer, l Layout, snap *game.Snapshot) {
	drawText(buf, l.ShopHeader.X, l.ShopHeader.Y, "UPGRADES", r.palette.Title, l.ShopHeader.W)
	for i, u := range snap.Upgrades {
		if i >= len(l.Upgrades) {
			break
		}
		rect := l.Upgrades[i]
		key := " "
		if i < 9 {
			key = fmt.Sprint(i + 1)
		}
		// Fixed tail keeps cost and level aligned; the name absorbs truncation
		tail := fmt.Sprintf(" %9s  x%-4g #%d", FormatKm(u.Cost), u.Effect, u.Owned)
		head := fit(fmt.Sprintf("[%s] %s", key, u.Name), rect.W-len(tail))
		style := r.palette.Muted
		if u.Affordable {
			style = r.palette.Affordable
		}
		drawText(buf, rect.X, rect.Y, head+tail, style, rect.W)
	}
}

func (r *Renderer) drawPopups(buf *Buffer, snap *game.Snapshot) {
	for _, p := range snap.Popups {
		// Rise one row per quarter of the lifetime
		rise := 0
		if r.popupLifetime > 0 {
			rise = int(4 * p.Age / r.popupLifetime)
		}
		label := fmt.Sprintf("+%.1f", p.Value)
		drawText(buf, p.X, p.Y-rise, label, r.palette.PopupStyle(p.Age, r.popupLifetime), len(label))
	}
}

func (r *Renderer) drawNotice(buf *Buffer, l Layout, n game.Notice) {
	box := l.Notice
	drawBox(buf, box, r.palette.NoticeEdge, r.palette.Background)
	drawText(buf, box.X+2, box.Y, " "+n.Title+" ", r.palette.Title, box.W-4)
	for i, line := range wrap(n.Content, box.W-4) {
		if i >= box.H-2 {
			break
		}
		drawText(buf, box.X+2, box.Y+1+i, line, r.palette.Text, box.W-4)
	}
}

func (r *Renderer) drawQuiz(buf *Buffer, l Layout, q game.QuizView) {
	drawBox(buf, l.Quiz, r.palette.QuizEdge, r.palette.Background)
	drawText(buf, l.Quiz.X+2, l.Quiz.Y, " ECO QUIZ ", r.palette.QuizEdge, l.Quiz.W-4)
	drawText(buf, l.QuizClose.X, l.QuizClose.Y, "[x]", r.palette.QuizEdge, l.QuizClose.W)

	for i, line := range wrap(q.Question, l.QuizText.W) {
		if i >= l.QuizText.H {
			break
		}
		drawText(buf, l.QuizText.X, l.QuizText.Y+i, line, r.palette.Text, l.QuizText.W)
	}
	for i, opt := range q.Options {
		if i >= len(l.QuizOptions) {
			break
		}
		rect := l.QuizOptions[i]
		label := fmt.Sprintf("[%d] %s", i+1, opt)
		drawText(buf, rect.X, rect.Y, fit(label, rect.W), r.palette.Affordable, rect.W)
	}
}

func (r *Renderer) drawStats(buf *Buffer, l Layout, stats []status.Entry) {
	box := l.Overlay
	drawBox(buf, box, r.palette.Title, r.palette.Background)
	drawText(buf, box.X+2, box.Y, " STATS ", r.palette.Title, box.W-4)
	inner := box.W - 4
	for i, e := range stats {
		if i >= box.H-2 {
			break
		}
		pad := max(inner-len(e.Key)-len(e.Value), 1)
		line := e.Key + strings.Repeat(".", pad) + e.Value
		drawText(buf, box.X+2, box.Y+1+i, line, r.palette.Text, inner)
	}
}

var modeText = map[Mode]string{
	ModePlay:    constants.ModeTextPlay,
	ModeQuiz:    constants.ModeTextQuiz,
	ModeCommand: constants.ModeTextCommand,
}

func (r *Renderer) drawStatusBar(buf *Buffer, l Layout, ui UIState) {
	bar := l.StatusBar
	buf.Fill(bar, r.palette.StatusBar)

	modeStyle := r.palette.ModePlay
	switch ui.Mode {
	case ModeQuiz:
		modeStyle = r.palette.ModeQuiz
	case ModeCommand:
		modeStyle = r.palette.ModeCmd
	}
	x := drawText(buf, bar.X, bar.Y, modeText[ui.Mode], modeStyle, constants.ModeIndicatorWidth)
	x++
	rest := bar.W - x

	switch {
	case ui.Mode == ModeCommand:
		drawText(buf, x, bar.Y, ":"+ui.CommandText+"_", r.palette.Command, rest)
	case ui.StatusMessage != "":
		drawText(buf, x, bar.Y, ui.StatusMessage, r.palette.Command, rest)
	case ui.Mode == ModeQuiz:
		drawText(buf, x, bar.Y, "1/2 answer  esc close", r.palette.StatusBar, rest)
	default:
		drawText(buf, x, bar.Y, "space pedal  1-9 buy  s/p/a boost  : command  q quit", r.palette.StatusBar, rest)
	}
}
