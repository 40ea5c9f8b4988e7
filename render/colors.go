package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/eco-clicker/constants"
)

// Palette holds the resolved styles for every widget
type Palette struct {
	Background tcell.Style
	Title      tcell.Style
	Text       tcell.Style
	Muted      tcell.Style
	Pedal      tcell.Style
	Affordable tcell.Style
	Bonus      tcell.Style
	AutoPedal  tcell.Style
	NoticeEdge tcell.Style
	QuizEdge   tcell.Style
	StatusBar  tcell.Style
	Command    tcell.Style
	ModePlay   tcell.Style
	ModeQuiz   tcell.Style
	ModeCmd    tcell.Style

	popupStart colorful.Color
	popupEnd   colorful.Color
	bg         tcell.Color
}

// hexColor parses a #rrggbb constant; malformed input yields white
func hexColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

// toTcell converts to a 24-bit terminal color
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// NewPalette resolves the UI color constants
func NewPalette() Palette {
	bg := toTcell(hexColor(constants.ColorBackground))
	base := tcell.StyleDefault.Background(bg)
	fg := func(hex string) tcell.Style {
		return base.Foreground(toTcell(hexColor(hex)))
	}
	bar := toTcell(hexColor(constants.ColorStatusBar))
	text := toTcell(hexColor(constants.ColorText))

	return Palette{
		Background: base.Foreground(text),
		Title:      fg(constants.ColorTitle).Bold(true),
		Text:       fg(constants.ColorText),
		Muted:      fg(constants.ColorMuted),
		Pedal:      base.Foreground(text).Background(toTcell(hexColor(constants.ColorPedal))).Bold(true),
		Affordable: fg(constants.ColorAffordable).Bold(true),
		Bonus:      fg(constants.ColorBonus),
		AutoPedal:  fg(constants.ColorAutoPedal).Bold(true),
		NoticeEdge: fg(constants.ColorNoticeEdge),
		QuizEdge:   fg(constants.ColorQuizEdge),
		StatusBar:  tcell.StyleDefault.Background(bar).Foreground(text),
		Command:    tcell.StyleDefault.Background(bar).Foreground(toTcell(hexColor(constants.ColorCommandText))),
		ModePlay:   tcell.StyleDefault.Background(toTcell(hexColor(constants.ColorPedal))).Foreground(tcell.ColorBlack).Bold(true),
		ModeQuiz:   tcell.StyleDefault.Background(toTcell(hexColor(constants.ColorQuizEdge))).Foreground(tcell.ColorBlack).Bold(true),
		ModeCmd:    tcell.StyleDefault.Background(toTcell(hexColor(constants.ColorAutoPedal))).Foreground(tcell.ColorBlack).Bold(true),
		popupStart: hexColor(constants.ColorPopupStart),
		popupEnd:   hexColor(constants.ColorPopupEnd),
		bg:         bg,
	}
}

// PopupStyle fades the popup from bright to dark green across its lifetime
func (p Palette) PopupStyle(age, lifetime time.Duration) tcell.Style {
	t := 1.0
	if lifetime > 0 {
		t = min(max(float64(age)/float64(lifetime), 0), 1)
	}
	c := p.popupStart.BlendLab(p.popupEnd, t)
	return tcell.StyleDefault.Background(p.bg).Foreground(toTcell(c)).Bold(t < 0.5)
}
