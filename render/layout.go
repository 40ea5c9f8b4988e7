package render

import (
	"github.com/lixenwraith/eco-clicker/constants"
)

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether x,y falls inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the middle cell of r
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Layout places every widget for one screen size
// Left column: pedal, boosts, active effects. Right column: upgrade shop, notice
type Layout struct {
	Width, Height int
	TooSmall      bool

	Title Rect
	Stats Rect

	Pedal        Rect
	BonusHeader  Rect
	Bonuses      []Rect
	ActiveHeader Rect
	Active       Rect

	ShopHeader Rect
	Upgrades   []Rect

	Notice Rect

	Quiz        Rect
	QuizText    Rect
	QuizOptions []Rect
	QuizClose   Rect

	Overlay   Rect
	StatusBar Rect
}

const (
	leftColumnX     = 1
	leftColumnWidth = constants.PedalButtonWidth
	rightColumnX    = leftColumnX + leftColumnWidth + 2
	noticeHeight    = 6
	quizHeight      = 9
)

// NewLayout computes widget positions for a width x height screen
func NewLayout(width, height, upgrades, bonuses, quizOptions int) Layout {
	l := Layout{Width: width, Height: height}
	if width < constants.MinScreenWidth || height < constants.MinScreenHeight {
		l.TooSmall = true
		return l
	}

	l.Title = Rect{X: 0, Y: 0, W: width, H: 1}
	l.Stats = Rect{X: 0, Y: 1, W: width, H: 1}

	// Left column
	l.Pedal = Rect{X: leftColumnX, Y: 3, W: constants.PedalButtonWidth, H: constants.PedalButtonHeight}
	y := l.Pedal.Y + l.Pedal.H + 1
	l.BonusHeader = Rect{X: leftColumnX, Y: y, W: leftColumnWidth, H: 1}
	y++
	l.Bonuses = make([]Rect, bonuses)
	for i := range l.Bonuses {
		l.Bonuses[i] = Rect{X: leftColumnX, Y: y, W: leftColumnWidth, H: 1}
		y++
	}
	y++
	l.ActiveHeader = Rect{X: leftColumnX, Y: y, W: leftColumnWidth, H: 1}
	y++
	l.Active = Rect{X: leftColumnX, Y: y, W: leftColumnWidth, H: max(height-1-y, 0)}

	// Right column
	rightWidth := min(width-rightColumnX-1, constants.UpgradeRowWidth)
	l.ShopHeader = Rect{X: rightColumnX, Y: 3, W: rightWidth, H: 1}
	l.Upgrades = make([]Rect, upgrades)
	for i := range l.Upgrades {
		l.Upgrades[i] = Rect{X: rightColumnX, Y: 4 + i, W: rightWidth, H: 1}
	}

	noticeWidth := min(constants.NoticeWidth, width-rightColumnX-1)
	l.Notice = Rect{
		X: width - noticeWidth - 1,
		Y: height - 1 - noticeHeight,
		W: noticeWidth,
		H: noticeHeight,
	}

	// Quiz modal, centered
	qw := min(constants.QuizWidth, width-2)
	l.Quiz = Rect{X: (width - qw) / 2, Y: (height - quizHeight) / 2, W: qw, H: quizHeight}
	l.QuizText = Rect{X: l.Quiz.X + 2, Y: l.Quiz.Y + 2, W: qw - 4, H: 3}
	l.QuizClose = Rect{X: l.Quiz.X + qw - 5, Y: l.Quiz.Y, W: 3, H: 1}
	l.QuizOptions = make([]Rect, quizOptions)
	if quizOptions > 0 {
		slot := (qw - 4) / quizOptions
		for i := range l.QuizOptions {
			l.QuizOptions[i] = Rect{X: l.Quiz.X + 2 + i*slot, Y: l.Quiz.Y + quizHeight - 3, W: slot - 1, H: 1}
		}
	}

	ow := min(40, width-4)
	l.Overlay = Rect{X: (width - ow) / 2, Y: 3, W: ow, H: height - 5}
	l.StatusBar = Rect{X: 0, Y: height - 1, W: width, H: 1}
	return l
}

// ActionKind is what a pointer press on a widget means
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionClick
	ActionPurchase
	ActionBonus
	ActionAnswer
	ActionDismiss
)

// Action is a resolved press; Index selects the upgrade, bonus or quiz option
type Action struct {
	Kind  ActionKind
	Index int
}

// HitTest resolves a press at x,y
// A visible quiz is modal: only its options and close button respond
func (l Layout) HitTest(x, y int, quizVisible bool) Action {
	if l.TooSmall {
		return Action{}
	}
	if quizVisible {
		if l.QuizClose.Contains(x, y) {
			return Action{Kind: ActionDismiss}
		}
		for i, r := range l.QuizOptions {
			if r.Contains(x, y) {
				return Action{Kind: ActionAnswer, Index: i}
			}
		}
		return Action{}
	}

	if l.Pedal.Contains(x, y) {
		return Action{Kind: ActionClick}
	}
	for i, r := range l.Upgrades {
		if r.Contains(x, y) {
			return Action{Kind: ActionPurchase, Index: i}
		}
	}
	for i, r := range l.Bonuses {
		if r.Contains(x, y) {
			return Action{Kind: ActionBonus, Index: i}
		}
	}
	return Action{}
}
