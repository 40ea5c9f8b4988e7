package game

import (
	"time"

	"github.com/lixenwraith/eco-clicker/audio"
	"github.com/lixenwraith/eco-clicker/constants"
	"github.com/lixenwraith/eco-clicker/content"
)

// Notice is the shared tip slot; scheduled tips and quiz feedback both write to it
type Notice struct {
	Title   string
	Content string
	Visible bool
}

// showNotice replaces the notice and hides it after d
// A newer notice keeps its full display time: stale hide timers are ignored
func (s *Session) showNotice(title, body string, d time.Duration) {
	s.noticeGen++
	gen := s.noticeGen
	s.notice = Notice{Title: title, Content: body, Visible: true}

	s.timers.After(d, func(time.Time) {
		if s.noticeGen == gen {
			s.notice.Visible = false
		}
	})
}

func (s *Session) showRandomTip(time.Time) {
	tips := s.catalog.Tips
	if len(tips) == 0 {
		return
	}
	tip := tips[s.rng.IntN(len(tips))]
	s.showNotice(tip.Title, tip.Content, s.cfg.TipDuration)
	s.statTips.Add(1)
	s.sound.Play(audio.SoundTip)
}

// armQuiz schedules the quiz at a uniform random delay in [QuizMinDelay, QuizMaxDelay)
func (s *Session) armQuiz() {
	if len(s.catalog.Questions) == 0 {
		return
	}
	delay := s.cfg.QuizMinDelay
	if span := s.cfg.QuizMaxDelay - s.cfg.QuizMinDelay; span > 0 {
		delay += time.Duration(s.rng.Int64N(int64(span)))
	}
	s.quizTask = s.timers.After(delay, s.fireQuiz)
	s.log.Debug("quiz armed", "delay", delay)
}

func (s *Session) fireQuiz(time.Time) {
	s.quizTask = 0
	s.presentQuiz(s.rng.IntN(len(s.catalog.Questions)))
	if s.cfg.QuizRepeat {
		s.armQuiz()
	}
}

// presentQuiz shows question i; an unanswered quiz is replaced
func (s *Session) presentQuiz(i int) {
	q := s.catalog.Questions[i]
	s.quiz = &q
	s.quizVisible = true
	s.log.Debug("quiz shown", "question", i)
}

// QuizVisible reports whether a quiz is waiting for an answer
func (s *Session) QuizVisible() bool {
	return s.quizVisible && s.quiz != nil
}

// AnswerQuiz applies the answer to the visible quiz
// A correct answer doubles the live multiplier, a wrong one halves it
// The adjustment is not tracked: the next Recompute overwrites it
// answered is false when no quiz is visible or index is not an option
func (s *Session) AnswerQuiz(index int) (correct, answered bool) {
	if !s.QuizVisible() {
		return false, false
	}
	q := s.quiz
	if index < 0 || index >= len(q.Options) {
		return false, false
	}

	fb := s.catalog.Feedback
	correct = index == q.Correct
	if correct {
		s.setMultiplier(s.multiplier * constants.QuizCorrectFactor)
		s.statCorrect.Add(1)
		s.sound.Play(audio.SoundCorrect)
		s.showNotice(fb.CorrectTitle, fb.CorrectContent, s.cfg.FeedbackDuration)
	} else {
		s.setMultiplier(s.multiplier * constants.QuizWrongFactor)
		s.statWrong.Add(1)
		s.sound.Play(audio.SoundWrong)
		s.showNotice(fb.WrongTitle, fb.WrongContent, s.cfg.FeedbackDuration)
	}

	s.quizVisible = false
	s.quiz = nil
	s.log.Debug("quiz answered", "correct", correct, "multiplier", s.multiplier)
	return correct, true
}

// DismissQuiz closes the quiz without any effect
func (s *Session) DismissQuiz() {
	if !s.quizVisible {
		return
	}
	s.quizVisible = false
	s.quiz = nil
	s.log.Debug("quiz dismissed")
}

// CurrentQuiz returns the visible question
func (s *Session) CurrentQuiz() (content.Question, bool) {
	if !s.QuizVisible() {
		return content.Question{}, false
	}
	return *s.quiz, true
}

// CurrentNotice returns the notice slot
func (s *Session) CurrentNotice() Notice {
	return s.notice
}
