// Package quiz implements the interactive quiz state machine: one question
// displayed at a time, answers locking the question, score accumulation,
// and a completed results state with retry. Sessions are transient and live
// only in memory for the duration of one quiz run.
package quiz

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lunalearn/luna-api/internal/domain"
)

// State identifies where a session is in its lifecycle.
type State string

// Session states.
const (
	// StateQuestionDisplayed means the current question is open for a
	// selection.
	StateQuestionDisplayed State = "question_displayed"

	// StateAnswerLocked means an option has been chosen and the question
	// no longer accepts selections; the session is waiting to advance.
	StateAnswerLocked State = "answer_locked"

	// StateCompleted means every question has been answered and the final
	// score is available.
	StateCompleted State = "completed"
)

// Session errors.
var (
	// ErrAnswerLocked is returned when an option is selected while the
	// current question is already locked.
	ErrAnswerLocked = errors.New("current question is already answered")

	// ErrQuizCompleted is returned when an operation needs an open
	// question but the session has finished.
	ErrQuizCompleted = errors.New("quiz is already completed")

	// ErrNotLocked is returned when Advance is called before the current
	// question has been answered.
	ErrNotLocked = errors.New("current question has not been answered")

	// ErrOptionOutOfRange is returned for a selection index outside the
	// current question's options.
	ErrOptionOutOfRange = errors.New("selected option is out of range")
)

// Result describes the outcome of one selection: whether it scored, which
// option was actually correct (index -1 when the generated answer matches
// no option, in which case the question can never score), and the running
// total.
type Result struct {
	Correct       bool
	SelectedIndex int
	CorrectIndex  int
	Score         int
}

// Session tracks one quiz run: fixed questions, current index, score, and
// the answered/locked flag for the current question. Mutations go through
// SelectOption and Advance only; everything else is read-only.
type Session struct {
	mu        sync.Mutex
	questions []domain.QuizQuestion
	current   int
	score     int
	state     State
}

// NewSession validates the question set and starts a session on its first
// question. Extra questions beyond the quiz size are dropped; too few is an
// error.
func NewSession(questions []domain.QuizQuestion) (*Session, error) {
	if err := domain.ValidateQuiz(questions); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	return &Session{
		questions: questions[:domain.QuizQuestionCount],
		state:     StateQuestionDisplayed,
	}, nil
}

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Score returns the number of correctly answered questions so far.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Len returns the number of questions in the session.
func (s *Session) Len() int {
	return len(s.questions)
}

// Current returns the index and question currently displayed. ok is false
// once the session has completed.
func (s *Session) Current() (int, domain.QuizQuestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateCompleted {
		return 0, domain.QuizQuestion{}, false
	}
	return s.current, s.questions[s.current], true
}

// SelectOption answers the current question with the option at the given
// index and locks it. Selecting while locked or after completion is
// rejected without changing any state. The correct option is reported so
// an incorrect choice can be displayed against it; when the generated
// answer matches no option, CorrectIndex is -1 and nothing is ever marked
// correct.
func (s *Session) SelectOption(optionIndex int) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateCompleted:
		return Result{}, ErrQuizCompleted
	case StateAnswerLocked:
		return Result{}, ErrAnswerLocked
	}

	question := s.questions[s.current]
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return Result{}, fmt.Errorf("%w: %d of %d", ErrOptionOutOfRange, optionIndex, len(question.Options))
	}

	correctIndex := question.AnswerIndex()
	correct := correctIndex >= 0 && optionIndex == correctIndex
	if correct {
		s.score++
	}
	s.state = StateAnswerLocked

	return Result{
		Correct:       correct,
		SelectedIndex: optionIndex,
		CorrectIndex:  correctIndex,
		Score:         s.score,
	}, nil
}

// Upcoming returns the question the session will display once the pending
// advance fires. ok is false when the session is not locked or the answered
// question was the last one.
func (s *Session) Upcoming() (int, domain.QuizQuestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAnswerLocked || s.current+1 >= len(s.questions) {
		return 0, domain.QuizQuestion{}, false
	}
	return s.current + 1, s.questions[s.current+1], true
}

// Advance moves a locked session to the next question, or to Completed
// when the last question has been answered. The caller owns the ~1s
// lock-display delay; Advance itself is immediate.
func (s *Session) Advance() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateCompleted:
		return StateCompleted, ErrQuizCompleted
	case StateQuestionDisplayed:
		return s.state, ErrNotLocked
	}

	if s.current+1 < len(s.questions) {
		s.current++
		s.state = StateQuestionDisplayed
	} else {
		s.state = StateCompleted
	}
	return s.state, nil
}
