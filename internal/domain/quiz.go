package domain

import (
	"errors"
	"fmt"
)

// Quiz composition constants. A quiz is a fixed-order sequence of exactly
// QuizQuestionCount questions, each offering QuizOptionCount answer options.
const (
	QuizQuestionCount = 5
	QuizOptionCount   = 4
)

// Quiz-specific validation errors
var (
	// ErrQuizQuestionEmpty is returned when a question has no prompt text.
	ErrQuizQuestionEmpty = errors.New("quiz question cannot be empty")

	// ErrQuizOptionsEmpty is returned when a question has no answer options.
	ErrQuizOptionsEmpty = errors.New("quiz question must have answer options")

	// ErrQuizOptionEmpty is returned when an individual answer option is blank.
	ErrQuizOptionEmpty = errors.New("quiz answer option cannot be empty")

	// ErrQuizAnswerEmpty is returned when a question has no answer.
	ErrQuizAnswerEmpty = errors.New("quiz answer cannot be empty")

	// ErrQuizTooShort is returned when a quiz has fewer questions than required.
	ErrQuizTooShort = errors.New("quiz has too few questions")
)

// QuizQuestion is a single multiple-choice question. The answer is expected
// to be a member of Options; a question where it is not is a data-quality
// defect that the session renders degraded rather than rejecting (no option
// is ever marked correct).
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Validate checks the structural invariants of a single question.
// Answer membership in Options is deliberately not enforced here; use
// AnswerIndex to detect the degraded case.
func (q QuizQuestion) Validate() error {
	if q.Question == "" {
		return ErrQuizQuestionEmpty
	}
	if len(q.Options) == 0 {
		return ErrQuizOptionsEmpty
	}
	for _, opt := range q.Options {
		if opt == "" {
			return ErrQuizOptionEmpty
		}
	}
	if q.Answer == "" {
		return ErrQuizAnswerEmpty
	}
	return nil
}

// AnswerIndex returns the index of the correct option, or -1 when the
// answer does not appear among the options.
func (q QuizQuestion) AnswerIndex() int {
	for i, opt := range q.Options {
		if opt == q.Answer {
			return i
		}
	}
	return -1
}

// ValidateQuiz asserts the invariants of a complete question set: at least
// QuizQuestionCount structurally valid questions. Per-question errors are
// wrapped with the offending index for diagnostics.
func ValidateQuiz(questions []QuizQuestion) error {
	if len(questions) < QuizQuestionCount {
		return fmt.Errorf("%w: got %d, want %d", ErrQuizTooShort, len(questions), QuizQuestionCount)
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}
	}
	return nil
}
