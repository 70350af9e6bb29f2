package quiz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunalearn/luna-api/internal/domain"
)

func makeQuestions(n int) []domain.QuizQuestion {
	questions := make([]domain.QuizQuestion, n)
	for i := range questions {
		questions[i] = domain.QuizQuestion{
			Question: fmt.Sprintf("Question %d?", i),
			Options:  []string{"Alpha", "Beta", "Gamma", "Delta"},
			Answer:   "Beta",
		}
	}
	return questions
}

func TestNewSession(t *testing.T) {
	t.Parallel()

	session, err := NewSession(makeQuestions(domain.QuizQuestionCount))
	require.NoError(t, err)
	assert.Equal(t, StateQuestionDisplayed, session.State())
	assert.Equal(t, 0, session.Score())
	assert.Equal(t, domain.QuizQuestionCount, session.Len())

	// Extra questions are dropped
	session, err = NewSession(makeQuestions(domain.QuizQuestionCount + 2))
	require.NoError(t, err)
	assert.Equal(t, domain.QuizQuestionCount, session.Len())

	// Too few is a validation failure
	_, err = NewSession(makeQuestions(3))
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestFullRunAllCorrect(t *testing.T) {
	t.Parallel()

	session, err := NewSession(makeQuestions(domain.QuizQuestionCount))
	require.NoError(t, err)

	lastScore := 0
	for i := 0; i < domain.QuizQuestionCount; i++ {
		index, question, ok := session.Current()
		require.True(t, ok)
		assert.Equal(t, i, index)

		result, err := session.SelectOption(question.AnswerIndex())
		require.NoError(t, err)
		assert.True(t, result.Correct)
		assert.GreaterOrEqual(t, result.Score, lastScore, "score must be non-decreasing")
		lastScore = result.Score
		assert.Equal(t, StateAnswerLocked, session.State())

		state, err := session.Advance()
		require.NoError(t, err)
		if i < domain.QuizQuestionCount-1 {
			assert.Equal(t, StateQuestionDisplayed, state)
		} else {
			assert.Equal(t, StateCompleted, state)
		}
	}

	assert.Equal(t, domain.QuizQuestionCount, session.Score())
	assert.LessOrEqual(t, session.Score(), session.Len(), "score never exceeds question count")

	_, _, ok := session.Current()
	assert.False(t, ok)
}

func TestIncorrectSelectionReportsCorrectOption(t *testing.T) {
	t.Parallel()

	session, err := NewSession(makeQuestions(domain.QuizQuestionCount))
	require.NoError(t, err)

	result, err := session.SelectOption(0) // answer is "Beta" at index 1
	require.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Equal(t, 0, result.SelectedIndex)
	assert.Equal(t, 1, result.CorrectIndex)
	assert.Equal(t, 0, result.Score)
}

func TestSelectionWhileLockedIsRejected(t *testing.T) {
	t.Parallel()

	session, err := NewSession(makeQuestions(domain.QuizQuestionCount))
	require.NoError(t, err)

	_, err = session.SelectOption(1)
	require.NoError(t, err)

	before := session.Score()
	_, err = session.SelectOption(1)
	assert.True(t, errors.Is(err, ErrAnswerLocked))
	assert.Equal(t, before, session.Score(), "locked selections must not change the score")
}

func TestSelectOptionOutOfRange(t *testing.T) {
	t.Parallel()

	session, err := NewSession(makeQuestions(domain.QuizQuestionCount))
	require.NoError(t, err)

	_, err = session.SelectOption(7)
	assert.True(t, errors.Is(err, ErrOptionOutOfRange))
	assert.Equal(t, StateQuestionDisplayed, session.State())

	_, err = session.SelectOption(-1)
	assert.True(t, errors.Is(err, ErrOptionOutOfRange))
}

func TestAdvanceBeforeAnswerIsRejected(t *testing.T) {
	t.Parallel()

	session, err := NewSession(makeQuestions(domain.QuizQuestionCount))
	require.NoError(t, err)

	_, err = session.Advance()
	assert.True(t, errors.Is(err, ErrNotLocked))
}

func TestAnswerAbsentFromOptionsNeverScores(t *testing.T) {
	t.Parallel()

	questions := makeQuestions(domain.QuizQuestionCount)
	questions[0].Answer = "Omega" // not among the options

	session, err := NewSession(questions)
	require.NoError(t, err, "a degraded question must still be served")

	// Every option is selectable; none is ever marked correct
	result, err := session.SelectOption(1)
	require.NoError(t, err)
	assert.False(t, result.Correct)
	assert.Equal(t, -1, result.CorrectIndex)
	assert.Equal(t, 0, result.Score)
}

func TestCompletedSessionRejectsFurtherPlay(t *testing.T) {
	t.Parallel()

	session, err := NewSession(makeQuestions(domain.QuizQuestionCount))
	require.NoError(t, err)

	for i := 0; i < domain.QuizQuestionCount; i++ {
		_, err := session.SelectOption(0)
		require.NoError(t, err)
		_, err = session.Advance()
		require.NoError(t, err)
	}

	_, err = session.SelectOption(0)
	assert.True(t, errors.Is(err, ErrQuizCompleted))

	_, err = session.Advance()
	assert.True(t, errors.Is(err, ErrQuizCompleted))
}
