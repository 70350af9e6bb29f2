package generation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlideshowPrompt(t *testing.T) {
	t.Parallel()

	prompt, err := SlideshowPrompt("black holes")
	require.NoError(t, err)
	assert.Contains(t, prompt, `Topic: "black holes"`)
	assert.Contains(t, prompt, `"text" key`)

	_, err = SlideshowPrompt("   ")
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestResourcesPrompt(t *testing.T) {
	t.Parallel()

	prompt, err := ResourcesPrompt("plate tectonics")
	require.NoError(t, err)
	assert.Contains(t, prompt, "## Further Reading")
	assert.Contains(t, prompt, "- [title](url) - one-sentence description")

	_, err = ResourcesPrompt("")
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestQuizPrompt(t *testing.T) {
	t.Parallel()

	prompt, err := QuizPrompt(5, 4, "", "")
	require.NoError(t, err)
	assert.Contains(t, prompt, "5 quiz questions")
	assert.Contains(t, prompt, "4 answer options")
	assert.Contains(t, prompt, DefaultQuizCategory)
	assert.Contains(t, prompt, "grade "+DefaultQuizGrade)

	prompt, err = QuizPrompt(5, 4, "world history", "6-8")
	require.NoError(t, err)
	assert.Contains(t, prompt, "world history")
	assert.Contains(t, prompt, "grade 6-8")
	assert.False(t, strings.Contains(prompt, DefaultQuizCategory))
}

func TestFlashcardsPrompt(t *testing.T) {
	t.Parallel()

	prompt, err := FlashcardsPrompt("cell biology")
	require.NoError(t, err)
	assert.Contains(t, prompt, "Term: Definition")
	assert.Contains(t, prompt, `Topic: "cell biology"`)
}
