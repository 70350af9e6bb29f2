package api

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/lunalearn/luna-api/internal/config"
	"github.com/lunalearn/luna-api/internal/present"
	"github.com/lunalearn/luna-api/internal/service"
)

// stubGenerator serves canned responses keyed by a substring of the prompt,
// so one stub can answer the slideshow, resources, quiz, and flashcard
// prompts differently.
type stubGenerator struct {
	mu        sync.Mutex
	responses map[string]string
	errs      map[string]error
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for key, err := range g.errs {
		if strings.Contains(prompt, key) {
			return "", err
		}
	}
	for key, response := range g.responses {
		if strings.Contains(prompt, key) {
			return response, nil
		}
	}
	return "", fmt.Errorf("no stubbed response for prompt %q", prompt)
}

// manualClock records scheduled callbacks without firing them, so tests
// control exactly when the quiz auto-advance happens.
type manualClock struct {
	mu    sync.Mutex
	funcs []func()
}

type manualTimer struct{}

func (manualTimer) Stop() bool { return true }

func (c *manualClock) AfterFunc(_ time.Duration, f func()) present.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, f)
	return manualTimer{}
}

func (c *manualClock) fire() {
	c.mu.Lock()
	funcs := c.funcs
	c.funcs = nil
	c.mu.Unlock()
	for _, f := range funcs {
		f()
	}
}

func testContentConfig() config.ContentConfig {
	return config.ContentConfig{
		MaxSlideLength:     180,
		SlideRevealDelayMS: 800,
		QuizAdvanceDelayMS: 1000,
		SessionTTLMinutes:  30,
	}
}

// newTestRouter wires real services over the stub generator behind the same
// routes the server registers.
func newTestRouter(t *testing.T, gen *stubGenerator, clock *manualClock, cfg config.ContentConfig) chi.Router {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelError}))

	slideshowService, err := service.NewSlideshowService(logger, gen, cfg)
	require.NoError(t, err)
	quizService, err := service.NewQuizService(logger, gen, clock, cfg)
	require.NoError(t, err)
	flashcardService, err := service.NewFlashcardService(logger, gen)
	require.NoError(t, err)

	slideshowHandler := NewSlideshowHandler(slideshowService, logger)
	quizHandler := NewQuizHandler(quizService, logger)
	flashcardHandler := NewFlashcardHandler(flashcardService, logger)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/slideshows", slideshowHandler.CreateSlideshow)
		r.Get("/slideshows/stream", slideshowHandler.StreamSlideshow)
		r.Post("/quizzes", quizHandler.StartQuiz)
		r.Get("/quizzes/{id}", quizHandler.GetQuiz)
		r.Post("/quizzes/{id}/answers", quizHandler.SubmitAnswer)
		r.Post("/quizzes/{id}/retry", quizHandler.RetryQuiz)
		r.Post("/flashcards", flashcardHandler.CreateFlashcards)
	})
	return r
}

// testWriter routes log output through the test log so failures show it.
type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimSpace(string(p)))
	return len(p), nil
}

// quizResponseJSON is a five-question set where every answer is the first
// option, except question two whose answer matches no option.
const quizResponseJSON = `[
	{"question": "Q1", "options": ["A", "B", "C", "D"], "answer": "A"},
	{"question": "Q2", "options": ["A", "B", "C", "D"], "answer": "missing"},
	{"question": "Q3", "options": ["A", "B", "C", "D"], "answer": "A"},
	{"question": "Q4", "options": ["A", "B", "C", "D"], "answer": "A"},
	{"question": "Q5", "options": ["A", "B", "C", "D"], "answer": "A"}
]`

const slideshowResponseJSON = "```json\n" +
	`[{"text": "Gravity pulls things together."}, {"text": "Mass tells space how to curve."}]` +
	"\n```"

const resourcesResponseMarkdown = `## Further Reading
- [Gravity Basics](https://example.com/gravity) - A gentle introduction.
- [Spacetime](https://example.com/spacetime) - How mass curves space.`
