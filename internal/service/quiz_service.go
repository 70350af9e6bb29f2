package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lunalearn/luna-api/internal/config"
	"github.com/lunalearn/luna-api/internal/content"
	"github.com/lunalearn/luna-api/internal/domain"
	"github.com/lunalearn/luna-api/internal/generation"
	"github.com/lunalearn/luna-api/internal/present"
	"github.com/lunalearn/luna-api/internal/quiz"
)

// QuizParams narrows quiz generation. Empty fields fall back to the prompt
// defaults (general science and technology, grades 8-12).
type QuizParams struct {
	Category string
	Grade    string
}

// quizEntry pairs a live session with the parameters that created it, so
// Retry can regenerate a fresh question set for the same selection.
type quizEntry struct {
	session    *quiz.Session
	params     QuizParams
	lastActive time.Time
}

// QuizService orchestrates the quiz surface: question-set generation
// through the pipeline, an in-memory registry of live sessions, timed
// auto-advance after each locked answer, and retry.
type QuizService struct {
	logger       *slog.Logger
	generator    generation.Generator
	clock        present.Clock
	advanceDelay time.Duration
	sessionTTL   time.Duration

	mu      sync.Mutex
	entries map[uuid.UUID]*quizEntry
}

// NewQuizService creates a QuizService. A nil clock uses the system clock;
// tests inject a fake to drive auto-advance deterministically.
func NewQuizService(
	logger *slog.Logger,
	generator generation.Generator,
	clock present.Clock,
	cfg config.ContentConfig,
) (*QuizService, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if clock == nil {
		clock = present.SystemClock{}
	}

	ttl := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	return &QuizService{
		logger:       logger,
		generator:    generator,
		clock:        clock,
		advanceDelay: time.Duration(cfg.QuizAdvanceDelayMS) * time.Millisecond,
		sessionTTL:   ttl,
		entries:      make(map[uuid.UUID]*quizEntry),
	}, nil
}

// Start generates a question set and opens a session on it, returning the
// new session ID.
func (s *QuizService) Start(ctx context.Context, params QuizParams) (uuid.UUID, *quiz.Session, error) {
	session, err := s.generateSession(ctx, params)
	if err != nil {
		return uuid.Nil, nil, err
	}

	id := uuid.New()
	s.mu.Lock()
	s.purgeExpiredLocked()
	s.entries[id] = &quizEntry{
		session:    session,
		params:     params,
		lastActive: time.Now(),
	}
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "quiz session started",
		"session_id", id.String(),
		"category", params.Category,
		"grade", params.Grade)

	return id, session, nil
}

// Get returns the live session for the given ID.
func (s *QuizService) Get(id uuid.UUID) (*quiz.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok || time.Since(entry.lastActive) > s.sessionTTL {
		delete(s.entries, id)
		return nil, ErrSessionNotFound
	}
	entry.lastActive = time.Now()
	return entry.session, nil
}

// Answer locks the current question with the selected option and schedules
// the auto-advance: after the configured delay the session moves to the
// next question or completes. The result reflects the locked state.
func (s *QuizService) Answer(id uuid.UUID, optionIndex int) (quiz.Result, error) {
	session, err := s.Get(id)
	if err != nil {
		return quiz.Result{}, err
	}

	result, err := session.SelectOption(optionIndex)
	if err != nil {
		return quiz.Result{}, err
	}

	s.clock.AfterFunc(s.advanceDelay, func() {
		if _, err := session.Advance(); err != nil {
			// A retry may have replaced the session in the meantime;
			// advancing a stale one is a no-op worth recording only.
			s.logger.Debug("quiz auto-advance skipped", "session_id", id.String(), "error", err)
		}
	})

	return result, nil
}

// Retry regenerates a fresh question set for the session's original
// parameters and restarts the run under the same ID.
func (s *QuizService) Retry(ctx context.Context, id uuid.UUID) (*quiz.Session, error) {
	s.mu.Lock()
	entry, ok := s.entries[id]
	if !ok || time.Since(entry.lastActive) > s.sessionTTL {
		delete(s.entries, id)
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	params := entry.params
	s.mu.Unlock()

	session, err := s.generateSession(ctx, params)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entries[id] = &quizEntry{
		session:    session,
		params:     params,
		lastActive: time.Now(),
	}
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "quiz session restarted", "session_id", id.String())
	return session, nil
}

// generateSession runs the quiz pipeline: prompt, generator call,
// normalize, parse, validate, open a session.
func (s *QuizService) generateSession(ctx context.Context, params QuizParams) (*quiz.Session, error) {
	prompt, err := generation.QuizPrompt(
		domain.QuizQuestionCount,
		domain.QuizOptionCount,
		params.Category,
		params.Grade,
	)
	if err != nil {
		return nil, err
	}

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	questions, err := content.ParseQuiz(content.Normalize(raw))
	if err != nil {
		var parseErr *content.ParseError
		if errors.As(err, &parseErr) {
			s.logger.ErrorContext(ctx, "failed to parse quiz response",
				"shape", string(parseErr.Shape),
				"snippet", parseErr.Snippet)
		}
		return nil, err
	}

	for i, q := range questions {
		if q.AnswerIndex() < 0 {
			// Data-quality defect: served degraded, never scores.
			s.logger.WarnContext(ctx, "quiz answer not among options",
				"question_index", i)
		}
	}

	session, err := quiz.NewSession(questions)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// purgeExpiredLocked drops sessions idle past the TTL. Caller holds s.mu.
func (s *QuizService) purgeExpiredLocked() {
	for id, entry := range s.entries {
		if time.Since(entry.lastActive) > s.sessionTTL {
			delete(s.entries, id)
		}
	}
}
