package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lunalearn/luna-api/internal/content"
	"github.com/lunalearn/luna-api/internal/domain"
	"github.com/lunalearn/luna-api/internal/generation"
)

// FlashcardService orchestrates the flashcard surface: one generator call
// and the tolerant line-based parse. The parse never hard-fails; a deck
// with no usable lines is the soft ErrNothingGenerated.
type FlashcardService struct {
	logger    *slog.Logger
	generator generation.Generator
}

// NewFlashcardService creates a FlashcardService with the given dependencies.
func NewFlashcardService(logger *slog.Logger, generator generation.Generator) (*FlashcardService, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	return &FlashcardService{logger: logger, generator: generator}, nil
}

// Generate produces a flashcard deck for the topic.
func (s *FlashcardService) Generate(ctx context.Context, topic string) ([]domain.Flashcard, error) {
	prompt, err := generation.FlashcardsPrompt(topic)
	if err != nil {
		return nil, err
	}

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("flashcard generation: %w", err)
	}

	cards := content.ParseFlashcards(content.Normalize(raw))
	if len(cards) == 0 {
		return nil, ErrNothingGenerated
	}

	s.logger.InfoContext(ctx, "flashcards generated",
		"topic", topic,
		"cards", len(cards))

	return cards, nil
}
