package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lunalearn/luna-api/internal/config"
	"github.com/lunalearn/luna-api/internal/content"
	"github.com/lunalearn/luna-api/internal/domain"
	"github.com/lunalearn/luna-api/internal/generation"
)

// SlideshowResult is one completed slideshow generation. Slides are ready
// for timed reveal; Resources delivers the further-reading list from the
// follow-up call when (and if) it arrives, then closes. The resources call
// never gates slide delivery.
type SlideshowResult struct {
	Topic       string
	Slides      []domain.Slide
	RevealDelay time.Duration

	// Resources yields at most one batch. A close without a batch means
	// the reading list was skipped (failed or empty, both soft).
	Resources <-chan []domain.Resource
}

// SlideshowService orchestrates the slideshow surface: two sequential
// generator calls (slide content, then resources), the normalization
// pipeline, filler-phrase cleanup, and segmentation into display chunks.
type SlideshowService struct {
	logger      *slog.Logger
	generator   generation.Generator
	maxSlideLen int
	revealDelay time.Duration

	// current is the surface's generation token. The resources follow-up
	// re-checks it before delivering so a superseded request's late
	// results are discarded instead of rendered.
	current atomic.Uint64
}

// NewSlideshowService creates a SlideshowService with the given
// dependencies.
func NewSlideshowService(
	logger *slog.Logger,
	generator generation.Generator,
	cfg config.ContentConfig,
) (*SlideshowService, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}

	maxLen := cfg.MaxSlideLength
	if maxLen < 1 {
		maxLen = content.DefaultMaxSlideLength
	}

	return &SlideshowService{
		logger:      logger,
		generator:   generator,
		maxSlideLen: maxLen,
		revealDelay: time.Duration(cfg.SlideRevealDelayMS) * time.Millisecond,
	}, nil
}

// Generate runs one slideshow request end-to-end. Slides are returned as
// soon as the first call's pipeline finishes; the resources call continues
// in the background and delivers through the result's channel. A newer
// Generate call on this service invalidates the in-flight resources
// follow-up of older ones.
//
// Hard failures (transport, unparseable or malformed slide data) are
// returned as classified errors. A legitimately empty slideshow is the
// soft ErrNothingGenerated.
func (s *SlideshowService) Generate(ctx context.Context, topic string) (*SlideshowResult, error) {
	token := s.current.Add(1)

	slides, err := s.generateSlides(ctx, topic)
	if err != nil {
		return nil, err
	}

	resources := make(chan []domain.Resource, 1)
	go s.fetchResources(ctx, topic, token, resources)

	return &SlideshowResult{
		Topic:       topic,
		Slides:      slides,
		RevealDelay: s.revealDelay,
		Resources:   resources,
	}, nil
}

// generateSlides performs the first relay call and the full slide
// pipeline: normalize, parse, validate, dedupe, segment.
func (s *SlideshowService) generateSlides(ctx context.Context, topic string) ([]domain.Slide, error) {
	prompt, err := generation.SlideshowPrompt(topic)
	if err != nil {
		return nil, err
	}

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("slideshow generation: %w", err)
	}

	records, err := content.ParseSlides(content.Normalize(raw))
	if err != nil {
		s.logSnippet(ctx, err)
		return nil, err
	}

	if err := domain.ValidateSlideshow(records); err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, ErrNothingGenerated
	}

	var slides []domain.Slide
	for _, record := range records {
		cleaned := content.CollapseFillerPhrases(record.Text)
		for _, chunk := range content.Segment(cleaned, s.maxSlideLen) {
			slides = append(slides, domain.Slide{Text: chunk, Index: len(slides)})
		}
	}

	if len(slides) == 0 {
		return nil, ErrNothingGenerated
	}

	s.logger.InfoContext(ctx, "slideshow generated",
		"topic", topic,
		"records", len(records),
		"slides", len(slides))

	return slides, nil
}

// fetchResources performs the second relay call. All failures are soft:
// the slideshow stands on its own and the reading list section is simply
// skipped. Stale responses (a newer generation started meanwhile) are
// discarded unrendered.
func (s *SlideshowService) fetchResources(
	ctx context.Context,
	topic string,
	token uint64,
	out chan<- []domain.Resource,
) {
	defer close(out)

	prompt, err := generation.ResourcesPrompt(topic)
	if err != nil {
		s.logger.WarnContext(ctx, "resources prompt failed", "error", err)
		return
	}

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.WarnContext(ctx, "resources generation failed, skipping section",
			"topic", topic,
			"error", err)
		return
	}

	resources := content.ParseResources(content.Normalize(raw))
	if len(resources) == 0 {
		s.logger.InfoContext(ctx, "resources response had no usable entries", "topic", topic)
		return
	}

	if s.current.Load() != token {
		s.logger.DebugContext(ctx, "discarding stale resources result",
			"topic", topic,
			"token", token)
		return
	}

	out <- resources
}

// logSnippet surfaces a ParseError's diagnostic snippet to the logs.
// The snippet never reaches API responses.
func (s *SlideshowService) logSnippet(ctx context.Context, err error) {
	var parseErr *content.ParseError
	if errors.As(err, &parseErr) {
		s.logger.ErrorContext(ctx, "failed to parse generator response",
			"shape", string(parseErr.Shape),
			"snippet", parseErr.Snippet)
	}
}
