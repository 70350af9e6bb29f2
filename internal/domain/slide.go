package domain

import "errors"

// Slide-specific validation errors
var (
	// ErrSlideTextEmpty is returned when a slide record has no text.
	ErrSlideTextEmpty = errors.New("slide text cannot be empty")

	// ErrSlideshowMalformed is returned when a parsed slideshow does not
	// satisfy the structural invariants required for rendering.
	ErrSlideshowMalformed = errors.New("malformed slideshow data")
)

// SlideRecord is one logical point of an explanation as returned by the
// generator, prior to length-based chunking into displayable slides.
type SlideRecord struct {
	Text string `json:"text"`
}

// Validate checks if the SlideRecord has valid data.
func (s SlideRecord) Validate() error {
	if s.Text == "" {
		return ErrSlideTextEmpty
	}
	return nil
}

// Slide is a single displayable chunk produced by segmenting a SlideRecord.
// Slides are transient: they are owned by the presenter for one generation
// cycle and discarded on the next.
type Slide struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
}

// ValidateSlideshow asserts the invariants a parsed slideshow must hold
// before it reaches rendering: every record carries non-empty text. An empty
// slice is permitted here; the caller treats it as a soft "nothing generated"
// outcome rather than an error.
func ValidateSlideshow(records []SlideRecord) error {
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return ErrSlideshowMalformed
		}
	}
	return nil
}
