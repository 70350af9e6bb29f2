package content

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/lunalearn/luna-api/internal/domain"
)

// Shape tags the machine-readable layout a generator response is expected
// to follow. JSON-shaped parses fail hard on invalid input; line- and
// markdown-shaped parses are tolerant and never fail.
type Shape string

// Recognized response shapes.
const (
	ShapeSlides            Shape = "slides"
	ShapeQuiz              Shape = "quiz"
	ShapeResourcesMarkdown Shape = "resources-markdown"
	ShapeFlashcardLines    Shape = "flashcards-lines"
)

// snippetLimit bounds how much offending text a ParseError carries.
const snippetLimit = 160

// ParseError is returned when normalized text cannot be interpreted as the
// expected shape. Snippet holds a truncated copy of the offending text for
// diagnostics; it is meant for logs, never for end users.
type ParseError struct {
	Shape   Shape
	Snippet string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s response: %v", e.Shape, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(shape Shape, text string, err error) *ParseError {
	snippet := text
	if len(snippet) > snippetLimit {
		snippet = snippet[:snippetLimit] + "..."
	}
	return &ParseError{Shape: shape, Snippet: snippet, Err: err}
}

// ParseSlides interprets normalized text as a JSON array of slide records.
// Invalid JSON is a hard failure; structural problems inside the array
// (empty text fields) are left to domain.ValidateSlideshow.
func ParseSlides(text string) ([]domain.SlideRecord, error) {
	payload := trimAfterJSONArray(text)
	var records []domain.SlideRecord
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return nil, newParseError(ShapeSlides, text, err)
	}
	return records, nil
}

// ParseQuiz interprets normalized text as a JSON array of quiz questions.
// Invalid JSON is a hard failure; question count and per-question invariants
// are left to domain.ValidateQuiz.
func ParseQuiz(text string) ([]domain.QuizQuestion, error) {
	payload := trimAfterJSONArray(text)
	var questions []domain.QuizQuestion
	if err := json.Unmarshal([]byte(payload), &questions); err != nil {
		return nil, newParseError(ShapeQuiz, text, err)
	}
	return questions, nil
}

// resourceLinePattern matches one markdown bullet of the form
// "- [title](url) - description". The description is optional.
var resourceLinePattern = regexp.MustCompile(`^\s*[-*]\s*\[([^\]]+)\]\(([^)\s]+)\)\s*(?:[-–—:]\s*(.*))?$`)

// ParseResources scans normalized markdown for further-reading bullets.
// Lines that do not match the convention, and matches whose link target is
// unusable, are silently skipped: a partial list is acceptable and zero
// matches is an empty result, not an error.
func ParseResources(text string) []domain.Resource {
	var resources []domain.Resource
	for _, line := range strings.Split(text, "\n") {
		m := resourceLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		resource := domain.Resource{
			Title:       strings.TrimSpace(m[1]),
			URL:         strings.TrimSpace(m[2]),
			Description: strings.TrimSpace(m[3]),
		}
		if resource.Validate() != nil {
			continue
		}
		resources = append(resources, resource)
	}
	return resources
}

// ParseFlashcards splits normalized text into "Term: Definition" lines.
// The first colon on a line separates term from definition; any further
// colons belong to the definition. Lines without a colon, or with an empty
// term or definition, are dropped. Never fails; empty input yields nil.
func ParseFlashcards(text string) []domain.Flashcard {
	var cards []domain.Flashcard
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		term, definition, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		card := domain.Flashcard{
			Term:       strings.TrimSpace(term),
			Definition: strings.TrimSpace(definition),
		}
		if card.Validate() != nil {
			continue
		}
		cards = append(cards, card)
	}
	return cards
}
