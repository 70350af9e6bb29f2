package domain

import "errors"

// Flashcard-specific validation errors
var (
	// ErrFlashcardTermEmpty is returned when a flashcard has no term.
	ErrFlashcardTermEmpty = errors.New("flashcard term cannot be empty")

	// ErrFlashcardDefinitionEmpty is returned when a flashcard has no definition.
	ErrFlashcardDefinitionEmpty = errors.New("flashcard definition cannot be empty")
)

// Flashcard is a single term/definition pair parsed from the generator's
// newline-delimited "Term: Definition" output. Lifecycle matches Resource:
// produced per request, displayed, discarded.
type Flashcard struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Validate checks if the Flashcard has both sides populated.
func (f Flashcard) Validate() error {
	if f.Term == "" {
		return ErrFlashcardTermEmpty
	}
	if f.Definition == "" {
		return ErrFlashcardDefinitionEmpty
	}
	return nil
}
