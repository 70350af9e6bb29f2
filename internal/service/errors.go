package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check these with errors.Is(); the API layer maps them to HTTP
// status codes. Pipeline failures keep their original classification
// (generation.ErrTransport, content.ParseError, domain.ErrValidation) and
// are wrapped, not replaced, so nothing loses its taxonomy on the way up.
var (
	// ErrSessionNotFound indicates the quiz session does not exist or has
	// expired. API layer should map this to HTTP 404 Not Found.
	ErrSessionNotFound = errors.New("quiz session not found")

	// ErrNothingGenerated indicates the generator answered successfully
	// but produced no usable content. This is a soft outcome: the caller
	// shows a fallback message instead of an error.
	ErrNothingGenerated = errors.New("generation produced no content")
)
