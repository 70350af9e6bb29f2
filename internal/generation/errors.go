package generation

import "errors"

// Common errors returned by generator backends
var (
	// ErrTransport is returned when the call to the relay or LLM provider
	// fails or comes back with a non-success status.
	ErrTransport = errors.New("content generation request failed")

	// ErrEmptyResponse is returned when the provider answers successfully
	// but produces no text at all.
	ErrEmptyResponse = errors.New("language model returned no text")

	// ErrContentBlocked is returned when the provider blocks the content
	// due to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for temporary errors that might
	// resolve on retry.
	ErrTransientFailure = errors.New("transient error during content generation")

	// ErrInvalidConfig is returned when a generator configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
