package generation

import "context"

// Generator defines the boundary between the content pipeline and external
// text-generation services. Implementations live under internal/platform
// (Gemini, OpenAI, HTTP relay); the pipeline treats all of them as the same
// opaque prompt-in, raw-text-out operation.
type Generator interface {
	// Generate sends a prompt to the text-generation service and returns
	// the raw response text. The response may be wrapped in code fences or
	// padded with prose; callers are expected to run it through the
	// content pipeline before use.
	//
	// Errors are classified with the sentinels in errors.go: ErrTransport
	// for failed calls, ErrEmptyResponse for successful calls that carry
	// no text, ErrContentBlocked and ErrTransientFailure for provider-
	// specific conditions.
	Generate(ctx context.Context, prompt string) (string, error)
}
