package api

import (
	"errors"
	"net/http"

	"github.com/lunalearn/luna-api/internal/content"
	"github.com/lunalearn/luna-api/internal/domain"
	"github.com/lunalearn/luna-api/internal/generation"
	"github.com/lunalearn/luna-api/internal/quiz"
	"github.com/lunalearn/luna-api/internal/service"
)

// MapErrorToStatusCode determines the appropriate HTTP status code for an
// error. Client mistakes map to 4xx; failures of the model or its output
// map to 502, since the server itself is healthy and a retry may succeed.
func MapErrorToStatusCode(err error) int {
	var parseErr *content.ParseError

	switch {
	// Quiz composition failures come from generated content, not client
	// input, so they outrank the generic validation mapping.
	case errors.Is(err, domain.ErrQuizTooShort),
		errors.Is(err, domain.ErrQuizQuestionEmpty),
		errors.Is(err, domain.ErrQuizOptionsEmpty),
		errors.Is(err, domain.ErrQuizOptionEmpty),
		errors.Is(err, domain.ErrQuizAnswerEmpty):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, quiz.ErrOptionOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, quiz.ErrAnswerLocked),
		errors.Is(err, quiz.ErrQuizCompleted),
		errors.Is(err, quiz.ErrNotLocked):
		return http.StatusConflict
	case errors.Is(err, generation.ErrInvalidConfig):
		return http.StatusInternalServerError
	case errors.Is(err, generation.ErrTransport),
		errors.Is(err, generation.ErrTransientFailure),
		errors.Is(err, generation.ErrEmptyResponse),
		errors.Is(err, generation.ErrContentBlocked):
		return http.StatusBadGateway
	case errors.As(err, &parseErr),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, domain.ErrSlideshowMalformed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-safe message for an error. Internal
// details (prompts, model output snippets, transport errors) stay in the
// logs and never reach the client.
func GetSafeErrorMessage(err error) string {
	var parseErr *content.ParseError

	switch {
	case errors.Is(err, domain.ErrQuizTooShort),
		errors.Is(err, domain.ErrQuizQuestionEmpty),
		errors.Is(err, domain.ErrQuizOptionsEmpty),
		errors.Is(err, domain.ErrQuizOptionEmpty),
		errors.Is(err, domain.ErrQuizAnswerEmpty):
		return "The generated content came back malformed. Please try again."
	case errors.Is(err, domain.ErrValidation):
		return "Invalid request"
	case errors.Is(err, quiz.ErrOptionOutOfRange):
		return "Selected option is out of range"
	case errors.Is(err, service.ErrSessionNotFound):
		return "Quiz session not found or expired"
	case errors.Is(err, quiz.ErrAnswerLocked):
		return "An answer has already been submitted for this question"
	case errors.Is(err, quiz.ErrQuizCompleted):
		return "This quiz is already complete"
	case errors.Is(err, quiz.ErrNotLocked):
		return "No answer has been submitted for this question"
	case errors.Is(err, generation.ErrContentBlocked):
		return "The topic was rejected by the content filter. Try rephrasing it."
	case errors.Is(err, generation.ErrTransport),
		errors.Is(err, generation.ErrTransientFailure),
		errors.Is(err, generation.ErrEmptyResponse):
		return "The lesson generator is unavailable right now. Please try again."
	case errors.As(err, &parseErr),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, domain.ErrSlideshowMalformed):
		return "The generated content came back malformed. Please try again."
	default:
		return "An unexpected error occurred"
	}
}
