package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/lunalearn/luna-api/internal/api/shared"
	"github.com/lunalearn/luna-api/internal/domain"
	"github.com/lunalearn/luna-api/internal/service"
)

// FlashcardHandler handles flashcard-related HTTP requests
type FlashcardHandler struct {
	flashcardService *service.FlashcardService
	logger           *slog.Logger
}

// NewFlashcardHandler creates a new FlashcardHandler
func NewFlashcardHandler(flashcardService *service.FlashcardService, logger *slog.Logger) *FlashcardHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for FlashcardHandler")
	}

	return &FlashcardHandler{
		flashcardService: flashcardService,
		logger:           logger.With(slog.String("component", "flashcard_handler")),
	}
}

// CreateFlashcards handles POST /api/flashcards requests
func (h *FlashcardHandler) CreateFlashcards(w http.ResponseWriter, r *http.Request) {
	var req CreateFlashcardsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: topic is required")
		return
	}

	cards, err := h.flashcardService.Generate(r.Context(), req.Topic)
	if errors.Is(err, service.ErrNothingGenerated) {
		shared.RespondWithJSON(w, r, http.StatusOK, FlashcardsResponse{
			Topic: req.Topic,
			Cards: []FlashcardResponse{},
		})
		return
	}
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, FlashcardsResponse{
		Topic: req.Topic,
		Cards: cardsToResponse(cards),
	})
}

// cardsToResponse converts domain flashcards to response DTOs.
func cardsToResponse(cards []domain.Flashcard) []FlashcardResponse {
	out := make([]FlashcardResponse, len(cards))
	for i, card := range cards {
		out[i] = FlashcardResponse{Term: card.Term, Definition: card.Definition}
	}
	return out
}
