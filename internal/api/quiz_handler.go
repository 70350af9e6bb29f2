package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lunalearn/luna-api/internal/api/shared"
	"github.com/lunalearn/luna-api/internal/domain"
	"github.com/lunalearn/luna-api/internal/quiz"
	"github.com/lunalearn/luna-api/internal/service"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	quizService *service.QuizService
	logger      *slog.Logger
}

// NewQuizHandler creates a new QuizHandler
func NewQuizHandler(quizService *service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for QuizHandler")
	}

	return &QuizHandler{
		quizService: quizService,
		logger:      logger.With(slog.String("component", "quiz_handler")),
	}
}

// StartQuiz handles POST /api/quizzes requests.
// An empty body is accepted; category and grade fall back to defaults.
func (h *QuizHandler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	var req CreateQuizRequest
	if r.ContentLength > 0 {
		if err := shared.DecodeJSON(r, &req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
			return
		}
		if err := shared.ValidateRequest(req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
			return
		}
	}

	category := req.Category
	if category == "" {
		category = req.Topic
	}

	id, session, err := h.quizService.Start(r.Context(), service.QuizParams{
		Category: category,
		Grade:    req.Grade,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, sessionToResponse(id, session))
}

// GetQuiz handles GET /api/quizzes/{id} requests.
// It returns the session's current question, or the final score once
// completed.
func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.quizService.Get(id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(id, session))
}

// SubmitAnswer handles POST /api/quizzes/{id}/answers requests.
// The response reflects the locked state; the session advances on its own
// after the display delay.
func (h *QuizHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req SubmitAnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: option is required")
		return
	}

	result, err := h.quizService.Answer(id, *req.Option)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	// The locked session still knows what comes next; report it so
	// clients need no follow-up read.
	session, err := h.quizService.Get(id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := AnswerResponse{
		Correct:       result.Correct,
		SelectedIndex: result.SelectedIndex,
		Score:         result.Score,
	}
	if result.CorrectIndex >= 0 {
		correctIndex := result.CorrectIndex
		response.CorrectIndex = &correctIndex
	}
	if index, question, upcoming := session.Upcoming(); upcoming {
		response.NextQuestion = questionToResponse(index, session.Len(), question)
	} else {
		response.Completed = true
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// RetryQuiz handles POST /api/quizzes/{id}/retry requests.
// A fresh question set is generated for the session's original category and
// grade, and the run restarts from question zero.
func (h *QuizHandler) RetryQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.quizService.Retry(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(id, session))
}

// sessionID extracts and parses the session ID path parameter, responding
// with 400 on malformed input.
func (h *QuizHandler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}

// sessionToResponse converts a live session to its observable DTO. The
// current question is included only while the run is open.
func sessionToResponse(id uuid.UUID, session *quiz.Session) QuizSessionResponse {
	response := QuizSessionResponse{
		SessionID: id.String(),
		State:     string(session.State()),
		Score:     session.Score(),
		Total:     session.Len(),
	}
	if index, question, open := session.Current(); open {
		response.Question = questionToResponse(index, session.Len(), question)
	}
	return response
}

// questionToResponse converts a domain question to its DTO, dropping the
// answer so it never reaches the client.
func questionToResponse(index, total int, question domain.QuizQuestion) *QuestionResponse {
	return &QuestionResponse{
		Index:    index,
		Total:    total,
		Question: question.Question,
		Options:  question.Options,
	}
}
