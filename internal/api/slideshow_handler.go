// Package api provides HTTP handlers for the API.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/lunalearn/luna-api/internal/api/shared"
	"github.com/lunalearn/luna-api/internal/domain"
	"github.com/lunalearn/luna-api/internal/present"
	"github.com/lunalearn/luna-api/internal/service"
)

// defaultResourceWait bounds how long a request stays open for the reading
// list follow-up before the slideshow ships without it.
const defaultResourceWait = 2 * time.Second

// noticeNothingGenerated is returned with an empty payload when generation
// succeeded but produced no usable content.
const noticeNothingGenerated = "Nothing came back for that topic. Try rephrasing it."

// SlideshowHandler handles slideshow-related HTTP requests
type SlideshowHandler struct {
	slideshowService *service.SlideshowService
	logger           *slog.Logger
	clock            present.Clock
	resourceWait     time.Duration
}

// NewSlideshowHandler creates a new SlideshowHandler
func NewSlideshowHandler(slideshowService *service.SlideshowService, logger *slog.Logger) *SlideshowHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SlideshowHandler")
	}

	return &SlideshowHandler{
		slideshowService: slideshowService,
		logger:           logger.With(slog.String("component", "slideshow_handler")),
		clock:            present.SystemClock{},
		resourceWait:     defaultResourceWait,
	}
}

// CreateSlideshow handles POST /api/slideshows requests.
// The full slide list is returned at once with per-slide reveal offsets;
// clients that want server-paced reveal use the stream endpoint instead.
func (h *SlideshowHandler) CreateSlideshow(w http.ResponseWriter, r *http.Request) {
	var req CreateSlideshowRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: topic is required")
		return
	}

	result, err := h.slideshowService.Generate(r.Context(), req.Topic)
	if errors.Is(err, service.ErrNothingGenerated) {
		shared.RespondWithJSON(w, r, http.StatusOK, SlideshowResponse{
			Topic:  req.Topic,
			Slides: []SlideResponse{},
			Notice: noticeNothingGenerated,
		})
		return
	}
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := SlideshowResponse{
		Topic:  result.Topic,
		Slides: slidesToResponse(result.Slides, result.RevealDelay),
	}

	// Hold the request open briefly for the reading list. Past the window
	// the slideshow ships without it; the section is optional.
	select {
	case resources, ok := <-result.Resources:
		if ok {
			response.Resources = resourcesToResponse(resources)
		}
	case <-time.After(h.resourceWait):
	case <-r.Context().Done():
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// StreamSlideshow handles GET /api/slideshows/stream requests.
// Slides are emitted as SSE events at their reveal offsets, followed by a
// resources event when the follow-up call delivers in time, then done.
func (h *SlideshowHandler) StreamSlideshow(w http.ResponseWriter, r *http.Request) {
	topic := strings.TrimSpace(r.URL.Query().Get("topic"))
	if topic == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "topic query parameter is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Streaming is not supported")
		return
	}

	result, err := h.slideshowService.Generate(r.Context(), topic)
	if err != nil && !errors.Is(err, service.ErrNothingGenerated) {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	if errors.Is(err, service.ErrNothingGenerated) {
		h.writeEvent(w, flusher, "notice", noticeNothingGenerated)
		h.writeEvent(w, flusher, "done", struct{}{})
		return
	}

	delayMS := int64(result.RevealDelay / time.Millisecond)

	// Buffered to the full batch so timer callbacks never block on a slow
	// client write.
	events := make(chan SlideResponse, len(result.Slides))
	handle := present.Schedule(h.clock, result.Slides, result.RevealDelay, func(i int, slide domain.Slide) {
		events <- SlideResponse{
			Text:          slide.Text,
			Index:         slide.Index,
			RevealAfterMS: delayMS * int64(i),
		}
	})
	defer handle.Cancel()

	ctx := r.Context()
	for delivered := 0; delivered < len(result.Slides); {
		select {
		case <-ctx.Done():
			return
		case slide := <-events:
			h.writeEvent(w, flusher, "slide", slide)
			delivered++
		}
	}

	select {
	case resources, ok := <-result.Resources:
		if ok {
			h.writeEvent(w, flusher, "resources", resourcesToResponse(resources))
		}
	case <-time.After(h.resourceWait):
	case <-ctx.Done():
		return
	}

	h.writeEvent(w, flusher, "done", struct{}{})
}

// writeEvent emits one SSE event and flushes it to the client.
func (h *SlideshowHandler) writeEvent(w io.Writer, flusher http.Flusher, event string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		h.logger.Error("failed to marshal SSE event", "event", event, "error", err)
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)
	flusher.Flush()
}

// slidesToResponse converts domain slides to response DTOs with reveal
// offsets relative to batch start.
func slidesToResponse(slides []domain.Slide, revealDelay time.Duration) []SlideResponse {
	delayMS := int64(revealDelay / time.Millisecond)
	out := make([]SlideResponse, len(slides))
	for i, slide := range slides {
		out[i] = SlideResponse{
			Text:          slide.Text,
			Index:         slide.Index,
			RevealAfterMS: delayMS * int64(slide.Index),
		}
	}
	return out
}

// resourcesToResponse converts domain resources to response DTOs.
func resourcesToResponse(resources []domain.Resource) []ResourceResponse {
	out := make([]ResourceResponse, len(resources))
	for i, res := range resources {
		out[i] = ResourceResponse{
			Title:       res.Title,
			URL:         res.URL,
			Description: res.Description,
		}
	}
	return out
}
