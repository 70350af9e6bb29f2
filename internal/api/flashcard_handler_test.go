package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunalearn/luna-api/internal/generation"
)

func TestCreateFlashcards(t *testing.T) {
	t.Parallel()

	t.Run("returns the parsed deck", func(t *testing.T) {
		t.Parallel()

		gen := &stubGenerator{responses: map[string]string{
			"flashcards": "Photosynthesis: How plants turn light into food.\nChlorophyll: The pigment that captures light.",
		}}
		router := newTestRouter(t, gen, &manualClock{}, testContentConfig())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/flashcards", strings.NewReader(`{"topic": "plants"}`))
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp FlashcardsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, "plants", resp.Topic)
		require.Len(t, resp.Cards, 2)
		assert.Equal(t, "Photosynthesis", resp.Cards[0].Term)
		assert.Equal(t, "How plants turn light into food.", resp.Cards[0].Definition)
	})

	t.Run("no usable lines returns an empty deck", func(t *testing.T) {
		t.Parallel()

		gen := &stubGenerator{responses: map[string]string{
			"flashcards": "nothing here resembles a card",
		}}
		router := newTestRouter(t, gen, &manualClock{}, testContentConfig())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/flashcards", strings.NewReader(`{"topic": "plants"}`))
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp FlashcardsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Cards)
	})

	t.Run("generation failure maps to 502", func(t *testing.T) {
		t.Parallel()

		gen := &stubGenerator{errs: map[string]error{"flashcards": generation.ErrTransport}}
		router := newTestRouter(t, gen, &manualClock{}, testContentConfig())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/flashcards", strings.NewReader(`{"topic": "plants"}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("missing topic is rejected", func(t *testing.T) {
		t.Parallel()

		gen := &stubGenerator{}
		router := newTestRouter(t, gen, &manualClock{}, testContentConfig())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/flashcards", strings.NewReader(`{}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
