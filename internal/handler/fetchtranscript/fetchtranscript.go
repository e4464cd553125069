package fetchtranscript

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ShashwatM3/justchefit-pwa/internal/chefdb"
	"github.com/ShashwatM3/justchefit-pwa/internal/httpjson"
	"github.com/ShashwatM3/justchefit-pwa/internal/llm"
	"github.com/ShashwatM3/justchefit-pwa/internal/transcript"
)

// transcriptFetcher fetches the transcript for a video URL.
type transcriptFetcher interface {
	Fetch(ctx context.Context, videoURL string) (string, error)
}

// recipeExtractor synthesizes a structured recipe from a transcript.
type recipeExtractor interface {
	ExtractRecipe(ctx context.Context, transcript string) (*chefdb.RecipeObject, error)
}

// NewHandler returns a Handler.
func NewHandler(transcripts transcriptFetcher, extractor recipeExtractor) *Handler {
	return &Handler{
		transcripts: transcripts,
		extractor:   extractor,
	}
}

// Handler converts a shared video URL into a structured recipe by fetching
// the video transcript and running recipe extraction on it.
type Handler struct {
	transcripts transcriptFetcher
	extractor   recipeExtractor
}

type fetchRequest struct {
	URL string `json:"url"`
}

type fetchResponse struct {
	Transcript   string               `json:"transcript"`
	RecipeObject *chefdb.RecipeObject `json:"recipe_object"`
	Error        *string              `json:"error"`
}

// FetchTranscript handles POST /api/fetch-transcript-insta.
func (h *Handler) FetchTranscript(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req fetchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.URL == "" {
		httpjson.Error(w, http.StatusBadRequest, "URL is required")
		return
	}

	text, err := h.transcripts.Fetch(ctx, req.URL)
	if err != nil {
		var upstream *transcript.UpstreamError
		if errors.As(err, &upstream) {
			slog.ErrorContext(ctx, "fetchtranscript: transcript service error", "status", upstream.StatusCode, "message", upstream.Message)
			httpjson.Error(w, upstream.StatusCode, upstream.Message)
			return
		}
		slog.ErrorContext(ctx, "fetchtranscript: fetching transcript", "error", err)
		httpjson.Error(w, http.StatusInternalServerError, "Server error: "+err.Error())
		return
	}

	recipe, err := h.extractor.ExtractRecipe(ctx, text)
	if err != nil {
		var schemaErr *llm.SchemaError
		if errors.As(err, &schemaErr) {
			slog.ErrorContext(ctx, "fetchtranscript: model output failed validation", "error", err)
			httpjson.ErrorKind(w, http.StatusBadGateway, "Model output failed schema validation", "schema_validation")
			return
		}
		slog.ErrorContext(ctx, "fetchtranscript: extracting recipe", "error", err)
		httpjson.Error(w, http.StatusInternalServerError, "Server error: "+err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, fetchResponse{
		Transcript:   text,
		RecipeObject: recipe,
	})
}
