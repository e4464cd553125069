package fetchtranscript

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShashwatM3/justchefit-pwa/internal/chefdb"
	"github.com/ShashwatM3/justchefit-pwa/internal/httpjson"
	"github.com/ShashwatM3/justchefit-pwa/internal/llm"
	"github.com/ShashwatM3/justchefit-pwa/internal/transcript"
)

type fakeFetcher struct {
	transcript string
	err        error

	calls int
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.transcript, f.err
}

type fakeExtractor struct {
	recipe *chefdb.RecipeObject
	err    error
}

func (f *fakeExtractor) ExtractRecipe(_ context.Context, _ string) (*chefdb.RecipeObject, error) {
	return f.recipe, f.err
}

func post(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/fetch-transcript-insta", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	h.FetchTranscript(res, req)
	return res
}

func TestFetchTranscript(t *testing.T) {
	fetcher := &fakeFetcher{transcript: "Today we're making garlic fried rice. You need two cups rice, a bulb of garlic..."}
	extractor := &fakeExtractor{recipe: &chefdb.RecipeObject{
		RecipeName:    "Garlic Fried Rice",
		InitialRecipe: "Ingredients Required\n- 2 cups rice\n\nEquipment Required\n- pan\n\nRecipe (Step-by-Step Instructions)\n1. Cook the rice.",
	}}
	res := post(t, NewHandler(fetcher, extractor), `{"url": "https://instagram.com/reel/xyz"}`)

	require.Equal(t, http.StatusOK, res.Code)
	var body struct {
		Transcript   string               `json:"transcript"`
		RecipeObject *chefdb.RecipeObject `json:"recipe_object"`
		Error        *string              `json:"error"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, fetcher.transcript, body.Transcript)
	require.NotNil(t, body.RecipeObject)
	assert.Equal(t, "Garlic Fried Rice", body.RecipeObject.RecipeName)
	assert.Nil(t, body.Error)
}

func TestFetchTranscript_MissingURL(t *testing.T) {
	for _, body := range []string{`{}`, `{"url": ""}`} {
		fetcher := &fakeFetcher{}
		res := post(t, NewHandler(fetcher, &fakeExtractor{}), body)

		require.Equal(t, http.StatusBadRequest, res.Code)
		var errRes httpjson.ErrorResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &errRes))
		assert.Equal(t, "URL is required", errRes.Error)
		assert.Zero(t, fetcher.calls)
	}
}

func TestFetchTranscript_UpstreamError(t *testing.T) {
	fetcher := &fakeFetcher{err: &transcript.UpstreamError{
		StatusCode: http.StatusServiceUnavailable,
		Message:    "no captions available",
	}}
	res := post(t, NewHandler(fetcher, &fakeExtractor{}), `{"url": "https://instagram.com/reel/xyz"}`)

	require.Equal(t, http.StatusServiceUnavailable, res.Code)
	var errRes httpjson.ErrorResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &errRes))
	assert.Equal(t, "no captions available", errRes.Error)
}

func TestFetchTranscript_SchemaValidation(t *testing.T) {
	extractor := &fakeExtractor{err: &llm.SchemaError{Output: "not json"}}
	res := post(t, NewHandler(&fakeFetcher{transcript: "some cooking"}, extractor), `{"url": "https://instagram.com/reel/xyz"}`)

	require.Equal(t, http.StatusBadGateway, res.Code)
	var errRes httpjson.ErrorResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &errRes))
	assert.Equal(t, "schema_validation", errRes.Kind)
}

func TestFetchTranscript_ExtractorError(t *testing.T) {
	extractor := &fakeExtractor{err: context.DeadlineExceeded}
	res := post(t, NewHandler(&fakeFetcher{transcript: "some cooking"}, extractor), `{"url": "https://instagram.com/reel/xyz"}`)

	require.Equal(t, http.StatusInternalServerError, res.Code)
	var errRes httpjson.ErrorResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &errRes))
	assert.Contains(t, errRes.Error, "Server error: ")
	assert.Empty(t, errRes.Kind)
}
