package share

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceive_Multipart(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("title", "Garlic Fried Rice"))
	require.NoError(t, mw.WriteField("url", "https://instagram.com/reel/xyz"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/share", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	res := httptest.NewRecorder()

	NewHandler().Receive(res, req)

	require.Equal(t, http.StatusSeeOther, res.Code)
	loc, err := url.Parse(res.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/", loc.Path)
	assert.Equal(t, "Garlic Fried Rice", loc.Query().Get("title"))
	assert.Equal(t, "https://instagram.com/reel/xyz", loc.Query().Get("url"))
	// Empty fields are omitted, not encoded as empty values.
	assert.False(t, loc.Query().Has("text"))
}

func TestReceive_URLEncoded(t *testing.T) {
	form := url.Values{"url": {"https://youtube.com/watch?v=abc"}}
	req := httptest.NewRequest(http.MethodPost, "/share", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res := httptest.NewRecorder()

	NewHandler().Receive(res, req)

	require.Equal(t, http.StatusSeeOther, res.Code)
	assert.Equal(t, "/?url="+url.QueryEscape("https://youtube.com/watch?v=abc"), res.Header().Get("Location"))
}

func TestReceive_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/share", nil)
	res := httptest.NewRecorder()

	NewHandler().Receive(res, req)

	require.Equal(t, http.StatusSeeOther, res.Code)
	assert.Equal(t, "/?", res.Header().Get("Location"))
}

func TestEcho(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/share?title=Dinner&url=https%3A%2F%2Finstagram.com%2Freel%2Fxyz", nil)
	res := httptest.NewRecorder()

	NewHandler().Echo(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	var body echoResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Equal(t, "Share endpoint - use POST from share target", body.Message)
	assert.Equal(t, "Dinner", body.Received.Title)
	assert.Equal(t, "https://instagram.com/reel/xyz", body.Received.URL)
	assert.Empty(t, body.Received.Text)
}
