package share

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/ShashwatM3/justchefit-pwa/internal/httpjson"
)

const formMemoryLimit = 1 << 20

// Handler receives web share target payloads from the OS share sheet.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Receive handles the share target POST. It logs the payload and redirects
// to the home view with the present fields re-encoded as query parameters.
// Nothing is stored or validated here.
func (h *Handler) Receive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(formMemoryLimit); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		slog.ErrorContext(ctx, "share: parsing form", "error", err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	title := r.FormValue("title")
	text := r.FormValue("text")
	sharedURL := r.FormValue("url")

	slog.InfoContext(ctx, "share: received share", "title", title, "text", text, "url", sharedURL)

	params := url.Values{}
	if title != "" {
		params.Set("title", title)
	}
	if text != "" {
		params.Set("text", text)
	}
	if sharedURL != "" {
		params.Set("url", sharedURL)
	}

	http.Redirect(w, r, "/?"+params.Encode(), http.StatusSeeOther)
}

type receivedPayload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

type echoResponse struct {
	Message  string          `json:"message"`
	Received receivedPayload `json:"received"`
}

// Echo handles GET requests to the share endpoint. It only exists for
// manually testing the share target registration.
func (h *Handler) Echo(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	httpjson.Write(w, http.StatusOK, echoResponse{
		Message: "Share endpoint - use POST from share target",
		Received: receivedPayload{
			Title: q.Get("title"),
			Text:  q.Get("text"),
			URL:   q.Get("url"),
		},
	})
}
