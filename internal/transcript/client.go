package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// UpstreamError is a non-success response from the transcript service.
type UpstreamError struct {
	// StatusCode is the HTTP status returned by the service.
	StatusCode int

	// Message is the error message from the service, or a generic fallback
	// when the service did not provide one.
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("transcript: upstream status %d: %s", e.StatusCode, e.Message)
}

// Client fetches video transcripts from the extraction service.
type Client struct {
	base       string
	httpClient *http.Client
}

// NewClient returns a Client for the transcript service at base.
func NewClient(base string, timeout time.Duration) *Client {
	return &Client{
		base:       base,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type transcriptResponse struct {
	Transcript string `json:"transcript"`
	Error      string `json:"error"`
}

// Fetch returns the transcript of the video at videoURL.
func (c *Client) Fetch(ctx context.Context, videoURL string) (string, error) {
	reqURL := c.base + "/transcript?url=" + url.QueryEscape(videoURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("transcript: creating request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcript: fetching transcript: %w", err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	var body transcriptResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		if res.StatusCode != http.StatusOK {
			return "", &UpstreamError{StatusCode: res.StatusCode, Message: "Failed to fetch transcript"}
		}
		return "", fmt.Errorf("transcript: decoding response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		msg := body.Error
		if msg == "" {
			msg = "Failed to fetch transcript"
		}
		return "", &UpstreamError{StatusCode: res.StatusCode, Message: msg}
	}

	return body.Transcript, nil
}
