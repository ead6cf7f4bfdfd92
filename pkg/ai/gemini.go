package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	apperrors "github.com/ross7390/meeting-maestro/errors"
	"github.com/ross7390/meeting-maestro/pkg/config"
)

// GeminiClient is a minimal client for the generative-language API used for
// transcript analysis.
type GeminiClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewGeminiClient creates a client from the provided config.
func NewGeminiClient(cfg *config.GeminiConfig) *GeminiClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &GeminiClient{
		apiKey:   cfg.APIKey,
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// GenerateRequest is the shape for generateContent requests
type GenerateRequest struct {
	Contents []Content `json:"contents"`
}

// Content is one prompt entry
type Content struct {
	Parts []Part `json:"parts"`
}

// Part is a single text fragment
type Part struct {
	Text string `json:"text"`
}

// GenerateResponse is a minimal response shape
type GenerateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []Part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateContent sends the prompt and returns the first candidate's text.
// Exactly one request is issued; there is no retry.
func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	reqBody := GenerateRequest{
		Contents: []Content{{Parts: []Part{{Text: prompt}}}},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.endpoint+"?key="+g.apiKey, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var gr GenerateResponse
	if resp.StatusCode >= 400 {
		// The API carries a message in the error body on failure.
		_ = json.NewDecoder(resp.Body).Decode(&gr)
		return "", apperrors.ErrAPIFailed(resp.StatusCode, gr.Error.Message)
	}

	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", apperrors.ErrUnparsableResponse(err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", apperrors.ErrEmptyResponse()
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}
