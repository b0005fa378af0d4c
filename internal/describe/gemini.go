package describe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	// DefaultModel is the generative model used for captions.
	DefaultModel = "gemini-2.0-flash"

	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// APIKeyEnv is the environment variable holding the Gemini API key.
	APIKeyEnv = "GEMINI_API_KEY"
)

// GeminiClient calls the Google Generative Language REST API to produce
// cell captions.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// GeminiOption customizes a GeminiClient.
type GeminiOption func(*GeminiClient)

// WithModel overrides the default model name.
func WithModel(model string) GeminiOption {
	return func(c *GeminiClient) { c.model = model }
}

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(url string) GeminiOption {
	return func(c *GeminiClient) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) GeminiOption {
	return func(c *GeminiClient) { c.client = client }
}

// NewGeminiClient creates a caption client with the given API key.
func NewGeminiClient(apiKey string, opts ...GeminiOption) *GeminiClient {
	c := &GeminiClient{
		apiKey:  apiKey,
		model:   DefaultModel,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FromEnv creates a client from the GEMINI_API_KEY environment variable.
// Returns ok=false if the key is not set; callers treat that as "capability
// not configured" and run without captions.
func FromEnv() (*GeminiClient, bool) {
	key := os.Getenv(APIKeyEnv)
	if key == "" {
		return nil, false
	}
	return NewGeminiClient(key), true
}

// Prompt builds the caption prompt for the given request.
func Prompt(req Request) string {
	return fmt.Sprintf(
		"Generate a very short, quirky, one-sentence description for a petri-dish cell that is %s and has a mass of approximately %d. Keep it under 15 words.",
		req.Color, int(req.Mass),
	)
}

// generateContent request/response wire types, reduced to the fields we use.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Describe requests a caption for the cell.
func (c *GeminiClient) Describe(ctx context.Context, req Request) (string, error) {
	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: Prompt(req)}}}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("describe: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("describe: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("describe: call caption service: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("describe: read response: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("describe: parse response: %w", err)
	}

	if parsed.Error != nil {
		return "", fmt.Errorf("describe: service error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("describe: unexpected status %d", resp.StatusCode)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("describe: empty response")
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	text = strings.TrimSpace(strings.ReplaceAll(text, `"`, ""))
	if text == "" {
		return "", fmt.Errorf("describe: empty caption")
	}
	return text, nil
}
