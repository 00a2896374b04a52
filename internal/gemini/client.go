package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel  = "gemini-pro"
)

// Fixed sampling parameters. These are static service configuration, not
// tunable per request.
const (
	temperature     = 0.3
	topP            = 0.3
	topK            = 1
	maxOutputTokens = 500
)

// Placeholder texts for well-formed but empty model responses (e.g. safety
// filtering). These ship as 200 payloads, not errors.
const (
	NoCandidatesText   = "No response candidates found."
	NoContentPartsText = "No valid content generated."
)

// Client is a Gemini API client for persona text generation.
type Client struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new Gemini API client.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}

	return &Client{
		apiKey: apiKey,
		model:  model,
		apiURL: defaultAPIURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Part is a single piece of generated candidate content.
type Part struct {
	Text string `json:"text"`
}

// OutcomeKind distinguishes usable content from well-formed empty responses.
type OutcomeKind int

const (
	OutcomeContent OutcomeKind = iota
	OutcomeNoCandidates
	OutcomeNoContentParts
)

// Outcome is the unwrapped result of a generation call. The degraded kinds
// are not errors: the provider answered, it just produced nothing usable.
type Outcome struct {
	Kind OutcomeKind
	Part Part
}

// PlaceholderText returns the message for a degraded outcome, or "" when
// the outcome carries content.
func (o Outcome) PlaceholderText() string {
	switch o.Kind {
	case OutcomeNoCandidates:
		return NoCandidatesText
	case OutcomeNoContentParts:
		return NoContentPartsText
	}
	return ""
}

// generateRequest represents the API request structure
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []Part `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// generateResponse represents the API response structure
type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate sends the templated prompt to the model and unwraps the first
// content part of the first candidate.
func (c *Client) Generate(ctx context.Context, prompt string) (Outcome, error) {
	req := generateRequest{
		Contents: []content{
			{Parts: []Part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     temperature,
			TopP:            topP,
			TopK:            topK,
			MaxOutputTokens: maxOutputTokens,
		},
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.apiURL, c.model, url.QueryEscape(c.apiKey))
	httpReq, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Outcome{}, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var apiResp generateResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return Outcome{}, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if apiResp.Error != nil {
		return Outcome{}, fmt.Errorf("API error: %s - %s", apiResp.Error.Status, apiResp.Error.Message)
	}

	if len(apiResp.Candidates) == 0 {
		return Outcome{Kind: OutcomeNoCandidates}, nil
	}

	parts := apiResp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return Outcome{Kind: OutcomeNoContentParts}, nil
	}

	return Outcome{Kind: OutcomeContent, Part: parts[0]}, nil
}

// IsConfigured returns true if the client has an API key
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}
