// Package gemini is a thin client for the Google Generative Language API.
// It sends text and text+image prompts and returns the model's raw text;
// interpreting that text is the caller's job.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	DefaultModel    = "gemini-2.0-flash"
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"
)

type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inline_data,omitempty"`
}

// InlineData carries a base64-encoded media attachment.
type InlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type Content struct {
	Parts []*Part `json:"parts"`
	Role  string  `json:"role,omitempty"`
}

type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateRequest struct {
	Contents       []*Content      `json:"contents"`
	SafetySettings []SafetySetting `json:"safetySettings,omitempty"`
}

type candidate struct {
	Content *Content `json:"content"`
}

type generateResponse struct {
	Candidates []*candidate `json:"candidates"`
}

// StatusError is a non-200 reply from the API. The status code is what the
// analysis workflow maps onto its error-code taxonomy.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status error, got status %d. with response body %s", e.Code, e.Body)
}

// PermissiveSafetySettings disables all content-safety blocking. Chart images
// are the user's own data, so no category is blocked.
func PermissiveSafetySettings() []SafetySetting {
	categories := []string{
		"HARM_CATEGORY_HARASSMENT",
		"HARM_CATEGORY_HATE_SPEECH",
		"HARM_CATEGORY_SEXUALLY_EXPLICIT",
		"HARM_CATEGORY_DANGEROUS_CONTENT",
	}
	settings := make([]SafetySetting, 0, len(categories))
	for _, c := range categories {
		settings = append(settings, SafetySetting{Category: c, Threshold: "BLOCK_NONE"})
	}
	return settings
}

type Client struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewClient builds a client. Model and endpoint fall back to defaults when
// empty. An empty apiKey is allowed; calls will fail with 401/403 upstream,
// callers that care check the key before calling.
func NewClient(apiKey, model, endpoint string) *Client {
	if model == "" {
		model = DefaultModel
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		apiKey:   apiKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

// GenerateText sends a text-only prompt and returns the model's text reply.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, []*Part{{Text: prompt}}, nil)
}

// GenerateVision sends a text prompt together with an inline image.
func (c *Client) GenerateVision(
	ctx context.Context,
	prompt string,
	image []byte,
	mimeType string,
	safety []SafetySetting,
) (string, error) {
	parts := []*Part{
		{Text: prompt},
		{InlineData: &InlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(image),
		}},
	}
	return c.generate(ctx, parts, safety)
}

func (c *Client) generate(ctx context.Context, parts []*Part, safety []SafetySetting) (string, error) {
	payload := generateRequest{
		Contents:       []*Content{{Parts: parts, Role: "user"}},
		SafetySettings: safety,
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s:generateContent", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", &StatusError{Code: res.StatusCode, Body: string(resBody)}
	}

	var geminiRes generateResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", err
	}
	if len(geminiRes.Candidates) == 0 ||
		geminiRes.Candidates[0].Content == nil ||
		len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}

// StripCodeFences removes markdown code-fence markers the model sometimes
// wraps around JSON output.
func StripCodeFences(s string) string {
	b := bytes.TrimSpace([]byte(s))
	b = bytes.TrimPrefix(b, []byte("```json"))
	b = bytes.TrimPrefix(b, []byte("```"))
	b = bytes.TrimSuffix(b, []byte("```"))
	return string(bytes.TrimSpace(b))
}
