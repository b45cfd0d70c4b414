// Package ollama provides an adapter for the Ollama LLM service.
// It sends mood prompts to a local Ollama instance, constraining the answer
// with the prompt's JSON schema, and returns the raw content for validation.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ewilliams-labs/moodsnap/internal/core/domain"
	"github.com/ewilliams-labs/moodsnap/internal/core/ports"
)

const (
	defaultBaseURL = "http://localhost:11434"
	defaultModel   = "gemma3:4b"
	defaultTimeout = 60 * time.Second
)

type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

var _ ports.MoodGenerator = (*Client)(nil)

type chatMessage struct {
	Role    string   `json:"role"`
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"`
}

type chatRequest struct {
	Model    string          `json:"model"`
	Messages []chatMessage   `json:"messages"`
	Stream   bool            `json:"stream"`
	Format   json.RawMessage `json:"format,omitempty"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
	Error   string      `json:"error,omitempty"`
}

func NewClient(baseURL, model string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Generate(ctx context.Context, p domain.Prompt) (string, error) {
	user := chatMessage{Role: "user", Content: p.Text}
	if p.HasImage() {
		img, err := domain.ParseDataURI(p.ImageDataURI)
		if err != nil {
			return "", fmt.Errorf("ollama: %w", err)
		}
		user.Images = []string{img.Base64()}
	}

	format, err := json.Marshal(p.Schema.JSONSchema())
	if err != nil {
		return "", fmt.Errorf("ollama: marshal schema: %w", err)
	}

	payload := chatRequest{
		Model:  c.model,
		Stream: false,
		Format: format,
		Messages: []chatMessage{
			{Role: "system", Content: p.System},
			user,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("ollama: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ollama: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama: %w: %w", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("ollama: %w: unexpected status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("ollama: %w: decode response: %w", domain.ErrUpstreamUnavailable, err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("ollama: %w: %s", domain.ErrUpstreamUnavailable, parsed.Error)
	}

	if strings.TrimSpace(parsed.Message.Content) == "" {
		return "", fmt.Errorf("ollama: %w", domain.ErrEmptyOutput)
	}

	return parsed.Message.Content, nil
}
