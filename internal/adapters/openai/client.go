// Package openai implements the mood generator against any OpenAI-compatible
// chat completions endpoint using strict JSON schema response formats.
package openai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openaigo "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"
	"github.com/openai/openai-go/v3/shared"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/ewilliams-labs/moodsnap/internal/core/domain"
	"github.com/ewilliams-labs/moodsnap/internal/core/ports"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
	defaultTimeout = 60 * time.Second
)

// Config holds connection settings. OAuth is optional and, when set,
// replaces the static API key with client-credentials tokens.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	OAuth   *clientcredentials.Config
}

// Client is the OpenAI-compatible MoodGenerator.
type Client struct {
	client openaigo.Client
	model  string
}

var _ ports.MoodGenerator = (*Client)(nil)

// NewClient builds a client. The SDK's own retries are disabled: a failed
// generation is surfaced to the caller at once.
func NewClient(ctx context.Context, cfg Config) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := []option.RequestOption{
		option.WithBaseURL(baseURL + "/"),
		option.WithHTTPClient(newHTTPClient(ctx, cfg.OAuth, timeout)),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(timeout),
	}
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		opts = append(opts, option.WithAPIKey(key))
	}

	return &Client{
		client: openaigo.NewClient(opts...),
		model:  model,
	}
}

func newHTTPClient(ctx context.Context, oauth *clientcredentials.Config, timeout time.Duration) *http.Client {
	base := &http.Client{Timeout: timeout}
	if oauth == nil {
		return base
	}
	// The token endpoint is called with the same timeout-bound client.
	hc := oauth.Client(context.WithValue(ctx, oauth2.HTTPClient, base))
	hc.Timeout = timeout
	return hc
}

// Generate sends the prompt as a system plus user message and returns the
// first choice's content.
func (c *Client) Generate(ctx context.Context, p domain.Prompt) (string, error) {
	params := openaigo.ChatCompletionNewParams{
		Model: openaigo.ChatModel(c.model),
		Messages: []openaigo.ChatCompletionMessageParamUnion{
			openaigo.SystemMessage(p.System),
			userMessage(p),
		},
		ResponseFormat: openaigo.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   p.Schema.Name,
					Strict: param.NewOpt(true),
					Schema: p.Schema.JSONSchema(),
				},
			},
		},
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai: %w: %w", domain.ErrUpstreamUnavailable, err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: %w: no choices", domain.ErrEmptyOutput)
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		if refusal := resp.Choices[0].Message.Refusal; refusal != "" {
			return "", fmt.Errorf("openai: %w: refused: %s", domain.ErrEmptyOutput, refusal)
		}
		return "", fmt.Errorf("openai: %w", domain.ErrEmptyOutput)
	}
	return content, nil
}

func userMessage(p domain.Prompt) openaigo.ChatCompletionMessageParamUnion {
	if !p.HasImage() {
		return openaigo.UserMessage(p.Text)
	}
	parts := []openaigo.ChatCompletionContentPartUnionParam{
		openaigo.TextContentPart(p.Text),
		openaigo.ImageContentPart(openaigo.ChatCompletionContentPartImageImageURLParam{
			URL: p.ImageDataURI,
		}),
	}
	return openaigo.UserMessage(parts)
}
