package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/ewilliams-labs/moodsnap/internal/core/domain"
	"github.com/ewilliams-labs/moodsnap/internal/core/ports"
)

const DefaultModel = "gemini-2.5-flash"

// Client generates mood output with the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

var _ ports.MoodGenerator = (*Client)(nil)

func NewClient(ctx context.Context, apiKey, model string, httpClient *http.Client) (*Client, error) {
	genClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	return &Client{client: genClient, model: model}, nil
}

func (c *Client) Generate(ctx context.Context, p domain.Prompt) (string, error) {
	contents, err := buildContents(p)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType:  "application/json",
		SystemInstruction: genai.NewContentFromText(p.System, genai.RoleUser),
		ResponseSchema:    toSchema(p.Schema),
	}

	res, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini: %w: %w", domain.ErrUpstreamUnavailable, err)
	}

	// Blocked prompts come back without candidates or parts.
	out := responseText(res)
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("gemini: %w", domain.ErrEmptyOutput)
	}
	return out, nil
}

func buildContents(p domain.Prompt) ([]*genai.Content, error) {
	parts := []*genai.Part{genai.NewPartFromText(p.Text)}
	if p.HasImage() {
		img, err := domain.ParseDataURI(p.ImageDataURI)
		if err != nil {
			return nil, err
		}
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.MIMEType))
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, nil
}

func toSchema(s domain.Schema) *genai.Schema {
	props := make(map[string]*genai.Schema, len(s.Fields))
	for _, f := range s.Fields {
		props[f.Name] = &genai.Schema{
			Type:        genai.TypeString,
			Description: f.Description,
			Enum:        append([]string(nil), f.Enum...),
		}
	}
	names := s.FieldNames()
	return &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       props,
		Required:         names,
		PropertyOrdering: names,
	}
}

func responseText(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return b.String()
}
