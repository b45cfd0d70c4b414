package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/ewilliams-labs/moodsnap/internal/core/domain"
)

func completionBody(content string) string {
	b, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 0,
		"model":   DefaultModel,
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			},
		},
	})
	return string(b)
}

type capturedRequest struct {
	Model          string `json:"model"`
	Messages       []json.RawMessage
	ResponseFormat struct {
		Type       string `json:"type"`
		JSONSchema struct {
			Name   string         `json:"name"`
			Strict bool           `json:"strict"`
			Schema map[string]any `json:"schema"`
		} `json:"json_schema"`
	} `json:"response_format"`
}

func TestClient_Generate(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		responseBody string
		prompt       domain.Prompt
		wantErr      error
		wantParts    bool
	}{
		{
			name:         "Success",
			status:       http.StatusOK,
			responseBody: completionBody(`{"quote":"Smile now, cry later."}`),
			prompt:       domain.Prompt{System: "sys", Text: "Mood: sad", Schema: domain.QuoteSchema},
		},
		{
			name:         "Success with image",
			status:       http.StatusOK,
			responseBody: completionBody(`{"quote":"q"}`),
			prompt:       domain.Prompt{System: "sys", Text: "Photo:", ImageDataURI: "data:image/png;base64,aGVsbG8=", Schema: domain.QuoteSchema},
			wantParts:    true,
		},
		{
			name:         "Server error",
			status:       http.StatusInternalServerError,
			responseBody: `{"error":{"message":"boom","type":"server_error"}}`,
			prompt:       domain.Prompt{System: "sys", Text: "x", Schema: domain.QuoteSchema},
			wantErr:      domain.ErrUpstreamUnavailable,
		},
		{
			name:         "Empty content",
			status:       http.StatusOK,
			responseBody: completionBody(""),
			prompt:       domain.Prompt{System: "sys", Text: "x", Schema: domain.QuoteSchema},
			wantErr:      domain.ErrEmptyOutput,
		},
		{
			name:         "No choices",
			status:       http.StatusOK,
			responseBody: `{"id":"chatcmpl-1","object":"chat.completion","created":0,"model":"m","choices":[]}`,
			prompt:       domain.Prompt{System: "sys", Text: "x", Schema: domain.QuoteSchema},
			wantErr:      domain.ErrEmptyOutput,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var got capturedRequest
			var gotAuth string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				gotAuth = r.Header.Get("Authorization")
				if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer srv.Close()

			client := NewClient(context.Background(), Config{APIKey: "test-key", BaseURL: srv.URL})
			out, err := client.Generate(context.Background(), tt.prompt)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected err %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out == "" {
				t.Fatalf("expected content")
			}
			if gotAuth != "Bearer test-key" {
				t.Fatalf("expected bearer auth, got %q", gotAuth)
			}
			if got.Model != DefaultModel {
				t.Fatalf("expected model %s, got %q", DefaultModel, got.Model)
			}
			if got.ResponseFormat.Type != "json_schema" {
				t.Fatalf("expected json_schema response format, got %q", got.ResponseFormat.Type)
			}
			if got.ResponseFormat.JSONSchema.Name != tt.prompt.Schema.Name || !got.ResponseFormat.JSONSchema.Strict {
				t.Fatalf("unexpected json schema header: %+v", got.ResponseFormat.JSONSchema)
			}
			if len(got.Messages) != 2 {
				t.Fatalf("expected 2 messages, got %d", len(got.Messages))
			}

			var user struct {
				Role    string          `json:"role"`
				Content json.RawMessage `json:"content"`
			}
			if err := json.Unmarshal(got.Messages[1], &user); err != nil {
				t.Fatalf("decode user message: %v", err)
			}
			isParts := strings.HasPrefix(strings.TrimSpace(string(user.Content)), "[")
			if isParts != tt.wantParts {
				t.Fatalf("expected content parts=%v, got %s", tt.wantParts, user.Content)
			}
			if tt.wantParts && !strings.Contains(string(user.Content), tt.prompt.ImageDataURI) {
				t.Fatalf("expected data URI in image part, got %s", user.Content)
			}
		})
	}
}

func TestClient_Generate_OAuth(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"oauth-token","token_type":"Bearer","expires_in":3600}`))
	}))
	defer tokenSrv.Close()

	var gotAuth string
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody(`{"quote":"q"}`)))
	}))
	defer apiSrv.Close()

	client := NewClient(context.Background(), Config{
		BaseURL: apiSrv.URL,
		OAuth: &clientcredentials.Config{
			ClientID:     "id",
			ClientSecret: "secret",
			TokenURL:     tokenSrv.URL,
		},
	})

	if _, err := client.Generate(context.Background(), domain.Prompt{System: "sys", Text: "x", Schema: domain.QuoteSchema}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer oauth-token" {
		t.Fatalf("expected oauth bearer token, got %q", gotAuth)
	}
}
