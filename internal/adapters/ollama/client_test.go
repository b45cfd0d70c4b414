package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ewilliams-labs/moodsnap/internal/core/domain"
)

func TestClient_Generate(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		responseBody string
		prompt       domain.Prompt
		wantErr      error
		wantImages   int
	}{
		{
			name:         "Success",
			status:       http.StatusOK,
			responseBody: `{"message":{"role":"assistant","content":"{\"quote\":\"Smile now, cry later.\"}"}}`,
			prompt:       domain.Prompt{Flow: "generateQuote", System: "sys", Text: "Mood: sad", Schema: domain.QuoteSchema},
		},
		{
			name:         "Success with image",
			status:       http.StatusOK,
			responseBody: `{"message":{"role":"assistant","content":"{\"quote\":\"q\"}"}}`,
			prompt:       domain.Prompt{System: "sys", Text: "Photo:", ImageDataURI: "data:image/png;base64,aGVsbG8=", Schema: domain.QuoteSchema},
			wantImages:   1,
		},
		{
			name:         "Server error",
			status:       http.StatusInternalServerError,
			responseBody: `{"error":"bad"}`,
			prompt:       domain.Prompt{System: "sys", Text: "x", Schema: domain.QuoteSchema},
			wantErr:      domain.ErrUpstreamUnavailable,
		},
		{
			name:         "Error field",
			status:       http.StatusOK,
			responseBody: `{"error":"model not found"}`,
			prompt:       domain.Prompt{System: "sys", Text: "x", Schema: domain.QuoteSchema},
			wantErr:      domain.ErrUpstreamUnavailable,
		},
		{
			name:         "Empty content",
			status:       http.StatusOK,
			responseBody: `{"message":{"role":"assistant","content":"  "}}`,
			prompt:       domain.Prompt{System: "sys", Text: "x", Schema: domain.QuoteSchema},
			wantErr:      domain.ErrEmptyOutput,
		},
		{
			name:         "Malformed data URI",
			status:       http.StatusOK,
			responseBody: `{}`,
			prompt:       domain.Prompt{System: "sys", Text: "Photo:", ImageDataURI: "not-a-uri", Schema: domain.QuoteSchema},
			wantErr:      domain.ErrInvalidDataURI,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var gotRequest chatRequest
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/chat" {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				if r.Method != http.MethodPost {
					w.WriteHeader(http.StatusMethodNotAllowed)
					return
				}
				if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, "", 0)
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
				t.Fatalf("expected raw content")
			}
			if gotRequest.Model != defaultModel {
				t.Fatalf("expected model %s, got %q", defaultModel, gotRequest.Model)
			}
			if gotRequest.Stream {
				t.Fatalf("expected non-streaming request")
			}
			if len(gotRequest.Messages) != 2 {
				t.Fatalf("expected 2 messages, got %d", len(gotRequest.Messages))
			}
			if gotRequest.Messages[0].Role != "system" || gotRequest.Messages[0].Content != tt.prompt.System {
				t.Fatalf("system prompt mismatch")
			}
			if gotRequest.Messages[1].Role != "user" || gotRequest.Messages[1].Content != tt.prompt.Text {
				t.Fatalf("user message mismatch")
			}
			if got := len(gotRequest.Messages[1].Images); got != tt.wantImages {
				t.Fatalf("expected %d images, got %d", tt.wantImages, got)
			}
			if tt.wantImages > 0 && gotRequest.Messages[1].Images[0] != "aGVsbG8=" {
				t.Fatalf("expected bare base64 image, got %q", gotRequest.Messages[1].Images[0])
			}

			var format map[string]any
			if err := json.Unmarshal(gotRequest.Format, &format); err != nil {
				t.Fatalf("format is not a schema object: %v", err)
			}
			if format["type"] != "object" {
				t.Fatalf("expected object schema, got %v", format["type"])
			}
		})
	}
}
