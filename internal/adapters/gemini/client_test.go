package gemini

import (
	"errors"
	"reflect"
	"testing"

	"google.golang.org/genai"

	"github.com/ewilliams-labs/moodsnap/internal/core/domain"
)

func TestToSchema(t *testing.T) {
	got := toSchema(domain.MoodPackageSchema)

	if got.Type != genai.TypeObject {
		t.Fatalf("expected object schema, got %v", got.Type)
	}
	wantOrder := []string{"mood", "quote", "emoji", "moodType", "backgroundStyle", "filterSuggestion"}
	if !reflect.DeepEqual(got.PropertyOrdering, wantOrder) {
		t.Fatalf("expected ordering %v, got %v", wantOrder, got.PropertyOrdering)
	}
	if !reflect.DeepEqual(got.Required, wantOrder) {
		t.Fatalf("expected all fields required, got %v", got.Required)
	}
	moodType, ok := got.Properties["moodType"]
	if !ok {
		t.Fatalf("missing moodType property")
	}
	if len(moodType.Enum) != 14 {
		t.Fatalf("expected 14 enum values, got %d", len(moodType.Enum))
	}
	if got.Properties["quote"].Enum != nil {
		t.Fatalf("quote must not be an enum")
	}
}

func TestBuildContents(t *testing.T) {
	tests := []struct {
		name      string
		prompt    domain.Prompt
		wantParts int
		wantErr   error
	}{
		{
			name:      "text only",
			prompt:    domain.Prompt{Text: "User's mood description: meh"},
			wantParts: 1,
		},
		{
			name:      "text and image",
			prompt:    domain.Prompt{Text: "Photo:", ImageDataURI: "data:image/jpeg;base64,aGVsbG8="},
			wantParts: 2,
		},
		{
			name:    "malformed image",
			prompt:  domain.Prompt{Text: "Photo:", ImageDataURI: "data:image/jpeg,raw"},
			wantErr: domain.ErrInvalidDataURI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contents, err := buildContents(tt.prompt)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(contents) != 1 {
				t.Fatalf("expected one content, got %d", len(contents))
			}
			parts := contents[0].Parts
			if len(parts) != tt.wantParts {
				t.Fatalf("expected %d parts, got %d", tt.wantParts, len(parts))
			}
			if parts[0].Text != tt.prompt.Text {
				t.Fatalf("expected text part first, got %+v", parts[0])
			}
			if tt.wantParts == 2 {
				blob := parts[1].InlineData
				if blob == nil || blob.MIMEType != "image/jpeg" || string(blob.Data) != "hello" {
					t.Fatalf("unexpected inline image %+v", blob)
				}
			}
		})
	}
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		name string
		res  *genai.GenerateContentResponse
		want string
	}{
		{
			name: "nil response",
			res:  nil,
			want: "",
		},
		{
			name: "blocked prompt",
			res:  &genai.GenerateContentResponse{},
			want: "",
		},
		{
			name: "joins text parts and skips thoughts",
			res: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{
						Content: &genai.Content{
							Parts: []*genai.Part{
								{Text: "thinking...", Thought: true},
								{Text: `{"quote":`},
								{Text: `"q"}`},
							},
						},
					},
				},
			},
			want: `{"quote":"q"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := responseText(tt.res); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
