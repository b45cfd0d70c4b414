package gemini

import (
	"context"
	"os"
	"testing"

	"github.com/ewilliams-labs/moodsnap/internal/core/domain"
	"github.com/ewilliams-labs/moodsnap/internal/core/presets"
	"github.com/ewilliams-labs/moodsnap/internal/core/services"
)

// TestGateway_AnalyzeFromText_Integration runs the text flow against the live Gemini API.
// This test is skipped unless RUN_AI_TESTS=true and GEMINI_API_KEY are set.
func TestGateway_AnalyzeFromText_Integration(t *testing.T) {
	if os.Getenv("RUN_AI_TESTS") != "true" {
		t.Skip("Skipping AI-dependent test (set RUN_AI_TESTS=true to enable)")
	}
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY is not set")
	}

	ctx := context.Background()
	client, err := NewClient(ctx, apiKey, os.Getenv("MOODSNAP_MODEL"), nil)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	gateway := services.NewGateway(client)

	pkg, err := gateway.AnalyzeFromText(ctx, "I just got dumped and I feel hollow")
	if err != nil {
		t.Fatalf("AnalyzeFromText() error = %v", err)
	}

	if _, ok := domain.ParseMoodType(string(pkg.MoodType)); !ok {
		t.Errorf("unexpected mood type %q", pkg.MoodType)
	}
	if pkg.Quote == "" || pkg.Mood == "" || pkg.Emoji == "" {
		t.Errorf("expected non-empty quote, mood and emoji: %+v", pkg)
	}

	style := presets.Resolver{}.Resolve(pkg, false)
	t.Logf("Mood package: %+v, background: %s", pkg, style.Background.CSS())
}
