package services

import (
	"context"
	"log"

	"github.com/ewilliams-labs/moodsnap/internal/core/domain"
	"github.com/ewilliams-labs/moodsnap/internal/core/ports"
)

// Gateway turns user input into validated mood packages using a MoodGenerator.
// Each call is independent: no retries, no shared state, all or nothing.
type Gateway struct {
	gen ports.MoodGenerator
}

// NewGateway constructs a Gateway.
func NewGateway(gen ports.MoodGenerator) *Gateway {
	return &Gateway{gen: gen}
}

// AnalyzeFromText infers a mood package from a free-text description.
// The text is forwarded as is; length checks belong to the caller.
func (g *Gateway) AnalyzeFromText(ctx context.Context, text string) (domain.MoodPackage, error) {
	raw, err := g.generate(ctx, domain.Prompt{
		Flow:   FlowAnalyzeText,
		System: textAnalysisPrompt,
		Text:   "User's mood description: " + text,
		Schema: domain.MoodPackageSchema,
	})
	if err != nil {
		return domain.MoodPackage{}, err
	}

	pkg, err := domain.ParseMoodPackage(raw)
	if err != nil {
		return domain.MoodPackage{}, g.fail(FlowAnalyzeText, err)
	}
	return pkg, nil
}

// AnalyzeFromPhoto infers a mood package from a photo given as a data URI.
// The URI is passed through untouched.
func (g *Gateway) AnalyzeFromPhoto(ctx context.Context, photoDataURI string) (domain.MoodPackage, error) {
	raw, err := g.generate(ctx, domain.Prompt{
		Flow:         FlowAnalyzePhoto,
		System:       photoAnalysisPrompt,
		Text:         "Photo:",
		ImageDataURI: photoDataURI,
		Schema:       domain.MoodPackageSchema,
	})
	if err != nil {
		return domain.MoodPackage{}, err
	}

	pkg, err := domain.ParseMoodPackage(raw)
	if err != nil {
		return domain.MoodPackage{}, g.fail(FlowAnalyzePhoto, err)
	}
	return pkg, nil
}

// GenerateQuote writes a quote for an already known mood.
func (g *Gateway) GenerateQuote(ctx context.Context, mood string) (domain.QuoteResult, error) {
	raw, err := g.generate(ctx, domain.Prompt{
		Flow:   FlowGenerateQuote,
		System: quotePrompt,
		Text:   "Mood: " + mood + "\nQuote:",
		Schema: domain.QuoteSchema,
	})
	if err != nil {
		return domain.QuoteResult{}, err
	}

	res, err := domain.ParseQuoteResult(raw)
	if err != nil {
		return domain.QuoteResult{}, g.fail(FlowGenerateQuote, err)
	}
	return res, nil
}

// RecommendFilter suggests an image filter style for an already known mood.
func (g *Gateway) RecommendFilter(ctx context.Context, mood string) (domain.FilterRecommendation, error) {
	raw, err := g.generate(ctx, domain.Prompt{
		Flow:   FlowRecommendFilter,
		System: filterPrompt,
		Text:   "Mood: " + mood + "\n\nFilter Suggestion:",
		Schema: domain.FilterSchema,
	})
	if err != nil {
		return domain.FilterRecommendation{}, err
	}

	res, err := domain.ParseFilterRecommendation(raw)
	if err != nil {
		return domain.FilterRecommendation{}, g.fail(FlowRecommendFilter, err)
	}
	return res, nil
}

func (g *Gateway) generate(ctx context.Context, p domain.Prompt) (string, error) {
	raw, err := g.gen.Generate(ctx, p)
	if err != nil {
		return "", g.fail(p.Flow, err)
	}
	return raw, nil
}

func (g *Gateway) fail(flow string, err error) error {
	log.Printf("WARN gateway: %s failed: %v", flow, err)
	return domain.GenerationError{Flow: flow, Err: err}
}
