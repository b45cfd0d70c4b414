package ports

import (
	"context"

	"github.com/ewilliams-labs/moodsnap/internal/core/domain"
)

// MoodGenerator sends one prompt to a generative model and returns its raw
// text output. Implementations wrap transport failures with
// domain.ErrUpstreamUnavailable and blank answers with domain.ErrEmptyOutput;
// they do not validate the output against the schema.
type MoodGenerator interface {
	Generate(ctx context.Context, p domain.Prompt) (string, error)
}
