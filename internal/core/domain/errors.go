package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a caller-side precondition failure (empty text, no photo).
	ErrInvalidInput = errors.New("domain: invalid input")

	// ErrGenerationFailure is matched by every error a gateway call can return.
	ErrGenerationFailure = errors.New("domain: generation failure")

	// ErrUpstreamUnavailable marks transport or status errors from the model provider.
	ErrUpstreamUnavailable = errors.New("domain: upstream unavailable")

	// ErrEmptyOutput means the provider answered without any content.
	ErrEmptyOutput = errors.New("domain: upstream returned no output")

	// ErrSchemaViolation means the provider's JSON did not match the requested schema.
	ErrSchemaViolation = errors.New("domain: response does not match schema")

	// ErrInvalidDataURI means an image reference is not a base64 data URI.
	ErrInvalidDataURI = errors.New("domain: invalid data URI")
)

// GenerationError is the single terminal failure of one generation flow.
type GenerationError struct {
	Flow string
	Err  error
}

func (e GenerationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrGenerationFailure.Error(), e.Flow)
	}
	return fmt.Sprintf("%s: %s: %v", ErrGenerationFailure.Error(), e.Flow, e.Err)
}

func (e GenerationError) Unwrap() error {
	return e.Err
}

func (e GenerationError) Is(target error) bool {
	return target == ErrGenerationFailure
}
