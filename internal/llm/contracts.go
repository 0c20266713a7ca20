// Package llm turns document text into benefits and test cases with a language model.
package llm

import (
	"context"
	"errors"
)

var (
	ErrEmptyResponse   = errors.New("model returned an empty response")
	ErrInvalidResponse = errors.New("model response does not match the expected format")
)

// Model is a language model backend. Generate returns the raw text of the model answer.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
