package service

import (
	"context"
	"errors"
)

// ErrServiceOverloaded marks transient overload/unavailability of the
// generation backend so callers can word their fallback accordingly.
var ErrServiceOverloaded = errors.New("generation service overloaded")

type LLMService interface {
	GenerateCompletion(ctx context.Context, prompt string) (string, error)
}
