package llm

import (
	"context"
	"errors"
)

// Client abstracts LLM chat-completion providers. Implementations send one
// prompt and return the model's text output.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrRateLimited indicates the provider rejected the call for quota
// exhaustion. Callers must surface it as a retryable-later condition rather
// than degrading into a fabricated result.
var ErrRateLimited = errors.New("llm rate limited")

// ErrEmptyResponse indicates the provider returned no usable content.
var ErrEmptyResponse = errors.New("llm empty response")
