package ai

import (
	"context"
)

// Completer sends one prompt to a language model and returns its raw text.
// Implementations should ask the model for a JSON-only answer.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Close() error
}
