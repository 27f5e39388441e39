package llm

import (
	"context"
)

// Client sends a single prompt to a chat model and returns its text reply.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
