package classifier

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/agenthands/newsguard/internal/llm"
	"github.com/samber/lo"
)

type verdict struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// LLMBackend asks a chat model for a zero-shot verdict. The prompt must make
// the model answer with the same label identifiers the fine-tuned model emits.
type LLMBackend struct {
	client   llm.Client
	provider string
	prompt   string
}

func NewLLMBackend(client llm.Client, provider, prompt string) *LLMBackend {
	return &LLMBackend{
		client:   client,
		provider: provider,
		prompt:   prompt,
	}
}

func (b *LLMBackend) Predict(ctx context.Context, text string) (Prediction, error) {
	var prompt string
	if strings.Contains(b.prompt, "%s") {
		prompt = fmt.Sprintf(b.prompt, text)
	} else {
		prompt = b.prompt + "\n\n" + text
	}

	response, err := b.client.Generate(ctx, prompt)
	if err != nil {
		return Prediction{}, fmt.Errorf("failed to generate verdict: %w", err)
	}

	v, err := llm.ParseJSON[verdict](response)
	if err != nil {
		return Prediction{}, fmt.Errorf("failed to parse verdict: %w", err)
	}
	label := strings.TrimSpace(v.Label)
	if label == "" {
		return Prediction{}, ErrEmptyOutput
	}

	return Prediction{
		Label: label,
		Score: lo.Clamp(v.Score, 0, 1),
	}, nil
}

func (b *LLMBackend) Name() string {
	return "llm/" + b.provider
}

func (b *LLMBackend) Close() error {
	if c, ok := b.client.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
