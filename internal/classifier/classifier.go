// Package classifier turns a news-article text into a Real/Fake verdict.
//
// A Backend produces the raw model output (a label identifier and its
// probability); Service validates the input, remaps the label to its
// human-readable name and rounds the confidence.
package classifier

import (
	"context"
	"errors"
)

var (
	ErrInvalidInput       = errors.New("no text provided")
	ErrUnsupportedBackend = errors.New("unsupported classifier backend")
	ErrEmptyOutput        = errors.New("model returned no classification")
)

// Prediction is the top label a backend emitted for one text, before remapping.
type Prediction struct {
	Label string
	Score float64
}

// Result is what callers of the service get back.
type Result struct {
	Prediction string  `json:"prediction" example:"Real"`
	Confidence float64 `json:"confidence" example:"0.9731"`
}

// Backend runs inference. Implementations are created once at startup and must
// be safe for concurrent Predict calls.
type Backend interface {
	Predict(ctx context.Context, text string) (Prediction, error)
	Name() string
	Close() error
}
