package classifier

import (
	"context"
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Service struct {
	backend   Backend
	labels    map[string]string
	precision int
	log       *zap.Logger
}

func NewService(backend Backend, labels map[string]string, precision int, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		backend:   backend,
		labels:    labels,
		precision: precision,
		log:       log,
	}
}

// Classify returns the verdict for text. Empty text fails with ErrInvalidInput
// before the backend is touched.
func (s *Service) Classify(ctx context.Context, text string) (Result, error) {
	if text == "" {
		return Result{}, ErrInvalidInput
	}

	pred, err := s.backend.Predict(ctx, text)
	if err != nil {
		return Result{}, fmt.Errorf("classify: %w", err)
	}

	res := Result{
		Prediction: s.Label(pred.Label),
		Confidence: Round(pred.Score, s.precision),
	}

	s.log.Debug("classified text",
		zap.Int("chars", len(text)),
		zap.String("label", pred.Label),
		zap.String("prediction", res.Prediction),
		zap.Float64("confidence", res.Confidence),
	)
	return res, nil
}

// Label maps a model label identifier to its display name. Unknown identifiers
// are returned unchanged.
func (s *Service) Label(raw string) string {
	return lo.ValueOr(s.labels, raw, raw)
}

func (s *Service) Backend() string {
	return s.backend.Name()
}

// Round rounds v to the given number of decimal places using the exact decimal
// value of v, so Round(2.675, 2) is 2.67. Exact binary ties go to even.
func Round(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}
