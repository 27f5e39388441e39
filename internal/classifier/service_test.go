package classifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultLabels = map[string]string{"LABEL_0": "Real", "LABEL_1": "Fake"}

func TestClassifyRemapsLabels(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"LABEL_0", "Real"},
		{"LABEL_1", "Fake"},
		{"LABEL_7", "LABEL_7"},
		{"NEUTRAL", "NEUTRAL"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			backend := &MockBackend{Prediction: Prediction{Label: tt.label, Score: 0.9}}
			svc := NewService(backend, defaultLabels, 4, nil)

			res, err := svc.Classify(context.Background(), "Scientists confirm water boils at 100 degrees Celsius at sea level.")
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Prediction)
		})
	}
}

func TestClassifyRoundsConfidence(t *testing.T) {
	tests := []struct {
		score float64
		want  float64
	}{
		{float64(float32(0.99985361)), 0.9999},
		{0.12344, 0.1234},
		{0.12346, 0.1235},
		{1, 1},
		{0, 0},
	}

	for _, tt := range tests {
		backend := &MockBackend{Prediction: Prediction{Label: "LABEL_1", Score: tt.score}}
		svc := NewService(backend, defaultLabels, 4, nil)

		res, err := svc.Classify(context.Background(), "some article")
		require.NoError(t, err)
		assert.InDelta(t, tt.want, res.Confidence, 1e-12)
		assert.GreaterOrEqual(t, res.Confidence, 0.0)
		assert.LessOrEqual(t, res.Confidence, 1.0)
	}
}

func TestClassifyEmptyTextSkipsBackend(t *testing.T) {
	backend := &MockBackend{Prediction: Prediction{Label: "LABEL_0", Score: 0.5}}
	svc := NewService(backend, defaultLabels, 4, nil)

	_, err := svc.Classify(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, backend.Calls)
}

func TestClassifyPassesTextThrough(t *testing.T) {
	backend := &MockBackend{Prediction: Prediction{Label: "LABEL_0", Score: 0.5}}
	svc := NewService(backend, defaultLabels, 4, nil)

	text := "  Breaking:\tmarkets rally  "
	_, err := svc.Classify(context.Background(), text)

	require.NoError(t, err)
	assert.Equal(t, text, backend.LastText)
}

func TestClassifyWrapsBackendError(t *testing.T) {
	boom := errors.New("onnx runtime exploded")
	svc := NewService(&MockBackend{Err: boom}, defaultLabels, 4, nil)

	_, err := svc.Classify(context.Background(), "article")

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestClassifyIsDeterministic(t *testing.T) {
	backend := &MockBackend{Prediction: Prediction{Label: "LABEL_1", Score: 0.87654321}}
	svc := NewService(backend, defaultLabels, 4, nil)

	first, err := svc.Classify(context.Background(), "same text")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := svc.Classify(context.Background(), "same text")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, Result{Prediction: "Fake", Confidence: 0.8765}, first)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.98, Round(0.9751, 2))
	assert.Equal(t, 1.0, Round(0.99996, 4))
	assert.Equal(t, 0.0, Round(0.5, 0))
	assert.Equal(t, 2.0, Round(1.5, 0))
	assert.Equal(t, 2.67, Round(2.675, 2))
	assert.Equal(t, 0.1235, Round(0.12345000001, 4))
}
