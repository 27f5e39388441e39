package classifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMPredict(t *testing.T) {
	mock := &MockLLM{Response: "```json\n{\"label\": \"LABEL_1\", \"score\": 0.83}\n```"}
	b := NewLLMBackend(mock, "openai", "Classify:\n%s")

	pred, err := b.Predict(context.Background(), "Moon made of cheese, NASA admits.")

	require.NoError(t, err)
	assert.Equal(t, Prediction{Label: "LABEL_1", Score: 0.83}, pred)
	assert.Equal(t, "Classify:\nMoon made of cheese, NASA admits.", mock.LastPrompt)
}

func TestLLMPredictPromptWithoutPlaceholder(t *testing.T) {
	mock := &MockLLM{Response: `{"label": "LABEL_0", "score": 0.6}`}
	b := NewLLMBackend(mock, "ollama", "Is this real?")

	_, err := b.Predict(context.Background(), "article body")

	require.NoError(t, err)
	assert.Equal(t, "Is this real?\n\narticle body", mock.LastPrompt)
}

func TestLLMPredictClampsScore(t *testing.T) {
	mock := &MockLLM{Response: `{"label": "LABEL_0", "score": 97}`}
	b := NewLLMBackend(mock, "gemini", "%s")

	pred, err := b.Predict(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, 1.0, pred.Score)

	mock.Response = `{"label": "LABEL_0", "score": -0.2}`
	pred, err = b.Predict(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, 0.0, pred.Score)
}

func TestLLMPredictErrors(t *testing.T) {
	boom := errors.New("rate limited")
	_, err := NewLLMBackend(&MockLLM{Err: boom}, "claude", "%s").Predict(context.Background(), "text")
	assert.ErrorIs(t, err, boom)

	_, err = NewLLMBackend(&MockLLM{Response: "I think it is fake."}, "claude", "%s").Predict(context.Background(), "text")
	assert.Error(t, err)

	_, err = NewLLMBackend(&MockLLM{Response: `{"score": 0.5}`}, "claude", "%s").Predict(context.Background(), "text")
	assert.ErrorIs(t, err, ErrEmptyOutput)

	_, err = NewLLMBackend(&MockLLM{Response: `{"label": "  ", "score": 0.5}`}, "claude", "%s").Predict(context.Background(), "text")
	assert.ErrorIs(t, err, ErrEmptyOutput)
}

func TestLLMPredictTrimsLabel(t *testing.T) {
	mock := &MockLLM{Response: `{"label": " LABEL_0\n", "score": 0.9}`}

	pred, err := NewLLMBackend(mock, "ollama", "%s").Predict(context.Background(), "text")

	require.NoError(t, err)
	assert.Equal(t, "LABEL_0", pred.Label)
}

func TestLLMNameAndClose(t *testing.T) {
	mock := &MockLLM{}
	b := NewLLMBackend(mock, "gemini", "%s")

	assert.Equal(t, "llm/gemini", b.Name())
	require.NoError(t, b.Close())
	assert.True(t, mock.Closed)
}

func TestLLMBackendThroughService(t *testing.T) {
	mock := &MockLLM{Response: `{"label": "LABEL_1", "score": 0.912345}`}
	svc := NewService(NewLLMBackend(mock, "openai", "%s"), defaultLabels, 4, nil)

	res, err := svc.Classify(context.Background(), "article")

	require.NoError(t, err)
	assert.Equal(t, "Fake", res.Prediction)
	assert.InDelta(t, 0.9123, res.Confidence, 1e-12)
}
