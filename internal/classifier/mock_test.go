package classifier

import (
	"context"

	"github.com/knights-analytics/hugot/pipelines"
)

type MockBackend struct {
	Prediction Prediction
	Err        error
	Calls      int
	LastText   string
}

func (m *MockBackend) Predict(ctx context.Context, text string) (Prediction, error) {
	m.Calls++
	m.LastText = text
	if m.Err != nil {
		return Prediction{}, m.Err
	}
	return m.Prediction, nil
}

func (m *MockBackend) Name() string { return "mock" }

func (m *MockBackend) Close() error { return nil }

type MockPipeline struct {
	Output *pipelines.TextClassificationOutput
	Err    error
	Inputs [][]string
}

func (m *MockPipeline) RunPipeline(inputs []string) (*pipelines.TextClassificationOutput, error) {
	m.Inputs = append(m.Inputs, inputs)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Output, nil
}

type MockLLM struct {
	Response   string
	Err        error
	LastPrompt string
	Closed     bool
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func (m *MockLLM) Close() error {
	m.Closed = true
	return nil
}
