package classifier

import (
	"context"
	"fmt"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"go.uber.org/zap"
)

// HugotOptions locates the exported model and picks where it runs.
type HugotOptions struct {
	ModelDir        string
	OnnxFilename    string
	Device          string
	OnnxLibraryPath string
}

type textPipeline interface {
	RunPipeline(inputs []string) (*pipelines.TextClassificationOutput, error)
}

// HugotBackend runs a sequence-classification transformer through a hugot
// text-classification pipeline. The session and pipeline live until Close.
type HugotBackend struct {
	pipeline textPipeline
	runtime  string
	destroy  func() error
}

func NewHugotBackend(opts HugotOptions, log *zap.Logger) (*HugotBackend, error) {
	session, runtime, err := newSession(opts, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create inference session: %w", err)
	}

	pipe, err := hugot.NewPipeline(session, hugot.TextClassificationConfig{
		ModelPath:    opts.ModelDir,
		Name:         "bert-fakenews",
		OnnxFilename: opts.OnnxFilename,
	})
	if err != nil {
		_ = session.Destroy()
		return nil, fmt.Errorf("failed to load model from '%s': %w", opts.ModelDir, err)
	}

	log.Info("model loaded",
		zap.String("dir", opts.ModelDir),
		zap.String("runtime", runtime),
	)

	return &HugotBackend{
		pipeline: pipe,
		runtime:  runtime,
		destroy:  session.Destroy,
	}, nil
}

func (b *HugotBackend) Predict(ctx context.Context, text string) (Prediction, error) {
	if err := ctx.Err(); err != nil {
		return Prediction{}, err
	}

	out, err := b.pipeline.RunPipeline([]string{text})
	if err != nil {
		return Prediction{}, fmt.Errorf("pipeline run: %w", err)
	}
	if out == nil || len(out.ClassificationOutputs) == 0 || len(out.ClassificationOutputs[0]) == 0 {
		return Prediction{}, ErrEmptyOutput
	}

	best := out.ClassificationOutputs[0][0]
	for _, c := range out.ClassificationOutputs[0][1:] {
		if c.Score > best.Score {
			best = c
		}
	}
	return Prediction{Label: best.Label, Score: float64(best.Score)}, nil
}

func (b *HugotBackend) Name() string {
	return "hugot/" + b.runtime
}

func (b *HugotBackend) Close() error {
	if b.destroy == nil {
		return nil
	}
	return b.destroy()
}
