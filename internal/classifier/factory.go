package classifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/agenthands/newsguard/internal/config"
	"github.com/agenthands/newsguard/internal/llm"
	"go.uber.org/zap"
)

// NewBackend builds the backend selected by cfg.Classifier.Backend.
func NewBackend(ctx context.Context, cfg *config.Config, log *zap.Logger) (Backend, error) {
	switch strings.ToLower(cfg.Classifier.Backend) {
	case "hugot", "":
		dir, err := cfg.ResolveModelDir()
		if err != nil {
			return nil, err
		}
		b, err := NewHugotBackend(HugotOptions{
			ModelDir:        dir,
			OnnxFilename:    cfg.Model.OnnxFilename,
			Device:          cfg.Model.Device,
			OnnxLibraryPath: cfg.Model.OnnxLibraryPath,
		}, log)
		if err != nil {
			return nil, err
		}
		return b, nil

	case "llm":
		client, err := llm.NewClient(ctx, cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
		}
		log.Info("using llm backend",
			zap.String("provider", cfg.LLM.Provider),
			zap.String("model", cfg.LLM.Model),
		)
		return NewLLMBackend(client, strings.ToLower(cfg.LLM.Provider), cfg.LLM.Prompt), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, cfg.Classifier.Backend)
	}
}
