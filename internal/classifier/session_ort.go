//go:build ORT

package classifier

import (
	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/options"
	"go.uber.org/zap"
)

// newSession uses ONNX Runtime. With device "auto" it tries CUDA first and
// drops to CPU when the CUDA provider cannot be initialised.
func newSession(opts HugotOptions, log *zap.Logger) (*hugot.Session, string, error) {
	var base []options.WithOption
	if opts.OnnxLibraryPath != "" {
		base = append(base, options.WithOnnxLibraryPath(opts.OnnxLibraryPath))
	}

	if opts.Device != "cpu" {
		withCuda := append(append([]options.WithOption{}, base...), options.WithCuda(map[string]string{"device_id": "0"}))
		session, err := hugot.NewORTSession(withCuda...)
		if err == nil {
			return session, "ort-cuda", nil
		}
		if opts.Device == "cuda" {
			return nil, "", err
		}
		log.Info("cuda unavailable, using cpu", zap.Error(err))
	}

	session, err := hugot.NewORTSession(base...)
	if err != nil {
		return nil, "", err
	}
	return session, "ort-cpu", nil
}
