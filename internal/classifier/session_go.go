//go:build !ORT

package classifier

import (
	"github.com/knights-analytics/hugot"
	"go.uber.org/zap"
)

// newSession uses the pure-Go runtime, which has no accelerator support.
func newSession(opts HugotOptions, log *zap.Logger) (*hugot.Session, string, error) {
	if opts.Device == "cuda" {
		log.Warn("cuda requested but this build has no ONNX Runtime support; rebuild with -tags ORT", zap.String("fallback", "cpu"))
	}
	session, err := hugot.NewGoSession()
	if err != nil {
		return nil, "", err
	}
	return session, "go-cpu", nil
}
