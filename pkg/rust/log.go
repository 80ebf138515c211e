package rust

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger routes the package's diagnostic warnings (currently only the
// nil-like payload warning in Some) to the given logger. The default is a
// nop. Not synchronized: call it during program initialization, before any
// constructors run.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}
