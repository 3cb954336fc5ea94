package app

import "go.uber.org/zap"

// Log is the process-wide logger. It discards everything until SetupLog
// installs a real one.
var Log = zap.NewNop()

// SetupLog replaces Log with a production logger, or a development logger
// when debug is set. The returned func flushes buffered entries.
func SetupLog(debug bool) (func(), error) {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return func() {}, err
	}

	Log = l
	return func() { _ = l.Sync() }, nil
}
