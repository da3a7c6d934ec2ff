package name

import "log/slog"

// Reporter receives diagnostic warnings raised while building Names.
// It is injected rather than resolved from a global so the package stays
// testable without a live logging subsystem.
type Reporter interface {
	Warn(message string)
}

// NopReporter discards all warnings.
var NopReporter Reporter = nopReporter{}

type nopReporter struct{}

func (nopReporter) Warn(string) {}

// SlogReporter adapts a slog.Logger into a Reporter. A nil logger falls
// back to slog.Default.
func SlogReporter(logger *slog.Logger) Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return slogReporter{logger: logger}
}

type slogReporter struct {
	logger *slog.Logger
}

func (r slogReporter) Warn(message string) {
	r.logger.Warn(message)
}
