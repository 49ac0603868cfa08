package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Default creates a charm log without timestamps that respects the global log level
func Default(prefix string) *log.Logger {
	return NewWithConfig(os.Stderr, prefix, log.GetLevel(), false, false, log.TextFormatter)
}

// Discard returns a logger that drops everything, used by tests and quiet mode.
func Discard() *log.Logger {
	return NewWithConfig(io.Discard, "", log.FatalLevel, false, false, log.TextFormatter)
}

// SetupGlobal routes the package-level charm logger to stderr and sets its level.
func SetupGlobal(debug bool) {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(false)
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportCaller(true)
		return
	}
	log.SetLevel(log.WarnLevel)
}
