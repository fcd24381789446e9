package cmd

import (
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/decdump/decdump/pkg/decdump"
	"github.com/decdump/decdump/pkg/logging"
)

func init() {
	// Silence the default logger until logging is configured.
	log.SetOutput(io.Discard)
}

// DefaultLogLevel computes the default log level from the environment. An
// invalid level in the environment is reported as an error.
func DefaultLogLevel() (logging.Level, error) {
	if name := os.Getenv(decdump.LogLevelEnvironmentVariable); name != "" {
		level, ok := logging.NameToLevel(name)
		if !ok {
			return logging.LevelWarn, errors.Errorf("invalid log level in %s: %s", decdump.LogLevelEnvironmentVariable, name)
		}
		return level, nil
	}
	if decdump.DebugEnabled {
		return logging.LevelDebug, nil
	}
	return logging.LevelWarn, nil
}

// ConfigureLogging directs the standard logger to standard error and creates a
// root logger at the specified level. Color output is disabled if standard
// error isn't a terminal.
func ConfigureLogging(level logging.Level) *logging.Logger {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	return logging.NewLogger(level)
}
