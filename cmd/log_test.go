package cmd

import (
	"testing"

	"github.com/decdump/decdump/pkg/decdump"
	"github.com/decdump/decdump/pkg/logging"
)

func TestDefaultLogLevelFromEnvironment(t *testing.T) {
	t.Setenv(decdump.LogLevelEnvironmentVariable, "trace")
	if level, err := DefaultLogLevel(); err != nil {
		t.Fatal("unable to compute log level:", err)
	} else if level != logging.LevelTrace {
		t.Error("unexpected log level:", level)
	}
}

func TestDefaultLogLevelInvalid(t *testing.T) {
	t.Setenv(decdump.LogLevelEnvironmentVariable, "chatty")
	if _, err := DefaultLogLevel(); err == nil {
		t.Error("invalid log level accepted")
	}
}

func TestDefaultLogLevelUnset(t *testing.T) {
	t.Setenv(decdump.LogLevelEnvironmentVariable, "")
	expected := logging.LevelWarn
	if decdump.DebugEnabled {
		expected = logging.LevelDebug
	}
	if level, err := DefaultLogLevel(); err != nil {
		t.Fatal("unable to compute log level:", err)
	} else if level != expected {
		t.Error("unexpected log level:", level)
	}
}
