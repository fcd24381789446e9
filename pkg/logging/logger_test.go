package logging

import (
	"bytes"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// captureStandardLogger redirects the standard logger to a buffer for the
// duration of a test.
func captureStandardLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	buffer := &bytes.Buffer{}
	flags := log.Flags()
	log.SetOutput(buffer)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(io.Discard)
		log.SetFlags(flags)
	})
	return buffer
}

func TestWriterSplitsLines(t *testing.T) {
	var lines []string
	w := &writer{callback: func(s string) {
		lines = append(lines, s)
	}}

	// Write fragments that span line boundaries.
	w.Write([]byte("first li"))
	w.Write([]byte("ne\r\nsecond line\nthi"))
	w.Write([]byte("rd\n"))

	// Verify the result.
	expected := []string{"first line", "second line", "third"}
	if diff := cmp.Diff(expected, lines); diff != "" {
		t.Error("unexpected lines (-want +got):\n", diff)
	}
	if len(w.buffer) != 0 {
		t.Error("leftover data in buffer:", string(w.buffer))
	}
}

func TestNilLogger(t *testing.T) {
	var logger *Logger
	if logger.Sublogger("child") != nil {
		t.Error("sublogger of nil logger is non-nil")
	}
	if logger.Writer(LevelError) != io.Discard {
		t.Error("nil logger writer does not discard")
	}
	logger.Warnf("ignored %v", errors.New("failure"))
	logger.Infof("ignored %d", 1)
}

func TestLevelFiltering(t *testing.T) {
	output := captureStandardLogger(t)

	// Log at a range of levels with an informational logger.
	logger := NewLogger(LevelInfo).Sublogger("parent").Sublogger("child")
	logger.Infof("shown")
	logger.Debugf("hidden")
	logger.Tracef("hidden %d", 2)

	// Verify that only the informational message arrived with the expected
	// prefix.
	if result := output.String(); result != "[parent.child] shown\n" {
		t.Errorf("unexpected log output: %q", result)
	}
}

func TestLevelWriter(t *testing.T) {
	output := captureStandardLogger(t)

	// Create a logger and write some lines through a debug-level writer.
	logger := NewLogger(LevelDebug).Sublogger("tool")
	io.WriteString(logger.Writer(LevelDebug), "alpha\nbeta\n")

	// Verify the output.
	lines := strings.Split(strings.TrimSuffix(output.String(), "\n"), "\n")
	expected := []string{"[tool] alpha", "[tool] beta"}
	if diff := cmp.Diff(expected, lines); diff != "" {
		t.Error("unexpected lines (-want +got):\n", diff)
	}

	// Verify that filtered writers discard.
	if NewLogger(LevelInfo).Writer(LevelTrace) != io.Discard {
		t.Error("filtered writer does not discard")
	}
}
