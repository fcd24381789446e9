// Package terminal provides helpers for safely echoing untrusted text, such as
// subprocess output, to a terminal.
package terminal

import (
	"io"
	"strings"
)

// controlCharacterNeutralizer is a string replacer that neutralizes terminal
// control characters.
var controlCharacterNeutralizer = strings.NewReplacer(
	"\x1b", "^[",
	"\x07", "^G",
	"\b", "\\b",
	"\r", "\\r",
)

// NeutralizeControlCharacters returns a copy of a string with any terminal
// control characters neutralized.
func NeutralizeControlCharacters(value string) string {
	return controlCharacterNeutralizer.Replace(value)
}

// neutralizingWriter is an io.Writer that neutralizes control characters
// before forwarding data to an underlying writer.
type neutralizingWriter struct {
	// writer is the underlying writer.
	writer io.Writer
}

// NewNeutralizingWriter wraps writer so that any terminal control characters
// written through it are neutralized. Since every neutralized sequence is a
// single byte, data may be split across writes arbitrarily.
func NewNeutralizingWriter(writer io.Writer) io.Writer {
	return &neutralizingWriter{writer: writer}
}

// Write implements io.Writer.Write.
func (w *neutralizingWriter) Write(data []byte) (int, error) {
	if _, err := io.WriteString(w.writer, NeutralizeControlCharacters(string(data))); err != nil {
		return 0, err
	}
	return len(data), nil
}
