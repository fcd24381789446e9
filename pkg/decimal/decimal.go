// Package decimal renders unsigned 64-bit integers as newline-terminated
// decimal text and emits them with a single unbuffered write.
package decimal

import (
	"io"

	"github.com/pkg/errors"

	"github.com/decdump/decdump/pkg/numeric"
)

// MaximumLength is the maximum number of bytes produced by Encode: the longest
// decimal rendering of a 64-bit unsigned integer plus a trailing newline.
const MaximumLength = numeric.MaxUint64Digits + 1

// Buffer is the scratch space used for a single encoding operation. It's
// intended to be allocated on the stack by callers.
type Buffer [MaximumLength]byte

// Encode renders value into the tail of buffer as decimal digits followed by a
// newline and returns the occupied suffix of the buffer. Digits are produced
// least significant first and stored right-to-left, so the result reads in the
// normal order. A value of 0 produces a single '0' digit.
func Encode(buffer *Buffer, value uint64) []byte {
	// Place the newline in the final byte.
	start := len(buffer) - 1
	buffer[start] = '\n'

	// Fill digits leftward. The loop body always executes at least once so
	// that zero renders as "0".
	for {
		start--
		buffer[start] = byte('0' + value%10)
		value /= 10
		if value == 0 {
			break
		}
	}

	// Done.
	return buffer[start:]
}

// DumpTo renders value and writes it to writer using exactly one Write call.
// Unlike Dump, it reports write failures, including short writes.
func DumpTo(writer io.Writer, value uint64) error {
	// Encode the value.
	var buffer Buffer
	data := Encode(&buffer, value)

	// Perform the write and verify that it was complete.
	if n, err := writer.Write(data); err != nil {
		return errors.Wrap(err, "unable to write value")
	} else if n != len(data) {
		return errors.Wrapf(io.ErrShortWrite, "wrote %d of %d bytes", n, len(data))
	}

	// Success.
	return nil
}
