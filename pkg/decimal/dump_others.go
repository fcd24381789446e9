//go:build !unix

package decimal

import (
	"os"
)

// Dump renders value and emits it to standard output with a single write call.
// The result of the write is deliberately not inspected: a failed or short
// write is silently dropped.
func Dump(value uint64) {
	var buffer Buffer
	os.Stdout.Write(Encode(&buffer, value))
}
