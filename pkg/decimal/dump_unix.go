//go:build unix

package decimal

import (
	"golang.org/x/sys/unix"
)

// standardOutput is the descriptor targeted by Dump.
var standardOutput = unix.Stdout

// Dump renders value and emits it to standard output with a single write(2)
// call. The result of the write is deliberately not inspected: a failed or
// short write is silently dropped.
func Dump(value uint64) {
	var buffer Buffer
	unix.Write(standardOutput, Encode(&buffer, value))
}

// DumpToDescriptor renders value and emits it to the specified file descriptor
// with a single write(2) call, returning the result of that call unmodified.
func DumpToDescriptor(descriptor int, value uint64) (int, error) {
	var buffer Buffer
	return unix.Write(descriptor, Encode(&buffer, value))
}
