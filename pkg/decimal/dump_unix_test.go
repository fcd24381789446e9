//go:build unix

package decimal

import (
	"io"
	"os"
	"testing"

	"github.com/decdump/decdump/pkg/numeric"
)

// readAvailable reads exactly length bytes from a pipe.
func readAvailable(t *testing.T, reader *os.File, length int) string {
	t.Helper()
	data := make([]byte, length)
	if _, err := io.ReadFull(reader, data); err != nil {
		t.Fatal("unable to read pipe contents:", err)
	}
	return string(data)
}

func TestDumpToDescriptor(t *testing.T) {
	// Create a pipe to capture output.
	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatal("unable to create pipe:", err)
	}
	defer reader.Close()
	defer writer.Close()

	// Dump a value and verify that the full output was written at once.
	n, err := DumpToDescriptor(int(writer.Fd()), numeric.MaxUint64)
	if err != nil {
		t.Fatal("unable to dump value:", err)
	} else if n != MaximumLength {
		t.Error("unexpected write count:", n)
	}
	if output := readAvailable(t, reader, n); output != "18446744073709551615\n" {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestDump(t *testing.T) {
	// Create a pipe to capture output.
	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatal("unable to create pipe:", err)
	}
	defer reader.Close()
	defer writer.Close()

	// Redirect the dump target for the duration of the test.
	previous := standardOutput
	standardOutput = int(writer.Fd())
	defer func() {
		standardOutput = previous
	}()

	// Dump the same value twice and verify both copies arrive intact.
	Dump(0)
	Dump(0)
	if output := readAvailable(t, reader, 4); output != "0\n0\n" {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestDumpIgnoresWriteFailure(t *testing.T) {
	// Point the dump target at an invalid descriptor.
	previous := standardOutput
	standardOutput = -1
	defer func() {
		standardOutput = previous
	}()

	// This should neither panic nor report anything.
	Dump(1)
}

func TestDumpToDescriptorFailure(t *testing.T) {
	if _, err := DumpToDescriptor(-1, 1); err == nil {
		t.Error("write to invalid descriptor succeeded")
	}
}

func TestDumpMaximum(t *testing.T) {
	// Create a pipe to capture output.
	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatal("unable to create pipe:", err)
	}
	defer reader.Close()
	defer writer.Close()

	// Redirect the dump target for the duration of the test.
	previous := standardOutput
	standardOutput = int(writer.Fd())
	defer func() {
		standardOutput = previous
	}()

	// Dump the maximum value exactly as the decdump entry point does and
	// verify that nothing beyond the expected 21 bytes was written.
	Dump(numeric.MaxUint64)
	writer.Close()
	output, err := io.ReadAll(reader)
	if err != nil {
		t.Fatal("unable to read pipe contents:", err)
	}
	if string(output) != "18446744073709551615\n" {
		t.Errorf("unexpected output: %q", output)
	}
	if len(output) != MaximumLength {
		t.Error("unexpected output length:", len(output))
	}
}
