package codegen

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/decdump/decdump/pkg/program"
	"github.com/decdump/decdump/pkg/toolchain"
)

// buildAndRun compiles p into a native executable and returns its output.
func buildAndRun(t *testing.T, p program.Program) string {
	t.Helper()

	// Locate the external tools, skipping if they're unavailable.
	tools, err := toolchain.Locate(toolchain.SearchPaths(), nil)
	if err != nil {
		t.Skip("assembler or linker unavailable:", err)
	}

	// Generate assembly.
	directory := t.TempDir()
	source := filepath.Join(directory, "out.asm")
	object := filepath.Join(directory, "out.o")
	executable := filepath.Join(directory, "out")
	assembly := &bytes.Buffer{}
	if err := Generate(assembly, p); err != nil {
		t.Fatal("unable to generate assembly:", err)
	}
	if err := os.WriteFile(source, assembly.Bytes(), 0600); err != nil {
		t.Fatal("unable to write assembly:", err)
	}

	// Build and run.
	ctx := context.Background()
	if err := tools.Assemble(ctx, source, object); err != nil {
		t.Fatal("unable to assemble:", err)
	}
	if err := tools.Link(ctx, object, executable); err != nil {
		t.Fatal("unable to link:", err)
	}
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	if code, err := toolchain.Run(ctx, executable, stdout, stderr); err != nil {
		t.Fatal("unable to run program:", err)
	} else if code != 0 {
		t.Fatal("program exited with code", code, stderr.String())
	}
	return stdout.String()
}

func TestCompiledExample(t *testing.T) {
	if output := buildAndRun(t, program.Example); output != "69\n420\n" {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestCompiledBoundaries(t *testing.T) {
	p := program.Program{
		program.Push(0), program.Dump(),
		program.Push(18446744073709551615), program.Dump(),
		program.Push(0), program.Push(1), program.Minus(), program.Dump(),
	}
	expected := "0\n18446744073709551615\n18446744073709551615\n"
	if output := buildAndRun(t, p); output != expected {
		t.Errorf("unexpected output: %q", output)
	}
}
