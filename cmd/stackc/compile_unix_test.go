//go:build unix

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/decdump/decdump/cmd"
	"github.com/decdump/decdump/pkg/decdump"
)

func TestCompileRunPropagatesExitCode(t *testing.T) {
	// Create stand-in tools. The linker produces a program that exits with a
	// non-zero code.
	tools := t.TempDir()
	scripts := map[string]string{
		"nasm": "#!/bin/sh\n",
		"ld":   "#!/bin/sh\nprintf '#!/bin/sh\\nexit 5\\n' > \"$2\"\nchmod +x \"$2\"\n",
	}
	for name, body := range scripts {
		if err := os.WriteFile(filepath.Join(tools, name), []byte(body), 0700); err != nil {
			t.Fatal("unable to write script:", err)
		}
	}
	t.Setenv(decdump.ToolPathEnvironmentVariable, tools)

	// Write the program source.
	directory := t.TempDir()
	source := filepath.Join(directory, "program.stack")
	if err := os.WriteFile(source, []byte("1 ."), 0600); err != nil {
		t.Fatal("unable to write program source:", err)
	}

	// Configure and run the command.
	previous := compileConfiguration
	defer func() {
		compileConfiguration = previous
	}()
	compileConfiguration.output = filepath.Join(directory, "out")
	compileConfiguration.run = true
	compileConfiguration.clean = true
	err := compileMain(compileCommand, []string{source})
	if code, ok := cmd.ExitCode(err); !ok {
		t.Fatal("expected exit code error, got:", err)
	} else if code != 5 {
		t.Error("unexpected exit code:", code)
	}

	// Intermediate files are removed before the program runs.
	if _, err := os.Stat(compileConfiguration.output + ".asm"); !os.IsNotExist(err) {
		t.Error("assembly file not removed")
	}
}
