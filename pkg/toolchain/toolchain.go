// Package toolchain drives the external assembler and linker used to turn
// generated assembly into a native executable.
package toolchain

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/decdump/decdump/pkg/decdump"
	"github.com/decdump/decdump/pkg/logging"
	"github.com/decdump/decdump/pkg/platform/terminal"
	"github.com/decdump/decdump/pkg/process"
)

const (
	// assemblerName is the name of the assembler executable.
	assemblerName = "nasm"
	// linkerName is the name of the linker executable.
	linkerName = "ld"
)

// SearchPaths returns the directories searched for tools: the directory named
// by the tool path environment variable (if any) followed by the entries of
// PATH.
func SearchPaths() []string {
	var paths []string
	if extra := os.Getenv(decdump.ToolPathEnvironmentVariable); extra != "" {
		paths = append(paths, extra)
	}
	return append(paths, filepath.SplitList(os.Getenv("PATH"))...)
}

// Toolchain is a located assembler and linker pair.
type Toolchain struct {
	// assembler is the path to the assembler.
	assembler string
	// linker is the path to the linker.
	linker string
	// logger is the underlying logger.
	logger *logging.Logger
}

// Locate finds the assembler and linker within the specified directories.
func Locate(paths []string, logger *logging.Logger) (*Toolchain, error) {
	assembler, err := process.FindCommand(assemblerName, paths)
	if err != nil {
		return nil, errors.Wrap(err, "unable to locate assembler")
	}
	linker, err := process.FindCommand(linkerName, paths)
	if err != nil {
		return nil, errors.Wrap(err, "unable to locate linker")
	}
	logger.Debugf("using assembler %s and linker %s", assembler, linker)
	return &Toolchain{
		assembler: assembler,
		linker:    linker,
		logger:    logger,
	}, nil
}

// invoke runs a tool to completion, logging its output line by line at debug
// level. On failure, the error includes the tool's exit code and any output it
// produced.
func (t *Toolchain) invoke(ctx context.Context, tool string, arguments ...string) error {
	// Set up the tool with its output captured and logged.
	t.logger.Tracef("running %s %v", tool, arguments)
	command := exec.CommandContext(ctx, tool, arguments...)
	output := &bytes.Buffer{}
	combined := io.MultiWriter(output, terminal.NewNeutralizingWriter(t.logger.Writer(logging.LevelDebug)))
	command.Stdout = combined
	command.Stderr = combined

	// Run the tool.
	err := command.Run()
	if err == nil {
		return nil
	}

	// Format the failure.
	message := terminal.NeutralizeControlCharacters(string(bytes.TrimSpace(output.Bytes())))
	if code, codeErr := process.ExitCodeForError(err); codeErr == nil {
		if message != "" {
			return errors.Errorf("%s exited with code %d: %s", filepath.Base(tool), code, message)
		}
		return errors.Errorf("%s exited with code %d", filepath.Base(tool), code)
	}
	return errors.Wrapf(err, "unable to run %s", filepath.Base(tool))
}

// Assemble assembles the NASM source at source into a 64-bit ELF object file
// at object.
func (t *Toolchain) Assemble(ctx context.Context, source, object string) error {
	if err := t.invoke(ctx, t.assembler, "-felf64", "-o", object, source); err != nil {
		return errors.Wrap(err, "assembly failed")
	}
	return nil
}

// Link links the object file at object into an executable at executable.
func (t *Toolchain) Link(ctx context.Context, object, executable string) error {
	if err := t.invoke(ctx, t.linker, "-o", executable, object); err != nil {
		return errors.Wrap(err, "linking failed")
	}
	return nil
}

// Run executes the program at executable, connecting its output streams to
// stdout and stderr. It returns the program's exit code if the program ran.
func Run(ctx context.Context, executable string, stdout, stderr io.Writer) (int, error) {
	// Resolve the path so that it isn't subject to a PATH search.
	path, err := filepath.Abs(executable)
	if err != nil {
		return 0, errors.Wrap(err, "unable to resolve executable path")
	}

	// Run the program.
	command := exec.CommandContext(ctx, path)
	command.Stdout = stdout
	command.Stderr = stderr
	if err := command.Run(); err != nil {
		if code, codeErr := process.ExitCodeForError(err); codeErr == nil {
			return code, nil
		}
		return 0, errors.Wrap(err, "unable to run program")
	}

	// Success.
	return 0, nil
}
