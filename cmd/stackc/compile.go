package main

import (
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/decdump/decdump/cmd"
	"github.com/decdump/decdump/pkg/codegen"
	"github.com/decdump/decdump/pkg/must"
	"github.com/decdump/decdump/pkg/program"
	"github.com/decdump/decdump/pkg/toolchain"
)

// writeAssembly generates assembly for p and stores it at path, returning the
// number of bytes written.
func writeAssembly(path string, p program.Program) (uint64, error) {
	// Create the output file.
	file, err := os.Create(path)
	if err != nil {
		return 0, errors.Wrap(err, "unable to create assembly file")
	}

	// Generate into it.
	if err := codegen.Generate(file, p); err != nil {
		must.Close(file, logger)
		return 0, err
	}

	// Compute the size and close the file.
	metadata, err := file.Stat()
	if err != nil {
		must.Close(file, logger)
		return 0, errors.Wrap(err, "unable to query assembly file metadata")
	}
	if err := file.Close(); err != nil {
		return 0, errors.Wrap(err, "unable to close assembly file")
	}
	return uint64(metadata.Size()), nil
}

// compileMain is the entry point for the compile command.
func compileMain(_ *cobra.Command, arguments []string) error {
	// Set up cancellation on termination signals.
	ctx, cancel := cmd.TerminationContext()
	defer cancel()

	// Load the program.
	p, err := program.ParseFile(arguments[0])
	if err != nil {
		return errors.Wrap(err, "unable to load program")
	}
	logger.Infof("loaded %d instruction(s) from %s", len(p), arguments[0])

	// Generate assembly.
	output := compileConfiguration.output
	source := output + ".asm"
	object := output + ".o"
	size, err := writeAssembly(source, p)
	if err != nil {
		return errors.Wrap(err, "code generation failed")
	}
	logger.Infof("wrote %s of assembly to %s", humanize.Bytes(size), source)

	// Build the executable.
	tools, err := toolchain.Locate(toolchain.SearchPaths(), logger.Sublogger("toolchain"))
	if err != nil {
		return err
	}
	if err := tools.Assemble(ctx, source, object); err != nil {
		return err
	}
	if err := tools.Link(ctx, object, output); err != nil {
		return err
	}
	if metadata, err := os.Stat(output); err == nil {
		logger.Infof("built %s (%s)", output, humanize.Bytes(uint64(metadata.Size())))
	}

	// Remove intermediate files if requested.
	if compileConfiguration.clean {
		must.OSRemove(source, logger)
		must.OSRemove(object, logger)
	}

	// Run the program if requested, propagating its exit code.
	if compileConfiguration.run {
		code, err := toolchain.Run(ctx, output, os.Stdout, os.Stderr)
		if err != nil {
			return err
		} else if code != 0 {
			return &cmd.ExitCodeError{Code: code}
		}
	}

	// Success.
	return nil
}

// compileCommand is the compile command.
var compileCommand = &cobra.Command{
	Use:          "compile <file>",
	Short:        "Compile a program into a native x86-64 Linux executable",
	Args:         cobra.ExactArgs(1),
	Run:          cmd.Mainify(compileMain),
	SilenceUsage: true,
}

// compileConfiguration stores configuration for the compile command.
var compileConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// run indicates whether or not to run the program after building it.
	run bool
	// output is the path of the executable to build. Intermediate files are
	// created alongside it with .asm and .o extensions.
	output string
	// clean indicates whether or not to remove intermediate files after
	// linking.
	clean bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := compileCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&compileConfiguration.help, "help", "h", false, "Show help information")

	// Wire up compilation flags.
	flags.BoolVarP(&compileConfiguration.run, "run", "r", false, "Run the program after compiling")
	flags.StringVarP(&compileConfiguration.output, "output", "o", "out", "Specify the output executable path")
	flags.BoolVar(&compileConfiguration.clean, "clean", false, "Remove intermediate assembly and object files after linking")
}
