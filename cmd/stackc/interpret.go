package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/decdump/decdump/cmd"
	"github.com/decdump/decdump/pkg/interpreter"
	"github.com/decdump/decdump/pkg/program"
)

// interpretMain is the entry point for the interpret command.
func interpretMain(_ *cobra.Command, arguments []string) error {
	// Load the program.
	p, err := program.ParseFile(arguments[0])
	if err != nil {
		return errors.Wrap(err, "unable to load program")
	}
	logger.Infof("loaded %d instruction(s) from %s", len(p), arguments[0])

	// Execute it.
	machine := interpreter.NewMachine(os.Stdout, logger.Sublogger("interpreter"))
	if err := machine.Execute(p); err != nil {
		return errors.Wrap(err, "execution failed")
	}
	if remaining := len(machine.Stack()); remaining > 0 {
		logger.Debugf("%d value(s) left on the stack", remaining)
	}

	// Success.
	return nil
}

// interpretCommand is the interpret command.
var interpretCommand = &cobra.Command{
	Use:          "interpret <file>",
	Short:        "Interpret a program directly",
	Args:         cobra.ExactArgs(1),
	Run:          cmd.Mainify(interpretMain),
	SilenceUsage: true,
}

// interpretConfiguration stores configuration for the interpret command.
var interpretConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := interpretCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&interpretConfiguration.help, "help", "h", false, "Show help information")
}
