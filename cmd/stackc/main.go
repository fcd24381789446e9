package main

import (
	"github.com/spf13/cobra"

	"github.com/decdump/decdump/cmd"
	"github.com/decdump/decdump/pkg/decdump"
	"github.com/decdump/decdump/pkg/logging"
)

// logger is the root logger, configured before any subcommand runs.
var logger *logging.Logger

// rootMain is the entry point for the root command.
func rootMain(command *cobra.Command, _ []string) error {
	// If no commands were given, then print help information and bail. We don't
	// have to worry about warning about arguments being present here (which
	// would be incorrect usage) because arguments can't even reach this point
	// (they will be mistaken for subcommands and an error will be displayed).
	return command.Help()
}

// configureLogging sets up the root logger using either the log level flag or
// the environment.
func configureLogging(command *cobra.Command, _ []string) error {
	level := rootConfiguration.logLevel
	if !command.Flags().Changed("log-level") {
		var err error
		if level, err = cmd.DefaultLogLevel(); err != nil {
			cmd.Warning(err.Error())
		}
	}
	logger = cmd.ConfigureLogging(level)
	return nil
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:               "stackc",
	Version:           decdump.Version,
	Short:             "A Forth-like stack language with an interpreter and a native compiler",
	RunE:              rootMain,
	PersistentPreRunE: configureLogging,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// logLevel is the log level specified on the command line.
	logLevel logging.Level
}

func init() {
	// Disable sorting in help output.
	cmd.DisableSorting(rootCommand)

	// Disable Cobra's use of mousetrap. The compiler is meant to be used from a
	// console anyway.
	cobra.MousetrapHelpText = ""

	// Set the template used by the version flag.
	rootCommand.SetVersionTemplate("stackc version {{ .Version }}\n")

	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Add the log level flag to all commands.
	rootConfiguration.logLevel = logging.LevelWarn
	rootCommand.PersistentFlags().Var(&rootConfiguration.logLevel, "log-level", "Set the log level (disabled|error|warn|info|debug|trace)")

	// Register commands. We do this here (rather than in individual init
	// functions) so that we can control the order.
	rootCommand.AddCommand(
		interpretCommand,
		compileCommand,
		versionCommand,
	)
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		cmd.Fatal(err)
	}
}
