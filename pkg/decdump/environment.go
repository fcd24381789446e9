package decdump

import (
	"os"
)

const (
	// LogLevelEnvironmentVariable is the environment variable used to specify
	// the default log level for stackc.
	LogLevelEnvironmentVariable = "STACKC_LOG_LEVEL"
	// ToolPathEnvironmentVariable is the environment variable used to specify
	// an additional directory to search for the assembler and linker.
	ToolPathEnvironmentVariable = "STACKC_TOOL_PATH"
)

// DebugEnabled controls whether or not debug logging is enabled by default. It
// is set automatically based on the STACKC_DEBUG environment variable.
var DebugEnabled bool

func init() {
	// Check whether or not debugging should be enabled.
	DebugEnabled = os.Getenv("STACKC_DEBUG") == "1"
}
