// Package process provides utilities for locating and inspecting external
// processes such as the assembler and linker.
package process

// windowsExecutableExtension is the extension required for executables on
// Windows.
const windowsExecutableExtension = ".exe"

// ExecutableName computes the name for an executable for a given base name on a
// specified operating system.
func ExecutableName(base, goos string) string {
	if goos == "windows" {
		return base + windowsExecutableExtension
	}
	return base
}
