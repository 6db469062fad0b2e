// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// RuntimeExecutables returns the default file names of the console-capable
// and the windowed Java launcher for the current host. Only Windows ships a
// separate windowed launcher; elsewhere both variants are plain "java".
func RuntimeExecutables() (console, windowed string) {
	return runtimeExecutablesFor(runtime.GOOS)
}

func runtimeExecutablesFor(goos string) (console, windowed string) {
	if goos == Windows {
		return "java.exe", "javaw.exe"
	}
	return "java", "java"
}
