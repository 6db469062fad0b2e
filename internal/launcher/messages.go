// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"fmt"

	"github.com/invowk/jarrunner/internal/cmdline"
	"github.com/invowk/jarrunner/internal/issue"
	"github.com/invowk/jarrunner/internal/javaexe"
	"github.com/invowk/jarrunner/internal/mode"
	"github.com/invowk/jarrunner/internal/notify"
	"github.com/invowk/jarrunner/pkg/types"
)

const (
	titleNotFound   = "Java Not Found"
	titleDiagnostic = "Java Runner - Diagnostic Info"
	titleLaunch     = "Launch Error"
	titleUsage      = "Usage Error"

	usageText = "Usage: jarrunner [--cache-home=PATH] [--disable-cache] <jar-file> [args...]"

	examplesText = "Examples:\n" +
		"  jarrunner myapp.jar\n" +
		"  jarrunner --cache-home=/opt/jdk-25 myapp.jar --arg1 value1"
)

func notFoundMessage(err *javaexe.ResolutionError) notify.Message {
	var body string
	if err.FromOverride {
		body = fmt.Sprintf("Java not found at specified location:\n%s\n\nPlease check your %s path.",
			err.Path, cmdline.FlagCacheHome)
	} else {
		body = fmt.Sprintf("Java not found in PATH.\n\n"+
			"Please ensure Java is installed and added to PATH,\n"+
			"or use %s=/path/to/jdk to specify location.\n\n"+
			"Looking for: %s", cmdline.FlagCacheHome, err.Name)
	}
	return notify.Message{
		Kind:  notify.KindError,
		Title: titleNotFound,
		Body:  body,
		Issue: issue.Get(issue.RuntimeNotFoundId),
	}
}

func diagnosticMessage(ictx mode.InvocationContext, name string, path types.FilesystemPath) notify.Message {
	return notify.Message{
		Kind:  notify.KindInfo,
		Title: titleDiagnostic,
		Body: fmt.Sprintf("Execution Context: %s\n"+
			"Java Executable: %s\n"+
			"Java Location: %s\n"+
			"Status: Java detected successfully\n\n"+
			"%s\n\n%s", ictx, name, path, usageText, examplesText),
		Issue: issue.Get(issue.MissingArtifactId),
	}
}

func usageMessage(err *cmdline.UsageError) notify.Message {
	return notify.Message{
		Kind:  notify.KindError,
		Title: titleUsage,
		Body:  fmt.Sprintf("%s.\n\n%s", err.Reason, usageText),
		Issue: issue.Get(issue.MissingArtifactId),
	}
}

func launchMessage(err *LaunchError) notify.Message {
	code := "unknown"
	if err.HasCode {
		code = fmt.Sprint(err.Code)
	}
	return notify.Message{
		Kind:  notify.KindError,
		Title: titleLaunch,
		Body: fmt.Sprintf("Failed to launch Java process.\n\n"+
			"Java: %s\n"+
			"Command: %s\n"+
			"Error code: %s\n\n"+
			"Make sure Java is properly installed.", err.Executable, err.CommandLine, code),
		Issue: issue.Get(issue.LaunchFailedId),
	}
}
