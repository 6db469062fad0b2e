// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invowk/jarrunner/internal/cmdline"
	"github.com/invowk/jarrunner/internal/config"
	"github.com/invowk/jarrunner/internal/launcher"
	"github.com/invowk/jarrunner/internal/platform"
	"github.com/invowk/jarrunner/pkg/types"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// ConfigFileEnv names a config file that replaces the portable and per-user files.
const ConfigFileEnv = config.EnvPrefix + "_CONFIG"

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"

	// commandLine returns the raw launcher command line and its tokens.
	commandLine = cmdline.Current
)

func init() {
	// A double-click from Explorer is the GUI launch mode, not a mistake.
	cobra.MousetrapHelpText = ""
}

func newRootCommand(sw *launcher.Stopwatch) *cobra.Command {
	return &cobra.Command{
		Use:   "jarrunner [--cache-home=PATH] [--disable-cache] <jar-file> [args...]",
		Short: "Run a JAR file with java and a JDK AOT cache",
		Long: `jarrunner finds java (or javaw when double-clicked), keeps one AOT cache
file next to the JAR file, and runs the JAR with its arguments untouched.

  --cache-home=PATH  use PATH/bin/java instead of searching PATH
  --disable-cache    run without an AOT cache`,
		Version:            Version,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLauncher(cmd.Context(), sw)
		},
	}
}

// Execute runs jarrunner and exits with its exit code.
// This is called by main.main().
func Execute() {
	os.Exit(run())
}

// run executes the root command and maps its error to a process exit code.
func run() int {
	sw := launcher.StartStopwatch(nil)
	err := newRootCommand(sw).ExecuteContext(context.Background())
	if err == nil {
		return int(types.ExitSuccess)
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return int(exitErr.Code)
	}
	fmt.Fprintln(os.Stderr, err)
	return int(types.ExitFailure)
}

func runLauncher(ctx context.Context, sw *launcher.Stopwatch) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: config.AppName})
	line, tokens := commandLine()

	r := &launcher.Runner{
		Console:     platform.NewHostConsole(),
		LoadOptions: loadOptions(),
		Logger:      logger,
		Stopwatch:   sw,
	}
	code, err := r.Run(ctx, line, tokens)
	if err != nil && !errors.Is(err, launcher.ErrReported) {
		logger.Error("launch failed", "error", err)
	}
	if !code.IsSuccess() || err != nil {
		return &ExitError{Code: code, Err: err}
	}
	return nil
}

func loadOptions() config.LoadOptions {
	opts := config.LoadOptions{ConfigFilePath: os.Getenv(ConfigFileEnv)}
	if exe, err := os.Executable(); err == nil {
		opts.ExecutableDir = filepath.Dir(exe)
	}
	return opts
}
