// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/invowk/jarrunner/internal/aotcache"
	"github.com/invowk/jarrunner/internal/cmdline"
	"github.com/invowk/jarrunner/internal/config"
	"github.com/invowk/jarrunner/internal/issue"
	"github.com/invowk/jarrunner/internal/javaexe"
	"github.com/invowk/jarrunner/internal/mode"
	"github.com/invowk/jarrunner/internal/notify"
	"github.com/invowk/jarrunner/pkg/types"

	"github.com/charmbracelet/log"
)

// ErrReported marks failures that were already shown to the user; callers
// should exit with the returned code without printing anything else.
var ErrReported = errors.New("failure reported to user")

// Runner launches one JAR file. Zero-valued dependencies fall back to the
// host implementations, except Console which is required.
type Runner struct {
	Console     mode.Console
	Config      config.Provider
	LoadOptions config.LoadOptions
	Resolver    javaexe.Resolver
	Starter     Starter
	// NewNotifier picks the output channel once the mode is known.
	NewNotifier func(ictx mode.InvocationContext, logger *log.Logger) notify.Notifier
	Logger      *log.Logger
	Stopwatch   *Stopwatch
}

// Run executes the launch sequence for the raw command line and its tokens
// and returns the exit code for the launcher process. A non-nil error wraps
// ErrReported when the failure was already reported through a Notifier.
func (r *Runner) Run(ctx context.Context, line string, tokens []cmdline.Token) (types.ExitCode, error) {
	sw := r.Stopwatch
	if sw == nil {
		sw = StartStopwatch(nil)
	}
	startMicros := sw.ElapsedMicros()

	ictx := mode.Detect(r.Console)
	logger := r.logger()

	cfg := r.loadConfig(ctx, logger)
	ictx = cfg.Mode.Apply(ictx)
	logger.Debug("invocation context", "context", ictx.String())

	n := r.notifier(ictx, logger)

	inv, err := cmdline.ParseTokens(line, tokens)
	if err != nil {
		var usageErr *cmdline.UsageError
		if errors.As(err, &usageErr) {
			return r.report(n, usageMessage(usageErr), err)
		}
		return types.ExitFailure, err
	}

	home := cfg.RuntimeHome
	if inv.HasHome {
		home = inv.Home
	}
	name := cfg.Runtime.ExecutableFor(ictx.Interactive)
	exe, err := r.Resolver.Resolve(name, home)
	if err != nil {
		var resErr *javaexe.ResolutionError
		if errors.As(err, &resErr) {
			return r.report(n, notFoundMessage(resErr), err)
		}
		return types.ExitFailure, err
	}

	if !inv.HasArtifact() {
		return r.report(n, diagnosticMessage(ictx, name, exe), cmdline.ErrUsage)
	}

	var cache *cmdline.CacheDirective
	if cfg.Cache.Enabled && !inv.DisableCache {
		cache = r.prepareCache(inv.ArtifactPath(), cfg.Cache, logger)
	}

	builder := cmdline.Builder{OmitTiming: !cfg.Runtime.TimingProperties}
	spec := builder.Build(exe.String(), cmdline.Stamps{
		StartMicros:        startMicros,
		BeforeLaunchMicros: sw.ElapsedMicros(),
	}, cache, inv)
	logger.Debug("launching", "command", spec.CommandLine())

	result, err := Launch(ctx, r.starter(), spec, ictx)
	if err != nil {
		var launchErr *LaunchError
		if errors.As(err, &launchErr) {
			return r.report(n, launchMessage(launchErr), err)
		}
		return result.ExitCode, err
	}
	return result.ExitCode, nil
}

// prepareCache computes the cache entry for the artifact and removes stale
// entries. It returns nil when the artifact cannot be inspected, in which
// case the child runs without a cache option.
func (r *Runner) prepareCache(artifact string, cc config.CacheConfig, logger *log.Logger) *cmdline.CacheDirective {
	ref, err := aotcache.StatArtifact(artifact)
	if err != nil {
		logger.Debug("skipping AOT cache", "artifact", artifact, "error", err)
		return nil
	}
	entry := aotcache.BuildEntry(ref, string(cc.Extension))

	janitor := aotcache.NewJanitor(string(cc.Extension), logger)
	janitor.Lock = cc.Lock
	removed, err := janitor.Purge(ref, entry)
	if err != nil {
		logger.Warn("stale AOT cache cleanup failed", "dir", entry.Directory, "error", err)
	}
	for _, path := range removed {
		logger.Debug("removed stale AOT cache", "path", path)
	}

	return cmdline.NewCacheDirective(entry.Path(), entry.Exists)
}

// loadConfig returns the configuration to run with and applies its log
// level. A config file that cannot be used is reported as a warning and the
// defaults with environment overrides take its place.
func (r *Runner) loadConfig(ctx context.Context, logger *log.Logger) *config.Config {
	provider := r.Config
	if provider == nil {
		provider = config.NewProvider()
	}
	cfg, path, err := provider.Load(ctx, r.LoadOptions)
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if level, lvlErr := cfg.Log.Level.Level(); lvlErr == nil {
		logger.SetLevel(level)
	}
	if err != nil {
		r.warnConfig(logger, err)
		return cfg
	}
	if path != "" {
		logger.Debug("loaded configuration", "path", path)
	}
	return cfg
}

func (r *Runner) warnConfig(logger *log.Logger, err error) {
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		logger.Warn("ignoring configuration file", "error", err)
		return
	}
	logger.Warn("ignoring configuration file\n" + ae.Format(logger.GetLevel() <= log.DebugLevel))
	if iss := issue.IssueOf(err); iss != nil {
		logger.Debug(iss.Text())
	}
}

func (r *Runner) report(n notify.Notifier, msg notify.Message, cause error) (types.ExitCode, error) {
	if err := n.Notify(msg); err != nil {
		r.logger().Error("could not show message", "title", msg.Title, "error", err)
	}
	return types.ExitFailure, fmt.Errorf("%w: %w", ErrReported, cause)
}

func (r *Runner) notifier(ictx mode.InvocationContext, logger *log.Logger) notify.Notifier {
	if r.NewNotifier != nil {
		return r.NewNotifier(ictx, logger)
	}
	return notify.For(ictx, logger)
}

func (r *Runner) starter() Starter {
	if r.Starter != nil {
		return r.Starter
	}
	return ExecStarter{}
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		r.Logger = log.New(io.Discard)
	}
	return r.Logger
}
