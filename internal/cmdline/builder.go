// SPDX-License-Identifier: MPL-2.0

package cmdline

import (
	"strconv"
	"strings"
)

const (
	// DefaultPropertyPrefix namespaces the timing system properties.
	DefaultPropertyPrefix = "jarrunner"
	// InvocationMarker is the java switch that runs a JAR file.
	InvocationMarker = "-jar"

	useCacheOption     = "-XX:AOTCache="
	produceCacheOption = "-XX:AOTCacheOutput="
)

// CacheMode selects between reading and producing an AOT cache.
type CacheMode int

const (
	// UseCache points the JVM at an existing cache file.
	UseCache CacheMode = iota
	// ProduceCache asks the JVM to write the cache file on exit.
	ProduceCache
)

type (
	// CacheDirective is the optional AOT cache option of the child command.
	CacheDirective struct {
		Mode CacheMode
		Path string
	}

	// Stamps are the elapsed-time readings, in microseconds, passed to the
	// child as system properties.
	Stamps struct {
		// StartMicros is taken when the launcher starts.
		StartMicros int64
		// BeforeLaunchMicros is taken right before the child is spawned.
		BeforeLaunchMicros int64
	}

	// Builder assembles CommandSpecs.
	Builder struct {
		// PropertyPrefix namespaces the timing properties; empty means DefaultPropertyPrefix.
		PropertyPrefix string
		// OmitTiming drops the timing properties entirely.
		OmitTiming bool
	}

	// CommandSpec is the fully assembled child command. It is built once and
	// not modified afterwards.
	CommandSpec struct {
		ExecutablePath   string
		Properties       []string
		Cache            *CacheDirective
		InvocationMarker string
		// ForwardedArgs is the artifact token and the arguments after it, as
		// they appeared on the launcher's command line.
		ForwardedArgs string

		forwarded []string
	}
)

// NewCacheDirective returns the directive for a cache file at path; exists
// selects between using and producing it.
func NewCacheDirective(path string, exists bool) *CacheDirective {
	if exists {
		return &CacheDirective{Mode: UseCache, Path: path}
	}
	return &CacheDirective{Mode: ProduceCache, Path: path}
}

// Build returns the child command for inv. cache may be nil.
func (b Builder) Build(executable string, stamps Stamps, cache *CacheDirective, inv *Invocation) CommandSpec {
	spec := CommandSpec{
		ExecutablePath:   executable,
		Cache:            cache,
		InvocationMarker: InvocationMarker,
		ForwardedArgs:    inv.Forwarded(),
		forwarded:        inv.ForwardedArgs(),
	}
	if !b.OmitTiming {
		prefix := b.PropertyPrefix
		if prefix == "" {
			prefix = DefaultPropertyPrefix
		}
		spec.Properties = []string{
			"-D" + prefix + ".start.micros=" + strconv.FormatInt(stamps.StartMicros, 10),
			"-D" + prefix + ".beforejvm.micros=" + strconv.FormatInt(stamps.BeforeLaunchMicros, 10),
		}
	}
	return spec
}

// CommandLine renders the spec as a single command line in the fixed order
// executable, properties, cache directive, marker, forwarded arguments.
func (s CommandSpec) CommandLine() string {
	parts := make([]string, 0, len(s.Properties)+4)
	parts = append(parts, `"`+s.ExecutablePath+`"`)
	parts = append(parts, s.Properties...)
	if s.Cache != nil {
		parts = append(parts, s.Cache.Render(true))
	}
	parts = append(parts, s.InvocationMarker)
	if s.ForwardedArgs != "" {
		parts = append(parts, s.ForwardedArgs)
	}
	return strings.Join(parts, " ")
}

// Argv renders the spec as an argument vector in the same order as
// CommandLine. Paths are not quoted and forwarded arguments are unquoted.
func (s CommandSpec) Argv() []string {
	argv := make([]string, 0, len(s.Properties)+len(s.forwarded)+3)
	argv = append(argv, s.ExecutablePath)
	argv = append(argv, s.Properties...)
	if s.Cache != nil {
		argv = append(argv, s.Cache.Render(false))
	}
	argv = append(argv, s.InvocationMarker)
	argv = append(argv, s.forwarded...)
	return argv
}

// Render returns the JVM option. With quote set the path is wrapped in
// double quotes for use in a raw command line.
func (d CacheDirective) Render(quote bool) string {
	option := useCacheOption
	if d.Mode == ProduceCache {
		option = produceCacheOption
	}
	if quote {
		return option + `"` + d.Path + `"`
	}
	return option + d.Path
}
