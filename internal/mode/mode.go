// SPDX-License-Identifier: MPL-2.0

// Package mode decides whether jarrunner was started from a terminal or from
// a non-interactive context such as an Explorer double-click.
package mode

import (
	"errors"
	"fmt"
)

const (
	// OverrideAuto keeps the detected mode.
	OverrideAuto Override = "auto"
	// OverrideConsole forces interactive (console) mode.
	OverrideConsole Override = "console"
	// OverrideGUI forces non-interactive (GUI) mode.
	OverrideGUI Override = "gui"
)

// ErrInvalidOverride is the sentinel error wrapped by InvalidOverrideError.
var ErrInvalidOverride = errors.New("invalid mode override")

type (
	// Console is the narrow host capability the detector needs.
	Console interface {
		// HideOwn hides any console window already associated with this process.
		HideOwn()
		// AttachParent detaches from the current console and tries to attach
		// to the parent's. On success the attached console is visible.
		AttachParent() bool
	}

	// InvocationContext is produced once per run and never changes afterwards.
	InvocationContext struct {
		// Interactive is true when a controlling terminal was inherited.
		Interactive bool
	}

	// Override lets configuration force a mode after detection has run.
	Override string

	// InvalidOverrideError is returned when an Override value is not recognized.
	InvalidOverrideError struct {
		Value Override
	}
)

// Detect probes the console exactly once. It must run before anything is
// written to the standard streams: the console is hidden first so that a
// GUI launch never flashes a window, and is only shown again when the parent
// console could be attached.
func Detect(c Console) InvocationContext {
	c.HideOwn()
	return InvocationContext{Interactive: c.AttachParent()}
}

// Apply returns the context after applying the override.
func (o Override) Apply(ictx InvocationContext) InvocationContext {
	switch o {
	case OverrideConsole:
		return InvocationContext{Interactive: true}
	case OverrideGUI:
		return InvocationContext{Interactive: false}
	default:
		return ictx
	}
}

// Validate returns an error if the Override is not one of the known values.
// The empty value behaves like OverrideAuto.
func (o Override) Validate() error {
	switch o {
	case "", OverrideAuto, OverrideConsole, OverrideGUI:
		return nil
	default:
		return &InvalidOverrideError{Value: o}
	}
}

// String returns a human-readable label for the context.
func (c InvocationContext) String() string {
	if c.Interactive {
		return "Console (terminal)"
	}
	return "GUI (double-clicked)"
}

// Error implements the error interface.
func (e *InvalidOverrideError) Error() string {
	return fmt.Sprintf("invalid mode %q (valid: auto, console, gui)", e.Value)
}

// Unwrap returns ErrInvalidOverride for errors.Is() compatibility.
func (e *InvalidOverrideError) Unwrap() error { return ErrInvalidOverride }
