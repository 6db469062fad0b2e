// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Common helpers include file fixtures (MustWriteFile, MustChtimes, ListDir),
// resource cleanup (MustClose, DeferClose), and a controllable FakeClock.
package testutil
