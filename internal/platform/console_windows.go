// SPDX-License-Identifier: MPL-2.0

//go:build windows

package platform

import (
	"os"

	"golang.org/x/sys/windows"
)

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")
	user32   = windows.NewLazySystemDLL("user32.dll")

	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
	procFreeConsole      = kernel32.NewProc("FreeConsole")
	procAttachConsole    = kernel32.NewProc("AttachConsole")
	procShowWindow       = user32.NewProc("ShowWindow")
)

const (
	attachParentProcess = uintptr(^uint32(0)) // ATTACH_PARENT_PROCESS, (DWORD)-1
	swHide              = 0
	swShow              = 5
)

// HostConsole drives the Win32 console of the current process.
type HostConsole struct{}

// NewHostConsole returns the console capability for this process.
func NewHostConsole() *HostConsole {
	return &HostConsole{}
}

// HideOwn hides the console window Windows created for this process, if any.
func (*HostConsole) HideOwn() {
	showConsoleWindow(swHide)
}

// AttachParent releases the current console and attaches to the console of
// the parent process. On success the inherited window is made visible again
// and the standard handles are refreshed so that os.Stdout and friends point
// at the parent's console.
func (*HostConsole) AttachParent() bool {
	_, _, _ = procFreeConsole.Call()

	ok, _, _ := procAttachConsole.Call(attachParentProcess)
	if ok == 0 {
		return false
	}

	showConsoleWindow(swShow)
	refreshStdHandles()
	return true
}

func showConsoleWindow(cmd uintptr) {
	if procGetConsoleWindow.Find() != nil || procShowWindow.Find() != nil {
		return
	}
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd != 0 {
		_, _, _ = procShowWindow.Call(hwnd, cmd)
	}
}

// refreshStdHandles rebinds os.Stdin, os.Stdout and os.Stderr to the handles
// of the newly attached console. Handles that were redirected to files or
// pipes are left untouched by FreeConsole and come back unchanged.
func refreshStdHandles() {
	rebind := func(id uint32, name string, target **os.File) {
		h, err := windows.GetStdHandle(id)
		if err != nil || h == windows.InvalidHandle || h == 0 {
			return
		}
		*target = os.NewFile(uintptr(h), name)
	}
	rebind(windows.STD_INPUT_HANDLE, "/dev/stdin", &os.Stdin)
	rebind(windows.STD_OUTPUT_HANDLE, "/dev/stdout", &os.Stdout)
	rebind(windows.STD_ERROR_HANDLE, "/dev/stderr", &os.Stderr)
}
