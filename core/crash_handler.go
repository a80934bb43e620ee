// Package core provides crash-safe goroutines that restore the terminal before exiting
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.Mutex
	crashRestore func()
	crashOutput  io.Writer = os.Stderr
	crashExit              = os.Exit
)

// SetCrashHandler registers the terminal restore run before a crash report
// Passing nil clears it
func SetCrashHandler(restore func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashRestore = restore
}

// HandleCrash restores the terminal, prints the panic with its stack and exits 1
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	restore, out, exit := crashRestore, crashOutput, crashExit
	crashMu.Unlock()

	if restore != nil {
		restore()
	}

	fmt.Fprintf(out, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(out, "Stack Trace:\r\n%s\r\n", debug.Stack())

	exit(1)
}

// Go runs fn on a new goroutine with panic recovery
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
