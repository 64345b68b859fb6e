package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finisher restores a terminal, tcell.Screen satisfies it
type Finisher interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finisher
)

// SetCrashScreen registers the screen HandleCrash restores before reporting
// Passing nil clears it
func SetCrashScreen(s Finisher) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// HandleCrash restores the terminal, prints the panic with its stack and exits
// Intended as defer func() { core.HandleCrash(recover()) }()
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	if crashScreen != nil {
		crashScreen.Fini()
		crashScreen = nil
	}
	crashMu.Unlock()

	writeCrashReport(os.Stderr, r, debug.Stack())
	os.Exit(1)
}

func writeCrashReport(w io.Writer, r any, stack []byte) {
	fmt.Fprintf(w, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(w, "Stack Trace:\n%s\n", stack)
}

// Go runs fn in a new goroutine with panic recovery
func Go(fn func()) {
	go func() {
		defer func() {
			HandleCrash(recover())
		}()
		fn()
	}()
}
