package core

import (
	"bytes"
	"strings"
	"testing"
)

type fakeScreen struct{ finis int }

func (f *fakeScreen) Fini() { f.finis++ }

func TestHandleCrashIgnoresNil(t *testing.T) {
	s := &fakeScreen{}
	SetCrashScreen(s)
	defer SetCrashScreen(nil)

	HandleCrash(nil)
	if s.finis != 0 {
		t.Fatalf("screen finalized %d times without a panic", s.finis)
	}
}

func TestGoRunsFunction(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })
	<-done
}

func TestCrashReportFormat(t *testing.T) {
	var buf bytes.Buffer
	writeCrashReport(&buf, "boom", []byte("goroutine 1 [running]:"))
	out := buf.String()
	if !strings.Contains(out, "CRASH DETECTED: boom") {
		t.Errorf("missing panic value in %q", out)
	}
	if !strings.Contains(out, "Stack Trace:\ngoroutine 1 [running]:") {
		t.Errorf("missing stack in %q", out)
	}
}
