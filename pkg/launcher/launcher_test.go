package launcher

import (
	"errors"
	"testing"

	"github.com/rifa-456/gotracer/pkg/tracererr"
)

// A launch target that does not exist fails inside cmd.Start(), before any
// ptrace call is made and before a Tracer exists to observe an execve
// syscall exit. That failure surfaces here as a KindStartup error, not the
// KindFatal "launched tracee's execve returned negative" error the event
// loop's logExit reports for a target that DID reach the kernel's exec
// path and failed there.
func TestStartNonexistentProgramReturnsStartupError(t *testing.T) {
	cmd, err := Start("/no/such/program/gotracer-test-fixture", nil)
	if err == nil {
		t.Fatal("expected an error launching a nonexistent program")
	}
	if cmd != nil {
		t.Fatal("expected a nil *exec.Cmd on failure")
	}

	var terr *tracererr.Error
	if !errors.As(err, &terr) {
		t.Fatalf("expected a *tracererr.Error, got %T: %v", err, err)
	}
	if terr.Kind != tracererr.KindStartup {
		t.Fatalf("Kind = %v, want %v", terr.Kind, tracererr.KindStartup)
	}
}
