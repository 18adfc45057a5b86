package tracer

import (
	"io"
	"testing"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

func newTestTracer() *Tracer {
	lg := log.New()
	lg.SetOutput(io.Discard)
	return New(lg)
}

// invalidPID is never a real process, so regs.Get and the ptrace syscalls
// handleSyscallTrap/handlePtraceEvent issue against it fail and are logged
// as warnings rather than propagated, letting the state-machine transitions
// be exercised without a live tracee.
const invalidPID = 999999999

func TestHandleSyscallTrapUntrackedPidIsDroppedNotFatal(t *testing.T) {
	tr := newTestTracer()

	fatal, err := tr.handleSyscallTrap(invalidPID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fatal {
		t.Fatal("an untracked pid must never be reported fatal")
	}
	if tr.table.Contains(invalidPID) {
		t.Fatal("handleSyscallTrap must not admit an untracked pid into the table")
	}
}

func TestHandleSyscallTrapTogglesInSyscall(t *testing.T) {
	tr := newTestTracer()
	tr.table.Insert(invalidPID)

	fatal, err := tr.handleSyscallTrap(invalidPID)
	if err != nil || fatal {
		t.Fatalf("unexpected result on entry stop: fatal=%v err=%v", fatal, err)
	}
	st := tr.table.StateMut(invalidPID)
	if !st.InSyscall {
		t.Fatal("first syscall-trap stop for a tracked pid should mark InSyscall")
	}

	fatal, err = tr.handleSyscallTrap(invalidPID)
	if err != nil || fatal {
		t.Fatalf("unexpected result on exit stop: fatal=%v err=%v", fatal, err)
	}
	if st.InSyscall {
		t.Fatal("second syscall-trap stop should clear InSyscall")
	}
}

func TestHandleSyscallTrapSuppressesEntryAfterExec(t *testing.T) {
	tr := newTestTracer()
	tr.table.Insert(invalidPID)
	tr.table.StateMut(invalidPID).JustExeced = true

	fatal, err := tr.handleSyscallTrap(invalidPID)
	if err != nil || fatal {
		t.Fatalf("unexpected result: fatal=%v err=%v", fatal, err)
	}

	st := tr.table.StateMut(invalidPID)
	if st.JustExeced {
		t.Fatal("JustExeced should be cleared by the first syscall-trap stop after exec")
	}
	if !st.InSyscall {
		t.Fatal("the suppressed entry stop still counts as entering a syscall")
	}
}

func TestHandlePtraceEventExecMarksJustExeced(t *testing.T) {
	tr := newTestTracer()
	tr.table.Insert(invalidPID)
	tr.table.StateMut(invalidPID).InSyscall = true

	if err := tr.handlePtraceEvent(invalidPID, unix.PTRACE_EVENT_EXEC); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := tr.table.StateMut(invalidPID)
	if !st.JustExeced {
		t.Fatal("PTRACE_EVENT_EXEC should set JustExeced")
	}
	if st.InSyscall {
		t.Fatal("PTRACE_EVENT_EXEC should clear InSyscall")
	}
}

func TestHandlePtraceEventForkFailsClosedWithoutNewChild(t *testing.T) {
	tr := newTestTracer()
	tr.table.Insert(invalidPID)

	if err := tr.handlePtraceEvent(invalidPID, unix.PTRACE_EVENT_FORK); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.table.Len() != 1 {
		t.Fatalf("a failed PTRACE_GETEVENTMSG must not admit a phantom child, table len = %d", tr.table.Len())
	}
}
