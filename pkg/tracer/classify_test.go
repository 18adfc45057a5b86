package tracer

import (
	"syscall"
	"testing"

	"golang.org/x/sys/unix"
)

// makeStopped builds a raw wait status word for a stopped tracee: the low
// byte is 0x7f (WIFSTOPPED's tag), the next byte is the stop signal, and
// the high 16 bits carry the ptrace event code, mirroring the kernel's own
// wait status layout.
func makeStopped(stopSig, event int) syscall.WaitStatus {
	raw := uint32(0x7f) | uint32(stopSig&0xff)<<8 | uint32(event)<<16
	return syscall.WaitStatus(raw)
}

func TestClassifySyscallTrap(t *testing.T) {
	ws := makeStopped(int(syscallTrapSignal), 0)
	c := classify(ws)
	if c.kind != stopSyscallTrap {
		t.Fatalf("kind = %v, want stopSyscallTrap", c.kind)
	}
}

func TestClassifyPtraceEventTakesPriority(t *testing.T) {
	ws := makeStopped(int(syscall.SIGTRAP), unix.PTRACE_EVENT_EXEC)
	c := classify(ws)
	if c.kind != stopPtraceEvent {
		t.Fatalf("kind = %v, want stopPtraceEvent", c.kind)
	}
	if c.ptraceCode != unix.PTRACE_EVENT_EXEC {
		t.Fatalf("ptraceCode = %v, want PTRACE_EVENT_EXEC", c.ptraceCode)
	}
}

func TestClassifyForwardedSignal(t *testing.T) {
	ws := makeStopped(int(syscall.SIGWINCH), 0)
	c := classify(ws)
	if c.kind != stopSignalDelivery {
		t.Fatalf("kind = %v, want stopSignalDelivery", c.kind)
	}
	if c.signal != int(syscall.SIGWINCH) {
		t.Fatalf("signal = %v, want SIGWINCH", c.signal)
	}
}

func TestClassifyExited(t *testing.T) {
	// WIFEXITED: low byte zero, exit status in the next byte.
	raw := uint32(42) << 8
	ws := syscall.WaitStatus(raw)
	c := classify(ws)
	if c.kind != stopTerminated {
		t.Fatalf("kind = %v, want stopTerminated", c.kind)
	}
	if c.exitStatus != 42 {
		t.Fatalf("exitStatus = %v, want 42", c.exitStatus)
	}
}

func TestClassifySignaled(t *testing.T) {
	// WIFSIGNALED: low 7 bits are the terminating signal, not 0 and not 0x7f.
	raw := uint32(syscall.SIGKILL)
	ws := syscall.WaitStatus(raw)
	c := classify(ws)
	if c.kind != stopTerminated {
		t.Fatalf("kind = %v, want stopTerminated", c.kind)
	}
}
