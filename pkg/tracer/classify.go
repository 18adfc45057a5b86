package tracer

import "syscall"

// stopKind discriminates the event classes the wait status word can carry
// (termination, ptrace event, syscall trap, other signal stop, and a
// catch-all for a status that is none of these), avoiding the
// nested-conditional trap that can silently drop a case.
type stopKind int

const (
	stopTerminated stopKind = iota
	stopSpurious
	stopPtraceEvent
	stopSyscallTrap
	stopSignalDelivery
)

// classified is the result of destructuring one wait status word.
type classified struct {
	kind       stopKind
	exitStatus int  // valid when kind == stopTerminated
	ptraceCode int  // valid when kind == stopPtraceEvent: PTRACE_EVENT_*
	signal     int  // valid when kind == stopSignalDelivery: the signal to forward
}

// classify destructures a wait status exactly once into a tagged variant:
// ptrace-event stops take priority over signal/syscall-trap stops, matching
// kernel wait(2) semantics where a nonzero event code in the high bits
// always accompanies a plain SIGTRAP.
func classify(ws syscall.WaitStatus) classified {
	if ws.Exited() {
		return classified{kind: stopTerminated, exitStatus: ws.ExitStatus()}
	}
	if ws.Signaled() {
		return classified{kind: stopTerminated, exitStatus: 128 + int(ws.Signal())}
	}
	if !ws.Stopped() {
		return classified{kind: stopSpurious}
	}

	event := int(uint32(ws) >> 16)
	if event != 0 {
		return classified{kind: stopPtraceEvent, ptraceCode: event}
	}

	if ws.StopSignal() == syscallTrapSignal {
		return classified{kind: stopSyscallTrap}
	}

	return classified{kind: stopSignalDelivery, signal: int(ws.StopSignal())}
}
