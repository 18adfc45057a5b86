package tracer

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// Options is the ptrace option bitmask applied to every tracee, by the
// Launcher, the Attacher, and to every newly admitted fork/vfork/clone
// child inside the event loop itself: syscall-trap stops tagged with the
// "syscall-good" high bit, trace clone/fork/vfork/exec, and kill every
// tracee if the tracer itself dies.
const Options = unix.PTRACE_O_TRACESYSGOOD |
	unix.PTRACE_O_TRACECLONE |
	unix.PTRACE_O_TRACEFORK |
	unix.PTRACE_O_TRACEVFORK |
	unix.PTRACE_O_TRACEEXEC |
	unix.PTRACE_O_EXITKILL

// syscallTrapSignal is the stop signal value a syscall-trap stop carries
// once PTRACE_O_TRACESYSGOOD is in effect: SIGTRAP with its high bit set.
const syscallTrapSignal = syscall.SIGTRAP | 0x80
