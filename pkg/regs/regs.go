// Package regs fetches a stopped tracee's x86-64 general-purpose register
// file, the source of both syscall arguments and return values.
package regs

import (
	"errors"
	"syscall"
)

// ErrVanished is returned in place of the raw ESRCH error when the tracee
// has already exited between its stop notification and this call — the
// event loop must treat this as a recoverable, per-tracee condition rather
// than crash.
var ErrVanished = errors.New("tracee vanished before registers could be read")

// Snapshot is the subset of the GPR frame the tracer cares about: the six
// System V argument registers in calling-convention order, the original
// syscall number (orig_rax survives the kernel clobbering rax with the
// return value), and the return register.
type Snapshot struct {
	Args      [6]int64
	SyscallNo int64
	ReturnVal int64
}

// Get fetches the full register frame for pid and reduces it to a Snapshot.
func Get(pid int) (Snapshot, error) {
	var raw syscall.PtraceRegs
	if err := syscall.PtraceGetRegs(pid, &raw); err != nil {
		if errors.Is(err, syscall.ESRCH) {
			return Snapshot{}, ErrVanished
		}
		return Snapshot{}, err
	}

	return Snapshot{
		Args: [6]int64{
			int64(raw.Rdi),
			int64(raw.Rsi),
			int64(raw.Rdx),
			int64(raw.R10),
			int64(raw.R8),
			int64(raw.R9),
		},
		SyscallNo: int64(raw.Orig_rax),
		ReturnVal: int64(raw.Rax),
	}, nil
}

// ArgsHex returns the six raw argument registers reinterpreted as unsigned
// values, which the caller prints in hex when logging calls to syscall
// numbers absent from the catalog.
func (s Snapshot) ArgsHex() [6]uint64 {
	var out [6]uint64
	for i, v := range s.Args {
		out[i] = uint64(v)
	}
	return out
}
