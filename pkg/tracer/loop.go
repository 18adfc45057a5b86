// Package tracer implements the ptrace event loop: the state machine that
// classifies waitpid stops, advances per-tracee state, emits log records,
// and resumes tracees until none remain.
package tracer

import (
	"fmt"
	"runtime"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/rifa-456/gotracer/pkg/argfmt"
	"github.com/rifa-456/gotracer/pkg/regs"
	"github.com/rifa-456/gotracer/pkg/summary"
	"github.com/rifa-456/gotracer/pkg/syscallinfo"
	"github.com/rifa-456/gotracer/pkg/tracee"
	"github.com/rifa-456/gotracer/pkg/tracererr"
)

// Tracer drives the wait/classify/resume loop over a Tracee Table. The zero
// value is not usable; construct with New.
type Tracer struct {
	table       *tracee.Table
	launchedPID int // -1 unless set by SetLaunchedPID; see logExit's execve-failure check.
	log         *log.Logger
	Summary     *summary.Collector
}

// New builds a Tracer that logs to lg (nil selects logrus's standard
// logger) and reports syscall counts into a fresh summary.Collector.
func New(lg *log.Logger) *Tracer {
	if lg == nil {
		lg = log.StandardLogger()
	}
	return &Tracer{
		table:       tracee.New(),
		launchedPID: -1,
		log:         lg,
		Summary:     summary.New(),
	}
}

// Admit inserts ids into the Tracee Table before the loop starts. Every
// tracee identifier receiving events from the kernel must appear here
// before its next continuation.
func (t *Tracer) Admit(ids ...int) {
	for _, id := range ids {
		t.table.Insert(id)
	}
}

// SetLaunchedPID records the Launcher's initial forked child, used to
// detect the launched-program's execve failing outright. Attach-mode
// callers never call this, leaving the launched-pid check permanently
// disarmed.
func (t *Tracer) SetLaunchedPID(pid int) {
	t.launchedPID = pid
}

// Run repeatedly waits for any tracee to stop, classifies the stop, updates
// the table, emits at most one log record, and resumes with a continuation
// directive. It returns when the table empties, when waitpid reports no
// children left to wait for, or when the launched tracee's execve fails
// outright.
func (t *Tracer) Run() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	defer t.killRemaining()

	for !t.table.Empty() {
		var ws syscall.WaitStatus
		wpid, err := syscall.Wait4(-1, &ws, syscall.WALL, nil)
		if err != nil {
			if err == syscall.ECHILD {
				return nil
			}
			continue
		}

		c := classify(ws)
		switch c.kind {
		case stopTerminated:
			t.table.Remove(wpid)
			t.log.Infof("process %d exited (status=%d)", wpid, c.exitStatus)
			continue

		case stopSpurious:
			continue

		case stopPtraceEvent:
			if err := t.handlePtraceEvent(wpid, c.ptraceCode); err != nil {
				return err
			}
			continue

		case stopSyscallTrap:
			fatal, err := t.handleSyscallTrap(wpid)
			if err != nil {
				return err
			}
			if fatal {
				return nil
			}
			continue

		case stopSignalDelivery:
			t.resume(wpid, c.signal)
			continue
		}
	}

	return nil
}

// resume issues the syscall-continuation directive, optionally injecting
// sig so a forwarded signal actually reaches the tracee.
func (t *Tracer) resume(pid, sig int) {
	if err := syscall.PtraceSyscall(pid, sig); err != nil {
		t.log.Warnf("tracer.resume: PTRACE_SYSCALL(%d) failed: %v", pid, err)
	}
}

func (t *Tracer) handlePtraceEvent(pid, code int) error {
	switch code {
	case unix.PTRACE_EVENT_EXEC:
		if st := t.table.StateMut(pid); st != nil {
			st.InSyscall = false
			st.JustExeced = true
		}
		t.resume(pid, 0)

	case unix.PTRACE_EVENT_FORK, unix.PTRACE_EVENT_VFORK, unix.PTRACE_EVENT_CLONE:
		newPID, err := syscall.PtraceGetEventMsg(pid)
		if err != nil {
			t.log.Warnf("tracer.handlePtraceEvent: PTRACE_GETEVENTMSG(%d) failed: %v", pid, err)
			t.resume(pid, 0)
			return nil
		}
		child := int(newPID)
		if err := syscall.PtraceSetOptions(child, Options); err != nil {
			t.log.Warnf("tracer.handlePtraceEvent: PTRACE_SETOPTIONS(%d) failed: %v", child, err)
		}
		t.table.Insert(child)
		t.resume(pid, 0)
		t.resume(child, 0)

	default:
		t.resume(pid, 0)
	}

	return nil
}

// handleSyscallTrap implements the alternating entry/exit point at the
// heart of the loop. The bool result reports whether the loop must stop
// because the launched tracee's execve returned negative.
func (t *Tracer) handleSyscallTrap(pid int) (fatal bool, err error) {
	if !t.table.Contains(pid) {
		// A race with attachment: the kernel notified us before our own
		// insert landed. Resume and drop the event.
		t.resume(pid, 0)
		return false, nil
	}

	st := t.table.StateMut(pid)
	if !st.InSyscall {
		if st.JustExeced {
			st.JustExeced = false
		} else {
			t.logEntry(pid)
		}
		st.InSyscall = true
	} else {
		execFailed, execErr := t.logExit(pid)
		st.InSyscall = false
		if execFailed {
			return true, execErr
		}
	}

	t.resume(pid, 0)
	return false, nil
}

func (t *Tracer) logEntry(pid int) {
	snap, err := regs.Get(pid)
	if err != nil {
		t.log.Warnf("SYSCALL_ENTRY [PID:%d] could not get registers: %v", pid, err)
		return
	}

	info, ok := syscallinfo.Lookup(snap.SyscallNo)
	if !ok {
		hex := snap.ArgsHex()
		t.log.Infof("SYSCALL_ENTRY [PID:%d] --> syscall_%d(%#x, %#x, %#x, %#x, %#x, %#x)",
			pid, snap.SyscallNo, hex[0], hex[1], hex[2], hex[3], hex[4], hex[5])
		return
	}

	args := make([]string, info.ArgCount)
	for i := 0; i < info.ArgCount; i++ {
		args[i] = argfmt.Format(pid, info.ArgTypes[i], snap.Args[i])
	}
	t.log.Infof("SYSCALL_ENTRY [PID:%d] --> %s(%s)", pid, info.Name, strings.Join(args, ", "))
}

// logExit emits the exit record and reports whether this was the launched
// tracee's execve returning negative.
func (t *Tracer) logExit(pid int) (execFailed bool, err error) {
	snap, gerr := regs.Get(pid)
	if gerr != nil {
		t.log.Warnf("SYSCALL_EXIT  [PID:%d] could not get registers: %v", pid, gerr)
		return false, nil
	}

	info, ok := syscallinfo.Lookup(snap.SyscallNo)
	name := fmt.Sprintf("syscall_%d", snap.SyscallNo)
	if ok {
		name = info.Name
	}

	if pid == t.launchedPID && ok && info.Name == "execve" && snap.ReturnVal < 0 {
		execErr := syscall.Errno(-snap.ReturnVal)
		t.log.Infof("SYSCALL_EXIT  [PID:%d] <-- execve = %d (%s)", pid, snap.ReturnVal, execErr.Error())
		return true, tracererr.New("tracer.launcher-execve", tracererr.KindFatal, execErr)
	}

	t.log.Infof("SYSCALL_EXIT  [PID:%d] <-- %s = %s", pid, name, formatReturn(snap.ReturnVal))
	t.Summary.Record(name)
	return false, nil
}

// killRemaining releases any tracee still in the table when Run is about to
// return abnormally, so a mid-loop failure never leaves a tracee stopped
// and orphaned. On the normal path the table is already empty and this is
// a no-op.
func (t *Tracer) killRemaining() {
	for _, id := range t.table.IDs() {
		_ = syscall.Kill(id, syscall.SIGKILL)
	}
}
