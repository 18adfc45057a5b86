// Package launcher starts a target program under ptrace control, the entry
// point into launch-and-trace mode.
package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/rifa-456/gotracer/pkg/tracer"
	"github.com/rifa-456/gotracer/pkg/tracererr"
)

// Start forks and execs name with args, requesting PTRACE_TRACEME on the
// child via SysProcAttr and asking the kernel to kill the child outright if
// this process dies first. It then waits out the child's initial post-exec
// SIGTRAP stop itself, applies the shared ptrace options, and resumes the
// child with PTRACE_SYSCALL, so the caller receives a child already running
// toward its next syscall-trap stop.
//
// A failure to fork/exec at all (bad path, not executable, permission
// denied) is caught synchronously by cmd.Start() before any ptrace call is
// ever made, and is reported here with tracererr.KindStartup — the
// tracer's own execve-failure detection in its event loop only ever sees a
// child that got far enough to be ptrace-stopped, so it cannot and does
// not fire for this case.
func Start(name string, args []string) (*exec.Cmd, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Ptrace:    true,
		Pdeathsig: syscall.SIGKILL,
	}

	if err := cmd.Start(); err != nil {
		return nil, tracererr.New("launcher.Start", tracererr.KindStartup, err)
	}

	pid := cmd.Process.Pid
	var ws syscall.WaitStatus
	if _, err := syscall.Wait4(pid, &ws, 0, nil); err != nil {
		return nil, tracererr.New("launcher.Start", tracererr.KindStartup,
			fmt.Errorf("initial wait for pid %d: %w", pid, err))
	}
	if !ws.Stopped() {
		return nil, tracererr.New("launcher.Start", tracererr.KindStartup,
			fmt.Errorf("pid %d did not stop after TRACEME+exec (status=%v)", pid, ws))
	}

	if err := syscall.PtraceSetOptions(pid, tracer.Options); err != nil {
		return nil, tracererr.New("launcher.Start", tracererr.KindStartup,
			fmt.Errorf("PTRACE_SETOPTIONS(%d): %w", pid, err))
	}

	if err := syscall.PtraceSyscall(pid, 0); err != nil {
		return nil, tracererr.New("launcher.Start", tracererr.KindStartup,
			fmt.Errorf("PTRACE_SYSCALL(%d): %w", pid, err))
	}

	log.Debugf("launcher.Start: launched %s %v --> pid=%d", name, args, pid)
	return cmd, nil
}
