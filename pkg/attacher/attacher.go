// Package attacher discovers a running process tree and attaches ptrace to
// every thread in it, the entry point into attach-to-tree mode.
package attacher

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/rifa-456/gotracer/pkg/tracer"
)

// Discover breadth-first walks /proc/<pid>/task/*/children starting from
// root, returning every thread and process identifier reachable from it
// (root included). A vanished /proc/<pid>/task directory during the walk
// (the process exited mid-scan) is tolerated by skipping that branch rather
// than failing the whole discovery.
func Discover(root int) []int {
	seen := map[int]struct{}{}
	queue := []int{root}

	for len(queue) > 0 {
		pid := queue[0]
		queue = queue[1:]

		taskDir := fmt.Sprintf("/proc/%d/task", pid)
		entries, err := os.ReadDir(taskDir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			tid, err := strconv.Atoi(entry.Name())
			if err != nil {
				continue
			}
			if _, ok := seen[tid]; ok {
				continue
			}
			seen[tid] = struct{}{}

			for _, child := range readChildren(filepath.Join(taskDir, entry.Name(), "children")) {
				if _, ok := seen[child]; !ok {
					queue = append(queue, child)
				}
			}
		}
	}

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	return ids
}

// readChildren parses a /proc/<pid>/task/<tid>/children file, a
// whitespace-separated list of child pids. A missing or unreadable file
// (the kernel build lacks CONFIG_CHECKPOINT_RESTORE, or the task exited)
// yields no children rather than an error.
func readChildren(path string) []int {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var out []int
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		pid, err := strconv.Atoi(sc.Text())
		if err != nil {
			continue
		}
		out = append(out, pid)
	}
	return out
}

// Attach issues PTRACE_ATTACH against every id, waits for its attach stop,
// and applies the shared option set. Identifiers that fail to attach (the
// process exited between discovery and attach, or permission was denied)
// are logged and skipped rather than aborting the whole run.
func Attach(ids []int) []int {
	attached := make([]int, 0, len(ids))
	for _, pid := range ids {
		if err := syscall.PtraceAttach(pid); err != nil {
			log.Warnf("attacher.Attach: PTRACE_ATTACH(%d) failed: %v", pid, err)
			continue
		}

		var ws syscall.WaitStatus
		if _, err := syscall.Wait4(pid, &ws, 0, nil); err != nil {
			log.Warnf("attacher.Attach: wait for pid %d failed: %v", pid, err)
			continue
		}

		if err := syscall.PtraceSetOptions(pid, tracer.Options); err != nil {
			log.Warnf("attacher.Attach: PTRACE_SETOPTIONS(%d) failed: %v", pid, err)
		}

		attached = append(attached, pid)
	}
	return attached
}
