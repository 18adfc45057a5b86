// Command gensyscalls prints the number/name skeleton of pkg/syscallinfo's
// catalog from a kernel checkout's arch/x86/entry/syscalls/syscall_64.tbl.
// It does not read include/linux/syscalls.h: argument types are not
// extracted and must be filled in by hand. It is not part of the build; run
// it manually against a local kernel source tree when the catalog needs to
// track a newer kernel.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var tablePattern = regexp.MustCompile(`^(\d+)\s+(\w+)\s+([a-zA-Z0-9_]+)\s+([a-zA-Z0-9_]+)`)

type entry struct {
	number int64
	name   string
}

func parseSyscallTable(kernelPath string) ([]entry, error) {
	path := filepath.Join(kernelPath, "arch/x86/entry/syscalls/syscall_64.tbl")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	seen := map[string]bool{}
	var out []entry

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := tablePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if m[2] == "x32" {
			continue
		}
		num, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		name := m[3]
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, entry{number: num, name: name})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool { return out[i].number < out[j].number })
	return out, nil
}

func main() {
	kernelPath := flag.String("kernel", filepath.Join(os.Getenv("HOME"), "kernel_files"),
		"path to a Linux kernel source checkout")
	flag.Parse()

	entries, err := parseSyscallTable(*kernelPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gensyscalls:", err)
		os.Exit(1)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	fmt.Fprintln(w, "// generated by scripts/gensyscalls; argument types must be filled in by hand")
	fmt.Fprintln(w, "// from include/linux/syscalls.h before this is merged into catalog.go.")
	for _, e := range entries {
		fmt.Fprintf(w, "reg(%d, %q)\n", e.number, e.name)
	}
}
