package tracer

import (
	"fmt"
	"syscall"
)

// largeValueThreshold matches argfmt's: values past it render in hex.
const largeValueThreshold = 1000000

// formatReturn renders a syscall's rax return value: a negative value is a
// negated errno, rendered with its error name; a large positive value
// renders in hex; anything else renders as a plain decimal.
func formatReturn(v int64) string {
	if v < 0 {
		return fmt.Sprintf("%d (%s)", v, syscall.Errno(-v).Error())
	}
	if v > largeValueThreshold {
		return fmt.Sprintf("%#x", uint64(v))
	}
	return fmt.Sprintf("%d", v)
}
