// Package argfmt renders a single decoded syscall argument as a display
// string, given its declared C type and its raw register value.
package argfmt

import (
	"fmt"
	"strings"

	"github.com/rifa-456/gotracer/pkg/memio"
)

// largeValueThreshold is the point past which an integer argument is shown
// in hex instead of decimal.
const largeValueThreshold = 1000000

// Format renders value (a raw register, reinterpreted per typ) for display.
func Format(pid int, typ string, value int64) string {
	if strings.Contains(typ, "char") && strings.Contains(typ, "*") {
		return memio.ReadCString(pid, uintptr(value))
	}
	if value > largeValueThreshold {
		return fmt.Sprintf("%#x", uint64(value))
	}
	return fmt.Sprintf("%d", value)
}
