// Package summary accumulates a per-run count of observed syscalls and
// renders it as a human-facing table at the end of a trace.
package summary

import (
	"io"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Collector accumulates syscall completion counts across every tracee in a
// run. It is not safe for concurrent use, matching the event loop's own
// single-threaded cooperative discipline — Record is only ever called from
// the loop goroutine.
type Collector struct {
	start   time.Time
	perName map[string]uint64
	total   uint64
}

// New starts a collector, capturing the current time as the run's start for
// the elapsed-duration line printed after the rendered table.
func New() *Collector {
	return &Collector{start: time.Now(), perName: map[string]uint64{}}
}

// Record counts one completed syscall by name, regardless of which tracee
// it belonged to — the summary aggregates across the whole run.
func (c *Collector) Record(name string) {
	c.perName[name]++
	c.total++
}

// Render writes the accumulated counts as a table to w, sorted by
// descending count so the noisiest syscalls sort to the top, with a total
// footer row, followed by an elapsed-time line rounded to the millisecond.
func (c *Collector) Render(w io.Writer) {
	type row struct {
		name  string
		count uint64
	}
	rows := make([]row, 0, len(c.perName))
	for name, count := range c.perName {
		rows = append(rows, row{name, count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].name < rows[j].name
	})

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"syscall", "count"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.name, humanize.Comma(int64(r.count))})
	}
	t.AppendFooter(table.Row{"total", humanize.Comma(int64(c.total))})
	t.Render()

	io.WriteString(w, "elapsed: "+time.Since(c.start).Round(time.Millisecond).String()+"\n")
}
