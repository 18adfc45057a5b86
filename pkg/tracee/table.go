// Package tracee holds the per-tracee state the event loop needs to
// demultiplex ptrace stops across a dynamically changing set of threads and
// processes.
package tracee

// State is the mutable, per-tracee bookkeeping the loop consults on every
// syscall-trap stop.
type State struct {
	// InSyscall is true iff the next syscall-trap stop for this tracee is
	// expected to be its matching exit stop.
	InSyscall bool
	// JustExeced is true iff the most recent ptrace event for this tracee
	// was EXEC and the following syscall-trap stop has not yet been
	// consumed (its entry log must be suppressed).
	JustExeced bool
}

// Table maps a kernel-issued tracee identifier to its State. It is the
// loop's termination witness: the loop exits exactly when it is empty.
//
// Not safe for concurrent use — the event loop is single-threaded
// cooperative by design, so no locking is needed here.
type Table struct {
	states map[int]*State
}

// New returns an empty Table.
func New() *Table {
	return &Table{states: make(map[int]*State)}
}

// Insert admits id into the table with both flags false.
func (t *Table) Insert(id int) {
	t.states[id] = &State{}
}

// Contains reports whether id is currently tracked.
func (t *Table) Contains(id int) bool {
	_, ok := t.states[id]
	return ok
}

// Remove drops id from the table. Called only when the tracee's exit or
// termination status has been observed.
func (t *Table) Remove(id int) {
	delete(t.states, id)
}

// StateMut returns a pointer to id's mutable state, or nil if id is not
// tracked. Callers must check Contains (or the returned pointer) before
// mutating.
func (t *Table) StateMut(id int) *State {
	return t.states[id]
}

// Len reports how many tracees remain tracked.
func (t *Table) Len() int {
	return len(t.states)
}

// Empty reports whether the table has no tracked tracees left — the loop's
// termination condition.
func (t *Table) Empty() bool {
	return len(t.states) == 0
}

// IDs returns a snapshot of the currently tracked identifiers. Iteration
// order is unspecified.
func (t *Table) IDs() []int {
	ids := make([]int, 0, len(t.states))
	for id := range t.states {
		ids = append(ids, id)
	}
	return ids
}
