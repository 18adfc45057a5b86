package tracee

import "testing"

func TestInsertContainsRemove(t *testing.T) {
	tbl := New()
	if !tbl.Empty() {
		t.Fatal("new table should be empty")
	}

	tbl.Insert(42)
	if !tbl.Contains(42) {
		t.Fatal("expected 42 to be tracked after Insert")
	}
	if tbl.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tbl.Len())
	}

	st := tbl.StateMut(42)
	if st == nil {
		t.Fatal("StateMut(42) returned nil")
	}
	if st.InSyscall || st.JustExeced {
		t.Fatal("freshly inserted state should start with both flags false")
	}

	tbl.Remove(42)
	if tbl.Contains(42) {
		t.Fatal("expected 42 to be gone after Remove")
	}
	if !tbl.Empty() {
		t.Fatal("table should be empty after removing its only entry")
	}
}

func TestStateMutMissing(t *testing.T) {
	tbl := New()
	if st := tbl.StateMut(7); st != nil {
		t.Fatalf("StateMut on untracked id = %v, want nil", st)
	}
}

func TestIDs(t *testing.T) {
	tbl := New()
	tbl.Insert(1)
	tbl.Insert(2)
	tbl.Insert(3)

	got := map[int]bool{}
	for _, id := range tbl.IDs() {
		got[id] = true
	}
	for _, want := range []int{1, 2, 3} {
		if !got[want] {
			t.Fatalf("IDs() missing %d", want)
		}
	}
}
