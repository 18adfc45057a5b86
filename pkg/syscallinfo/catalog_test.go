package syscallinfo

import "testing"

func TestLookupKnown(t *testing.T) {
	info, ok := Lookup(0)
	if !ok {
		t.Fatal("expected syscall 0 (read) to be registered")
	}
	if info.Name != "read" {
		t.Fatalf("Name = %q, want read", info.Name)
	}
	if info.ArgCount != len(info.ArgTypes) {
		t.Fatalf("ArgCount %d does not match len(ArgTypes) %d", info.ArgCount, len(info.ArgTypes))
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup(-1); ok {
		t.Fatal("expected no entry for syscall number -1")
	}
}
