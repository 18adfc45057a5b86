package tracererr

import (
	"errors"
	"testing"
)

func TestErrorWrapsAndFormats(t *testing.T) {
	cause := errors.New("boom")
	err := New("tracer.launcher-execve", KindFatal, cause)

	if !errors.Is(err, cause) {
		t.Fatal("errors.Is should see through to the wrapped cause")
	}

	want := "tracer.launcher-execve: fatal: boom"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("vanished")
	err := New("regs.Get", KindRecoverable, cause)
	if err.Unwrap() != cause {
		t.Fatal("Unwrap should return the original cause")
	}
}
