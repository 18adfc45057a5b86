package app

import "testing"

func TestRunWithNoArgsPrintsHelpAndExitsZero(t *testing.T) {
	if code := Run([]string{Name}); code != 0 {
		t.Fatalf("Run() with no args = %d, want 0", code)
	}
}

func TestRunWithHelpFlagExitsZero(t *testing.T) {
	if code := Run([]string{Name, "--help"}); code != 0 {
		t.Fatalf("Run() with --help = %d, want 0", code)
	}
}

func TestRunWithNonexistentLaunchTargetExitsNonZero(t *testing.T) {
	code := Run([]string{Name, "--log=", "--summary=false", "/no/such/program/gotracer-test-fixture"})
	if code == 0 {
		t.Fatal("Run() launching a nonexistent program should exit non-zero")
	}
}

func TestRunWithNoModeSelectedExitsNonZero(t *testing.T) {
	// --attach=0 (the default) with no program vector selects neither mode.
	code := Run([]string{Name, "--log=", "--log-level=error", "--summary=false"})
	if code == 0 {
		t.Fatal("Run() with neither --attach nor a program should exit non-zero")
	}
}
