package clipboard

import (
	"errors"
	"testing"
)

// stub replaces the system clipboard for the duration of a test.
func stub(t *testing.T, available bool, write func(string) error) {
	t.Helper()
	origUnsupported, origWrite := unsupported, writeAll
	unsupported = func() bool { return !available }
	writeAll = write
	t.Cleanup(func() {
		unsupported, writeAll = origUnsupported, origWrite
	})
}

func TestCopy(t *testing.T) {
	var got string
	stub(t, true, func(s string) error {
		got = s
		return nil
	})

	if err := Copy("Ann Lee1"); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if got != "Ann Lee1" {
		t.Errorf("clipboard holds %q, want %q", got, "Ann Lee1")
	}
}

func TestCopy_Unavailable(t *testing.T) {
	stub(t, false, func(string) error {
		t.Fatal("write called on an unavailable clipboard")
		return nil
	})

	if IsAvailable() {
		t.Error("IsAvailable() = true")
	}
	if err := Copy("x"); !errors.Is(err, ErrClipboardUnavailable) {
		t.Errorf("Copy() error = %v, want ErrClipboardUnavailable", err)
	}
}

func TestCopy_WriteError(t *testing.T) {
	boom := errors.New("boom")
	stub(t, true, func(string) error { return boom })

	if err := Copy("x"); !errors.Is(err, boom) {
		t.Errorf("Copy() error = %v, want wrapped boom", err)
	}
}
