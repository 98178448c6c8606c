package vestibule

import (
	"errors"
	"fmt"
	"testing"
)

func TestCancelledPageEndsRunCleanly(t *testing.T) {
	// The page runner wraps page errors, so cancellation has to survive
	// the wrap for Run to exit cleanly.
	err := fmt.Errorf("flow: page login: %w", ErrCancelled)

	if !IsCancelled(err) {
		t.Fatal("IsCancelled did not detect a wrapped cancellation")
	}
	if got := exitError(err); got != nil {
		t.Fatalf("exitError(%v) = %v, want nil", err, got)
	}
}

func TestExitErrorKeepsFailures(t *testing.T) {
	wantErr := errors.New("renderer lost")
	err := fmt.Errorf("flow: page login: %w", wantErr)

	if got := exitError(err); !errors.Is(got, wantErr) {
		t.Fatalf("exitError(%v) = %v, want the failure kept", err, got)
	}
	if got := exitError(nil); got != nil {
		t.Fatalf("exitError(nil) = %v, want nil", got)
	}
}

func TestInfrastructureError(t *testing.T) {
	underlying := errors.New("no usable font found")
	err := NewInfrastructureError("init", underlying)

	if !IsInfrastructureError(err) {
		t.Fatal("IsInfrastructureError did not detect the error")
	}
	if !errors.Is(err, underlying) {
		t.Fatal("Unwrap did not expose the underlying error")
	}
	if IsCancelled(err) {
		t.Fatal("an infrastructure failure must not read as a cancellation")
	}
	if got, want := err.Error(), "vestibule: init: no usable font found"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
