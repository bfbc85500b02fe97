package errors

import (
	"strings"
	"testing"
)

func TestDomainErrorsWrapCauses(t *testing.T) {
	cause := New("connection reset")

	tests := []struct {
		name string
		err  error
	}{
		{"list fetch", NewListFetchError(cause)},
		{"detail fetch", NewDetailFetchError("alpha", cause)},
		{"delete", NewDeleteError("alpha", "", cause)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Is(tt.err, cause) {
				t.Errorf("%v does not wrap its cause", tt.err)
			}
		})
	}
}

func TestDeleteErrorMessage(t *testing.T) {
	t.Run("explicit message wins", func(t *testing.T) {
		err := NewDeleteError("alpha", "instance is busy", New("409"))
		if err.Message != "instance is busy" {
			t.Errorf("Message = %q, want explicit text", err.Message)
		}
		if !strings.Contains(err.Error(), "instance is busy") {
			t.Errorf("Error() = %q, missing message", err.Error())
		}
	})

	t.Run("falls back to cause text", func(t *testing.T) {
		err := NewDeleteError("alpha", "", New("connection reset"))
		if err.Message != "connection reset" {
			t.Errorf("Message = %q, want cause text", err.Message)
		}
	})
}

func TestIllegalTransitionError(t *testing.T) {
	err := NewIllegalTransitionError("DeleteRequested", "confirming")

	if !Is(err, ErrIllegalTransition) {
		t.Error("IllegalTransitionError does not match ErrIllegalTransition")
	}
	for _, want := range []string{"DeleteRequested", "confirming"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Error() = %q, missing %q", err.Error(), want)
		}
	}
}

func TestAsExtractsTypedErrors(t *testing.T) {
	wrapped := NewDetailFetchError("alpha", ErrInstanceNotFound)

	var detailErr *DetailFetchError
	if !As(wrapped, &detailErr) {
		t.Fatal("As failed to extract DetailFetchError")
	}
	if detailErr.Name != "alpha" {
		t.Errorf("Name = %q, want alpha", detailErr.Name)
	}
	if !Is(wrapped, ErrInstanceNotFound) {
		t.Error("wrapped sentinel not matched through DetailFetchError")
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"service unavailable", ErrServiceUnavailable, true},
		{"list fetch failure", NewListFetchError(New("boom")), true},
		{"detail fetch failure", NewDetailFetchError("a", New("boom")), true},
		{"instance not found", NewDetailFetchError("a", ErrInstanceNotFound), false},
		{"illegal transition", NewIllegalTransitionError("DeleteConfirmed", "idle"), false},
		{"plain error", New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsUserFacing(t *testing.T) {
	if !IsUserFacing(NewDeleteError("a", "busy", nil)) {
		t.Error("delete errors should be user facing")
	}
	if !IsUserFacing(NewIllegalTransitionError("DeleteRequested", "deleting")) {
		t.Error("illegal transitions should be user facing")
	}
	if IsUserFacing(NewListFetchError(New("boom"))) {
		t.Error("list fetch errors are internal")
	}
	if IsUserFacing(nil) {
		t.Error("nil is not user facing")
	}
}
