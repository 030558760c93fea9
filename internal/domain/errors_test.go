package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_ErrorsIs(t *testing.T) {
	t.Parallel()

	verr := NewValidationError("title", MsgRequired)

	if !errors.Is(verr, ErrValidation) {
		t.Error("errors.Is(ValidationError, ErrValidation) = false, want true")
	}

	wrapped := fmt.Errorf("create item: %w", verr)
	if !errors.Is(wrapped, ErrValidation) {
		t.Error("errors.Is(wrapped ValidationError, ErrValidation) = false, want true")
	}

	var got *ValidationError
	if !errors.As(wrapped, &got) || got.Fields["title"] != MsgRequired {
		t.Errorf("errors.As(wrapped) = %v, want Fields[title] = %q", got, MsgRequired)
	}
}

func TestValidationError_ErrorIsDeterministic(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{Fields: map[string]string{
		"title":    MsgMustNotBlank,
		"priority": "invalid",
		"email":    MsgRequired,
	}}

	want := "validation error: email: is required; priority: invalid; title: must not be blank"
	for range 5 {
		if got := verr.Error(); got != want {
			t.Fatalf("Error() = %q, want %q", got, want)
		}
	}
}

func TestNotFoundError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("load: %w", &NotFoundError{Entity: "todo list", ID: 4})

	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = false, want true")
	}
	if got, want := err.Error(), "load: todo list 4 not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrValidation", ErrValidation},
		{"ErrConflict", ErrConflict},
		{"ErrForbidden", ErrForbidden},
		{"ErrUnauthorized", ErrUnauthorized},
		{"ErrUnavailable", ErrUnavailable},
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a.err, b.err) {
				t.Errorf("%s and %s should be distinct", a.name, b.name)
			}
		}
	}
}

func TestEventRecorderFunc(t *testing.T) {
	t.Parallel()

	var got []Event
	rec := EventRecorderFunc(func(e Event) { got = append(got, e) })
	rec.Raise(nil)

	if len(got) != 1 {
		t.Errorf("len(got) = %d, want 1", len(got))
	}
}
