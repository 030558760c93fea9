package todo

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
)

func TestParsePriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    Priority
		wantErr bool
	}{
		{raw: "LOW", want: PriorityLow},
		{raw: "medium", want: PriorityMedium},
		{raw: " High ", want: PriorityHigh},
		{raw: "", want: PriorityMedium},
		{raw: "urgent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePriority(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("ParsePriority(%q) error = %v, want ErrValidation", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePriority(%q) error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParsePriority(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestPriority_IsValid(t *testing.T) {
	t.Parallel()

	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh} {
		if !p.IsValid() {
			t.Errorf("Priority(%q).IsValid() = false, want true", p)
		}
	}
	for _, p := range []Priority{"", "low", "NONE"} {
		if p.IsValid() {
			t.Errorf("Priority(%q).IsValid() = true, want false", p)
		}
	}
}
