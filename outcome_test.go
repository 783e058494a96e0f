package svg2png

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestOutcomeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want Outcome
	}{
		{"nil", nil, OutcomeSuccess},
		{"unavailable", ErrRendererUnavailable, OutcomeDependencyMissing},
		{"wrapped unavailable", fmt.Errorf("rsvg: %w", ErrRendererUnavailable), OutcomeDependencyMissing},
		{"render", ErrRender, OutcomeRenderError},
		{"missing source", fmt.Errorf("%w: %w", ErrRender, os.ErrNotExist), OutcomeRenderError},
		{"timeout", context.DeadlineExceeded, OutcomeRenderError},
		{"unknown", errors.New("boom"), OutcomeRenderError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := OutcomeOf(tt.err); got != tt.want {
				t.Errorf("OutcomeOf(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	tests := map[Outcome]string{
		OutcomeSuccess:           "success",
		OutcomeDependencyMissing: "dependency-missing",
		OutcomeRenderError:       "render-error",
		Outcome(42):              "unknown",
	}
	for o, want := range tests {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(o), got, want)
		}
	}
}
