package svg2png

import "errors"

// Outcome is the terminal state of a single conversion run.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeDependencyMissing
	OutcomeRenderError
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeDependencyMissing:
		return "dependency-missing"
	case OutcomeRenderError:
		return "render-error"
	default:
		return "unknown"
	}
}

// OutcomeOf classifies an error returned by Converter.Convert.
// Any error that is not ErrRendererUnavailable counts as a render error.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrRendererUnavailable):
		return OutcomeDependencyMissing
	default:
		return OutcomeRenderError
	}
}
