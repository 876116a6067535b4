package pipelines

import (
	"errors"
	"fmt"
)

// ProfileRequiredError is raised when an operation that fundamentally needs a
// career profile is invoked without one. It is caller-visible and correctable:
// attach a profile first.
type ProfileRequiredError struct {
	Operation string
}

func (e *ProfileRequiredError) Error() string {
	return fmt.Sprintf("%s requires a career profile", e.Operation)
}

// IsProfileRequired reports whether err is (or wraps) a ProfileRequiredError.
func IsProfileRequired(err error) bool {
	var pe *ProfileRequiredError
	return errors.As(err, &pe)
}

// PlanGenerationFailedError is raised when plan generation could not produce a
// usable plan. Unlike insights, a partial plan is not useful, so the failure
// surfaces to the caller.
type PlanGenerationFailedError struct {
	Cause error
}

func (e *PlanGenerationFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("plan generation failed: %v", e.Cause)
	}
	return "plan generation failed"
}

func (e *PlanGenerationFailedError) Unwrap() error {
	return e.Cause
}
