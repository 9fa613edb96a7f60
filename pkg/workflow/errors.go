package workflow

import "errors"

// ErrCancelled is returned when a run is cancelled between steps.
var ErrCancelled = errors.New("workflow run cancelled")

// FatalError marks a non-retriable setup failure. The runner aborts the run
// immediately and never retries the step.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Fatal wraps err as non-retriable.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// IsFatal reports whether err is (or wraps) a FatalError.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
