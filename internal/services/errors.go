package services

import "fmt"

// ValidationError marks a create/update rejected because of bad input, so the
// handler layer can answer 400 instead of 500. The record is never written.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func errMissingIdentity() error {
	return fmt.Errorf("no request identity in context")
}
