package errs

import "errors"

// Err represents an expected error that is caused by user input rather than by a failing collaborator.
type Err struct { //nolint:errname
	Message string `json:"message"`
}

var _ error = (*Err)(nil)

// New creates a new custom error with the given message.
func New(message string) *Err {
	return &Err{Message: message}
}

func (e *Err) Error() string {
	return e.Message
}

// IsExpected checks if the given error or any error it wraps is of custom Err type.
func IsExpected(err error) bool {
	var expected *Err
	return errors.As(err, &expected)
}
