package errs

import (
	"errors"
	"fmt"
)

// ErrAccessForbidden is the sentinel error for authorization failures on
// objects that do exist. Lookups run before access checks, so a missing
// object is always reported as ObjectNotFound, never as AccessForbidden.
var ErrAccessForbidden = errors.New("access forbidden")

// AccessForbiddenError reports that a principal has no rights to the
// identified object.
type AccessForbiddenError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewAccessForbiddenError creates an AccessForbiddenError without a cause.
func NewAccessForbiddenError(paramName string, id any) *AccessForbiddenError {
	return &AccessForbiddenError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewAccessForbiddenErrorWithCause creates an AccessForbiddenError wrapping
// an underlying cause.
func NewAccessForbiddenErrorWithCause(paramName string, id any, cause error) *AccessForbiddenError {
	return &AccessForbiddenError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *AccessForbiddenError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrAccessForbidden, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrAccessForbidden, e.ID))
}

func (e *AccessForbiddenError) Unwrap() error {
	return ErrAccessForbidden
}
