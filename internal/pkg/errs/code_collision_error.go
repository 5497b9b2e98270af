package errs

import (
	"errors"
	"fmt"
)

// ErrCodeCollision is the sentinel error for duplicate generated codes.
// The 8-character tracking and invoice numbers carry a small but nonzero
// collision probability; repositories translate unique-index violations
// into this error so handlers can regenerate and retry exactly once.
var ErrCodeCollision = errors.New("code collision")

// CodeCollisionError reports that a generated human-facing code already
// exists in storage.
type CodeCollisionError struct {
	ParamName string
	Code      string
	Cause     error
}

// NewCodeCollisionError creates a CodeCollisionError without a cause.
func NewCodeCollisionError(paramName, code string) *CodeCollisionError {
	return &CodeCollisionError{
		ParamName: paramName,
		Code:      code,
	}
}

// NewCodeCollisionErrorWithCause creates a CodeCollisionError wrapping the
// storage-layer duplicate-key error.
func NewCodeCollisionErrorWithCause(paramName, code string, cause error) *CodeCollisionError {
	return &CodeCollisionError{
		ParamName: paramName,
		Code:      code,
		Cause:     cause,
	}
}

func (e *CodeCollisionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, code is: %s (cause: %s)",
			ErrCodeCollision, e.ParamName, e.Code, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrCodeCollision, e.Code))
}

func (e *CodeCollisionError) Unwrap() error {
	return ErrCodeCollision
}
