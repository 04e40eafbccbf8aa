package content

import "errors"

var (
	ErrInvalidSection = errors.New("invalid section name")
	ErrUnknownField   = errors.New("unknown pricing field")
	ErrValueTooLong   = errors.New("field value too long")
	ErrFieldNotFound  = errors.New("field override not found")
	ErrEmptyUpdate    = errors.New("no fields to update")
)

// FieldError carries the field key that was rejected
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return e.Err.Error() + ": " + e.Field }
func (e *FieldError) Unwrap() error { return e.Err }
