package pricing

import "errors"

var ErrUnknownCTA = errors.New("unknown call-to-action")

// CTAError carries the control key that could not be resolved
type CTAError struct {
	Field string
	Err   error
}

func (e *CTAError) Error() string { return e.Err.Error() + ": " + e.Field }
func (e *CTAError) Unwrap() error { return e.Err }
