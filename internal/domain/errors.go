package domain

import "errors"

// ErrInvalidDriver is returned when driver identity fails validation.
var ErrInvalidDriver = errors.New("invalid driver")

// ErrInvalidOutcome is returned when an outcome breaks the evidence rules.
var ErrInvalidOutcome = errors.New("invalid outcome")
