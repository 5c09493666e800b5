package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownFieldKind is returned by ParseFieldKind for names it does not recognize.
	ErrUnknownFieldKind = errors.New("unknown field kind")
)
