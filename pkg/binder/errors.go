package binder

import "errors"

var (
	// ErrBinderNotApplicable tells handler.Wrap to try the next binder.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrFailedToParseSignals = errors.New("failed to parse datastar signals")
)
