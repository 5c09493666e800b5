package apiclient

import "errors"

var (
	ErrEncodePayload   = errors.New("failed to encode request payload")
	ErrInvalidResponse = errors.New("invalid response body")
)
