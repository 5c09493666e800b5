package accounts

import "errors"

// Error texts are shown to the user as-is by the API.
var (
	ErrAccountExists     = errors.New("Account already exists!")
	ErrAccountNotFound   = errors.New("No account found with that email.")
	ErrIncorrectPassword = errors.New("Incorrect password.")
	ErrHashPassword      = errors.New("failed to hash password")
)
