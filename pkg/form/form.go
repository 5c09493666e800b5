package form

import (
	"time"

	"github.com/dmitrymomot/authforms/pkg/validator"
)

// ErrorFlashDuration is how long an invalid field keeps its error state
// before the page clears it.
const ErrorFlashDuration = 3 * time.Second

// MsgPasswordMismatch is shown on the confirmation field.
const MsgPasswordMismatch = "Password doesn't match."

// Field names as they appear in forms and JSON payloads.
const (
	FieldFirstname       = "firstname"
	FieldSurname         = "surname"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm-password"
)

// FieldError names the first field that failed and the message to show for it.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// PasswordsMatch is the signup confirmation check. It compares bytes and
// does not care whether either value is a valid password.
func PasswordsMatch(password, confirm string) bool {
	return password == confirm
}

// LoginForm holds the values of the login page.
type LoginForm struct {
	Email    string
	Password string
}

// Validate returns the first invalid field in page order, or nil.
func (f LoginForm) Validate() *FieldError {
	return firstError(validator.ApplyFirst(
		validator.ValidEmail(FieldEmail, f.Email),
		validator.ValidPassword(FieldPassword, f.Password),
	))
}

func (f LoginForm) Payload() LoginPayload {
	return LoginPayload{Email: f.Email, Password: f.Password}
}

// SignupForm holds the values of the signup page.
type SignupForm struct {
	Firstname       string
	Surname         string
	Email           string
	Password        string
	ConfirmPassword string
}

// Validate returns the first invalid field in page order, or nil.
// The confirmation field is checked last.
func (f SignupForm) Validate() *FieldError {
	return firstError(validator.ApplyFirst(
		validator.ValidName(FieldFirstname, f.Firstname, validator.MsgInvalidFirstname),
		validator.ValidName(FieldSurname, f.Surname, validator.MsgInvalidSurname),
		validator.ValidEmail(FieldEmail, f.Email),
		validator.ValidPassword(FieldPassword, f.Password),
		validator.Rule{
			Check: func() bool { return PasswordsMatch(f.Password, f.ConfirmPassword) },
			Error: validator.ValidationError{Field: FieldConfirmPassword, Message: MsgPasswordMismatch},
		},
	))
}

// Strength rates the password as typed so far.
func (f SignupForm) Strength() validator.StrengthLabel {
	return validator.ClassifyStrength(f.Password)
}

func (f SignupForm) Payload() SignupPayload {
	return SignupPayload{
		Firstname: f.Firstname,
		Surname:   f.Surname,
		Email:     f.Email,
		Password:  f.Password,
	}
}

func firstError(err error) *FieldError {
	verrs := validator.ExtractValidationErrors(err)
	if len(verrs) == 0 {
		return nil
	}
	return &FieldError{Field: verrs[0].Field, Message: verrs[0].Message}
}
