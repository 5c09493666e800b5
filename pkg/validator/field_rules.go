package validator

import (
	"fmt"
	"strings"
)

// FieldKind selects which format rule applies to an input.
type FieldKind int

const (
	FieldName FieldKind = iota
	FieldEmail
	FieldPassword
)

func (k FieldKind) String() string {
	switch k {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldPassword:
		return "password"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// ParseFieldKind maps "name", "email" or "password" to a FieldKind.
func ParseFieldKind(s string) (FieldKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name", "firstname", "surname":
		return FieldName, nil
	case "email":
		return FieldEmail, nil
	case "password":
		return FieldPassword, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFieldKind, s)
	}
}

// Stable user-facing messages.
const (
	MsgInvalidName      = "Invalid firstname/surname."
	MsgInvalidFirstname = "Invalid firstname."
	MsgInvalidSurname   = "Invalid surname."
	MsgInvalidEmail     = "Invalid email."
	MsgInvalidPassword  = "Invalid password."
)

// Result is the outcome of ValidateField. Reason is empty when Valid is true.
type Result struct {
	Valid  bool
	Reason string
}

// ValidateField checks value against the rule for kind.
// Any string maps to a definite result; unknown kinds are reported invalid.
func ValidateField(kind FieldKind, value string) Result {
	var ok bool
	var reason string

	switch kind {
	case FieldName:
		ok, reason = IsName(value), MsgInvalidName
	case FieldEmail:
		ok, reason = IsEmail(value), MsgInvalidEmail
	case FieldPassword:
		ok, reason = IsPassword(value), MsgInvalidPassword
	default:
		return Result{Reason: fmt.Sprintf("Unsupported field %s.", kind)}
	}

	if ok {
		return Result{Valid: true}
	}
	return Result{Reason: reason}
}

// IsName reports whether value is non-empty and made only of ASCII letters,
// apostrophes and hyphens. Nothing is stripped.
func IsName(value string) bool {
	return len(value) > 0 && nameRegex.MatchString(value)
}

// IsEmail reports whether value has exactly one '@' with a well-formed local
// part before it and a dotted domain after it.
func IsEmail(value string) bool {
	local, domain, ok := strings.Cut(value, "@")
	if !ok || strings.Contains(domain, "@") {
		return false
	}
	if local == "" || domain == "" {
		return false
	}
	return emailLocalRegex.MatchString(local) && emailDomainRegex.MatchString(domain)
}

// IsPassword reports whether value is 7-21 characters long, mixes upper and
// lower case and contains nothing but ASCII letters and digits.
func IsPassword(value string) bool {
	return len(value) >= PasswordMinLength &&
		len(value) <= PasswordMaxLength &&
		strings.ToLower(value) != value &&
		strings.ToUpper(value) != value &&
		passwordCharsRegex.MatchString(value)
}

// ValidName builds a Rule for a name-like field with the given failure message.
func ValidName(field, value, message string) Rule {
	return Rule{
		Check: func() bool { return IsName(value) },
		Error: ValidationError{Field: field, Message: message},
	}
}

func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsEmail(value) },
		Error: ValidationError{Field: field, Message: MsgInvalidEmail},
	}
}

func ValidPassword(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsPassword(value) },
		Error: ValidationError{Field: field, Message: MsgInvalidPassword},
	}
}
