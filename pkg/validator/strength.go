package validator

import "unicode/utf8"

// StrengthLabel is a coarse, length-only rating shown while a password is typed.
// It is independent of IsPassword: a long invalid password still rates High.
type StrengthLabel int

const (
	StrengthLow StrengthLabel = iota
	StrengthMid
	StrengthHigh
)

const (
	strengthLowMax = PasswordMinLength + 2
	strengthMidMax = PasswordMinLength + 5
)

// String returns the value written into the strength bar's data-strength attribute.
func (l StrengthLabel) String() string {
	switch l {
	case StrengthMid:
		return "mid"
	case StrengthHigh:
		return "high"
	default:
		return "low"
	}
}

// ClassifyStrength buckets value by character count:
// up to 9 is Low, up to 12 is Mid, anything longer is High.
func ClassifyStrength(value string) StrengthLabel {
	n := utf8.RuneCountInString(value)
	switch {
	case n <= strengthLowMax:
		return StrengthLow
	case n <= strengthMidMax:
		return StrengthMid
	default:
		return StrengthHigh
	}
}
