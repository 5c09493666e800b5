package validator

import "regexp"

const (
	PasswordMinLength = 7
	PasswordMaxLength = 21

	// EmailLocalSpecials are the non-alphanumeric characters allowed between
	// alphanumerics in the local part of an address.
	EmailLocalSpecials = "!#$%&'*+-/=?^_`{|}~"
)

const notSpaceOrDot = `[^\s\v\x{85}\p{Z}\x{FEFF}.]`

var (
	nameRegex = regexp.MustCompile(`^[a-zA-Z'\-]+$`)

	// Local part: an optional leading non-space non-dot character, then any run
	// of allowed characters each optionally followed by one dot, closed by at
	// least one non-space non-dot character. Dots can never lead, trail or repeat.
	// RE2's \s is ASCII only, so vertical tab, NEL and BOM are listed explicitly.
	emailLocalRegex = regexp.MustCompile(
		`^` + notSpaceOrDot + `?(?:[a-zA-Z0-9!#$%&'*+\-/=?^_` + "`" + `{|}~]\.?)*` + notSpaceOrDot + `+$`,
	)

	// Domain: dot separated labels of [a-zA-Z0-9-], at least two of them.
	// A label never starts or ends with a hyphen.
	emailDomainRegex = regexp.MustCompile(
		`^[a-zA-Z0-9](?:[a-zA-Z0-9\-]*[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9\-]*[a-zA-Z0-9])?)+$`,
	)

	passwordCharsRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)
