// Package validator holds the format rules for authentication forms and the
// password strength classifier.
//
// Two entry points cover most callers:
//
//	res := validator.ValidateField(validator.FieldEmail, input)
//	if !res.Valid {
//	    // show res.Reason next to the field
//	}
//
//	label := validator.ClassifyStrength(password) // low, mid or high
//
// The same checks are exposed as Rule values so they compose with Apply and
// ApplyFirst:
//
//	err := validator.ApplyFirst(
//	    validator.ValidEmail("email", req.Email),
//	    validator.ValidPassword("password", req.Password),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    msg := verrs.First("email")
//	}
//
// # Rules
//
// Name: one or more of a-z, A-Z, apostrophe and hyphen. Anything else,
// including digits and non-ASCII letters, rejects the whole value.
//
// Email: exactly one '@'. The local part may use letters, digits and
// !#$%&'*+-/=?^_`{|}~ with single dots between them; it never starts or ends
// with a dot and contains no whitespace. The domain is two or more dot
// separated labels of letters, digits and hyphens, and no label starts or
// ends with a hyphen.
//
// Password: 7 to 21 ASCII letters and digits with at least one upper and one
// lower case letter. Symbols are rejected.
//
// Strength is a length heuristic only (<=9 low, <=12 mid, else high) and is
// never reconciled with the Password rule.
//
// Everything here is a pure function over its arguments; there is no shared
// mutable state, so all helpers are safe for concurrent use.
package validator
