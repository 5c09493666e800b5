// Package form is the page-side glue around the validator: it carries the
// values of the login and signup forms, checks them in page order stopping at
// the first invalid field, owns the password confirmation check and builds
// the JSON payloads sent to the accounts API.
//
// Values are passed in explicitly, so a form can be validated anywhere:
//
//	f := form.SignupForm{Firstname: "Ada", Surname: "Lovelace", ...}
//	if ferr := f.Validate(); ferr != nil {
//	    // highlight ferr.Field for form.ErrorFlashDuration and show ferr.Message
//	}
package form
