package binder

import "net/http"

// Query binds URL query values into fields tagged `query:"name"`, with the
// same field types as Form. It always applies.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindValues(v, r.URL.Query(), "query")
	}
}
