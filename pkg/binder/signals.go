package binder

import (
	"errors"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// DatastarHeader is set by the DataStar client on every backend action.
const DatastarHeader = "Datastar-Request"

// Signals binds DataStar signals (the `datastar` query parameter on GET,
// the JSON body otherwise) using the struct's json tags. Requests that did
// not come from DataStar are not applicable.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Header.Get(DatastarHeader) != "true" && !r.URL.Query().Has("datastar") {
			return ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return errors.Join(ErrFailedToParseSignals, err)
		}
		return nil
	}
}
