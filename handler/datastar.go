package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/authforms/pkg/binder"
)

const (
	DataStarAcceptHeader = "text/event-stream"
	DataStarQueryParam   = "datastar"
)

const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
	PatchRemove  = datastar.ElementPatchModeRemove
)

// IsDataStar reports whether r was issued by the DataStar client and
// expects SSE patches instead of a full page.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(binder.DatastarHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}
