// Package handler turns typed functions into http.HandlerFuncs.
//
// A HandlerFunc receives a Context and a request struct filled by binders
// from pkg/binder, and returns a Response. Responses adapt to the caller:
// Templ and Redirect write HTML or a 303 for plain browser requests and SSE
// patches for DataStar requests, so the same route serves both the
// no-JavaScript form post and the live form.
//
//	type loginRequest struct {
//		Email    string `form:"email" json:"email"`
//		Password string `form:"password" json:"password"`
//	}
//
//	func (h *Handler) login(ctx handler.Context, req loginRequest) handler.Response {
//		if err := ...; err != nil {
//			return handler.Templ(views.LoginForm(req.Email, err.Error()))
//		}
//		return handler.Redirect("/")
//	}
//
// SSE gives a handler a StreamContext for responses that send more than
// one patch over time, such as an error highlight that clears itself.
// NewErrorHandler logs failures and renders them the same two ways.
package handler
