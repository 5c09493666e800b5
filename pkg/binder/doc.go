// Package binder fills request structs for handler.Wrap.
//
// Form reads `form` tags from url-encoded or multipart bodies, JSON decodes
// strict application/json bodies and Signals reads DataStar signals. Binders
// that do not apply to a request return ErrBinderNotApplicable so several
// can be chained on one route:
//
//	handler.Wrap(h, handler.WithBinders[handler.Context, Request](
//		binder.Signals(),
//		binder.Form(),
//	))
package binder
