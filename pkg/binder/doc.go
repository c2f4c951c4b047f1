// Package binder decodes HTTP requests into structs.
//
// Form and JSON report ErrBinderNotApplicable when the request uses another
// encoding, so a handler can accept both:
//
//	bind := binder.First(binder.JSON(), binder.Form())
//	var req SubmitRequest
//	if err := bind(r, &req); err != nil {
//		...
//	}
package binder
