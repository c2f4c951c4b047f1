// Package handler provides typed HTTP handlers for server-rendered forms.
//
// A HandlerFunc receives a request already decoded by the configured binders
// and returns a Response:
//
//	func submit(ctx handler.Context, req SubmitRequest) handler.Response {
//		if verrs := validate(req); !verrs.IsEmpty() {
//			return handler.JSONError(verrs)
//		}
//		return handler.JSON(req)
//	}
//
//	r.Post("/submit", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, SubmitRequest](binder.JSON(), binder.Form()),
//	))
//
// Responses adapt to DataStar: Templ and TemplPartial send element patches
// over SSE, Redirect sends a client-side redirect, and SSE streams several
// element and signal patches. Plain requests get HTML or JSON.
//
// NewErrorHandler classifies HTTPError and ValidationError values, logs them
// through slog and renders a toast, a JSON envelope or an error page.
package handler
