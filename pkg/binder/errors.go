package binder

import "errors"

var (
	// ErrBinderNotApplicable means the request carries a different encoding.
	// Callers holding several binders move on to the next one.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")

	ErrInvalidTarget = errors.New("bind target must be a non-nil pointer to struct")
	ErrInvalidForm   = errors.New("failed to parse form data")
	ErrInvalidQuery  = errors.New("failed to parse query parameters")
	ErrInvalidJSON   = errors.New("failed to parse JSON request body")
)
