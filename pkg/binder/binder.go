package binder

import (
	"errors"
	"mime"
	"net/http"
)

// Func decodes a request into v.
type Func func(r *http.Request, v any) error

// First tries binders in order and returns the result of the first one that
// applies. It returns ErrBinderNotApplicable when none does.
func First(binders ...Func) Func {
	return func(r *http.Request, v any) error {
		for _, bind := range binders {
			err := bind(r, v)
			if errors.Is(err, ErrBinderNotApplicable) {
				continue
			}
			return err
		}
		return ErrBinderNotApplicable
	}
}

func mediaType(r *http.Request) (string, map[string]string) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return "", nil
	}
	mt, params, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", nil
	}
	return mt, params
}

func hasBody(r *http.Request) bool {
	return r.Body != nil && r.Body != http.NoBody && r.ContentLength != 0
}
