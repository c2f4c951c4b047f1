package binder

import (
	"fmt"
	"net/http"
)

// DefaultMaxMemory caps the in-memory part of multipart parsing.
const DefaultMaxMemory = 10 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data bodies
// into struct fields tagged `form:"name"`. `form:"-"` skips a field and an
// untagged field uses its lowercased name.
//
// Supported field types are strings, integers, floats, bools, pointers to
// them and slices of them.
func Form() Func {
	return func(r *http.Request, v any) error {
		if r.Method == http.MethodGet || r.Method == http.MethodHead || !hasBody(r) {
			return ErrBinderNotApplicable
		}

		switch mt, params := mediaType(r); mt {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			return bindToStruct(v, "form", r.PostForm, ErrInvalidForm)

		case "multipart/form-data":
			if params["boundary"] == "" {
				return fmt.Errorf("%w: missing boundary in content type", ErrInvalidForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			return bindToStruct(v, "form", r.MultipartForm.Value, ErrInvalidForm)

		default:
			return ErrBinderNotApplicable
		}
	}
}

// Query binds URL query parameters into fields tagged `query:"name"`.
func Query() Func {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
