package i18n

import (
	"net/http"
	"strings"
)

// Cookie reads the language from the named cookie.
func Cookie(name string) LangExtractor {
	return func(r *http.Request) string {
		c, err := r.Cookie(name)
		if err != nil {
			return ""
		}
		return c.Value
	}
}

// Query reads the language from the named query parameter.
func Query(name string) LangExtractor {
	return func(r *http.Request) string {
		return r.URL.Query().Get(name)
	}
}

// Header reads the language from the named header. The value may be a
// single code or a weighted Accept-Language list.
func Header(name string) LangExtractor {
	return func(r *http.Request) string {
		return r.Header.Get(name)
	}
}

// Negotiate consults sources in order and returns the first value that
// resolves to one of supported, reducing regional variants to their base
// ("en-GB" selects "en"). Without supported languages the preferred code of
// the first non-empty source is returned as is, lowercased.
func Negotiate(supported []string, sources ...LangExtractor) LangExtractor {
	return func(r *http.Request) string {
		for _, source := range sources {
			value := strings.TrimSpace(source(r))
			if value == "" {
				continue
			}

			var lang string
			if len(supported) == 0 {
				lang = preferredLanguage(value)
			} else {
				lang = ParseAcceptLanguage(value, supported, "")
			}
			if lang != "" {
				return lang
			}
		}
		return ""
	}
}

// DefaultLangExtractor negotiates the "lang" cookie, then the "lang" query
// parameter, then Accept-Language.
func DefaultLangExtractor(supported ...string) LangExtractor {
	return Negotiate(supported,
		Cookie("lang"),
		Query("lang"),
		Header("Accept-Language"),
	)
}
