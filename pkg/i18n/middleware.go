package i18n

import (
	"net/http"
)

// Middleware stores the request language in the context for GetLocale and
// Translator.Tc and echoes it in Content-Language. When extr yields nothing
// the request gets fallback, or DefaultLanguage if fallback is empty. A nil
// extractor means DefaultLangExtractor().
func Middleware(extr LangExtractor, fallback string) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}
	if fallback == "" {
		fallback = DefaultLanguage
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = fallback
			}

			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
