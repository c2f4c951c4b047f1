package i18n

import "net/http"

// LangExtractor returns the language code for a request, or "" when unknown.
type LangExtractor func(r *http.Request) string
