package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	supported := []string{"en", "ja"}

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"empty header returns default", "", "ja"},
		{"exact match", "en", "en"},
		{"regional variant falls back to base", "ja-JP", "ja"},
		{"quality values are honored", "en;q=0.5, ja;q=0.9", "ja"},
		{"unsupported first choice is skipped", "fr-CH, fr;q=0.9, en;q=0.8", "en"},
		{"no supported language returns default", "de, fr", "ja"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, i18n.ParseAcceptLanguage(tt.header, supported, "ja"))
		})
	}

	t.Run("no supported languages returns default", func(t *testing.T) {
		assert.Equal(t, "en", i18n.ParseAcceptLanguage("ja", nil, "en"))
	})
}

func TestDefaultLangExtractor(t *testing.T) {
	extract := i18n.DefaultLangExtractor("en", "ja")

	t.Run("cookie wins over other sources", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?lang=ja", nil)
		r.AddCookie(&http.Cookie{Name: "lang", Value: "en"})
		r.Header.Set("Accept-Language", "ja")

		assert.Equal(t, "en", extract(r))
	})

	t.Run("query parameter wins over headers", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
		r.Header.Set("Accept-Language", "ja")

		assert.Equal(t, "en", extract(r))
	})

	t.Run("unsupported cookie falls through", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "lang", Value: "fr"})
		r.Header.Set("Accept-Language", "en-US")

		assert.Equal(t, "en", extract(r))
	})

	t.Run("regional code is reduced to its base", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?lang=EN-gb", nil)

		assert.Equal(t, "en", extract(r))
	})

	t.Run("weighted header picks the best supported language", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", "fr, en;q=0.5, ja;q=0.8")

		assert.Equal(t, "ja", extract(r))
	})

	t.Run("returns empty when nothing matches", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?lang=de", nil)
		r.Header.Set("Accept-Language", "fr")

		assert.Empty(t, extract(r))
	})

	t.Run("accepts any language without a supported list", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", "fr;q=0.5, de")

		assert.Equal(t, "de", i18n.DefaultLangExtractor()(r))
	})
}

func TestNegotiate(t *testing.T) {
	extract := i18n.Negotiate([]string{"en", "ja"},
		i18n.Header("X-Lang"),
		i18n.Cookie("locale"),
	)

	t.Run("uses sources in order", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Lang", "ja")
		r.AddCookie(&http.Cookie{Name: "locale", Value: "en"})

		assert.Equal(t, "ja", extract(r))
	})

	t.Run("skips blank and unsupported values", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Lang", "  ")
		r.AddCookie(&http.Cookie{Name: "locale", Value: "ja-JP"})

		assert.Equal(t, "ja", extract(r))

		r = httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Lang", "de")

		assert.Empty(t, extract(r))
	})

	t.Run("ignores the default lang sources", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?lang=ja", nil)
		r.Header.Set("Accept-Language", "ja")

		assert.Empty(t, extract(r))
	})
}

func TestMiddleware(t *testing.T) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context())
	})
	handler := i18n.Middleware(i18n.DefaultLangExtractor("en", "ja"), "ja")(next)

	t.Run("stores the detected language", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "en", got)
		assert.Equal(t, "en", rec.Header().Get("Content-Language"))
	})

	t.Run("falls back to the given language", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "fr")

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "ja", got)
		assert.Equal(t, "ja", rec.Header().Get("Content-Language"))
	})

	t.Run("empty fallback means the package default", func(t *testing.T) {
		rec := httptest.NewRecorder()
		i18n.Middleware(i18n.DefaultLangExtractor("en", "ja"), "")(next).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, i18n.DefaultLanguage, got)
	})
}

func TestGetLocale(t *testing.T) {
	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
