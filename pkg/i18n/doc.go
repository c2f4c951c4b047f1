// Package i18n provides translation lookup and request language detection.
//
// A Translator loads language -> key -> message trees through a
// TranslationAdapter (MapAdapter, FileAdapter or EmbedAdapter) and a Parser
// (YAML or JSON). Keys are dot-separated paths into the tree and messages may
// contain named placeholders written as %{name}:
//
//	tr, err := i18n.NewTranslator(ctx,
//	    i18n.NewEmbedAdapter(i18n.NewYAMLParser(), localesFS, "locales"),
//	    i18n.WithDefaultLanguage("ja"),
//	)
//	msg := tr.T("en", "validation.max_length", "field", "Name", "max", "50")
//
// Middleware detects the request language with a LangExtractor and stores it
// in the context, where Translator.Tc and GetLocale pick it up. Extractors
// are built from sources (Cookie, Query, Header) that Negotiate matches
// against the supported languages with golang.org/x/text/language.
// DefaultLangExtractor checks the "lang" cookie, the "lang" query parameter
// and finally Accept-Language.
package i18n
