package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language can be determined.
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps the header size handed to the parser.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage picks the best of supportedLangs for an Accept-Language
// header. Quality values are honored and regional variants fall back to their
// base language, so "ja-JP" selects "ja". It returns defaultLang when the
// header is empty, malformed or matches nothing.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return defaultLang
	}

	tags := make([]language.Tag, 0, len(supportedLangs))
	names := make([]string, 0, len(supportedLangs))
	for _, lang := range supportedLangs {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, strings.ToLower(lang))
	}
	if len(tags) == 0 {
		return defaultLang
	}

	_, idx, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return defaultLang
	}
	return names[idx]
}

// preferredLanguage returns the highest weighted tag of the header, lowercased.
func preferredLanguage(header string) string {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return strings.ToLower(tags[0].String())
}
