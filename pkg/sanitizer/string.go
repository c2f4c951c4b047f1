package sanitizer

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/width"
)

var strictPolicy = bluemonday.StrictPolicy()

// Trim removes leading and trailing whitespace, including the ideographic space.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// DeleteChar removes every occurrence of ch. Blank input is returned unchanged.
func DeleteChar(s, ch string) string {
	if strings.TrimSpace(s) == "" || ch == "" {
		return s
	}
	return strings.ReplaceAll(s, ch, "")
}

// RemoveChars removes all occurrences of each of the given characters.
func RemoveChars(s string, chars string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}

// ToHalfWidth folds full-width ASCII variants (letters, digits and
// punctuation) to their half-width forms. Half-width katakana is
// folded to full-width, so Japanese text keeps its canonical shape.
func ToHalfWidth(s string) string {
	return width.Fold.String(s)
}

// NormalizeNewlines converts CRLF and lone CR line breaks to LF.
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// MaxLength truncates a string to at most maxLen characters.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// RemoveExtraWhitespace collapses runs of whitespace to a single space and trims.
func RemoveExtraWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars drops control characters but keeps tabs and line breaks.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// StripHTML drops markup and returns plain text. Only known HTML elements
// and comments count as markup: a "<" that does not open one is kept as
// text, and input without markup is returned unchanged. When markup is
// removed, script and style bodies go with their tags and entities are
// unescaped.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	markup := make(map[int]bool)
	for _, m := range tagRegex.FindAllStringSubmatchIndex(s, -1) {
		if m[2] < 0 || htmlElements[strings.ToLower(s[m[2]:m[3]])] {
			markup[m[0]] = true
		}
	}
	if len(markup) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '<' && !markup[i] {
			b.WriteString("&lt;")
			continue
		}
		b.WriteByte(s[i])
	}

	return html.UnescapeString(strictPolicy.Sanitize(b.String()))
}

// KeepDigits keeps only ASCII digits.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// SingleLine replaces line breaks with spaces and collapses whitespace.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return RemoveExtraWhitespace(s)
}
