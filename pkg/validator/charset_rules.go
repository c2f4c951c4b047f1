package validator

import (
	"regexp"
	"strings"
)

var (
	halfWidthRegex                      = regexp.MustCompile(`^[ -~]+$`)
	halfWidthMultiLineRegex             = regexp.MustCompile(`^[ -~\r\n]+$`)
	halfWidthAlphanumericRegex          = regexp.MustCompile(`^[0-9A-Za-z]+$`)
	halfWidthAlphanumericMultiLineRegex = regexp.MustCompile(`^[0-9A-Za-z\r\n]+$`)
	halfWidthAlphaRegex                 = regexp.MustCompile(`^[A-Za-z]+$`)
	halfWidthAlphaMultiLineRegex        = regexp.MustCompile(`^[A-Za-z\r\n]+$`)
	halfWidthNumericRegex               = regexp.MustCompile(`^[0-9]+$`)
	halfWidthNumericMultiLineRegex      = regexp.MustCompile(`^[0-9\r\n]+$`)
)

// forbiddenChars holds the platform-dependent "Windows extended" symbols
// (NEC row 13 and the IBM extensions) that do not survive a round trip
// through Shift_JIS/ISO-2022-JP.
const forbiddenChars = "" +
	// circled numbers
	"①②③④⑤⑥⑦⑧⑨⑩⑪⑫⑬⑭⑮⑯⑰⑱⑲⑳" +
	// roman numerals
	"ⅠⅡⅢⅣⅤⅥⅦⅧⅨⅩⅰⅱⅲⅳⅴⅵⅶⅷⅸⅹ" +
	// unit symbols
	"㍉㌔㌢㍍㌘㌧㌃㌶㍑㍗㌍㌦㌣㌫㍊㌻㎜㎝㎞㎎㎏㏄㎡" +
	// era names, abbreviations and enclosed ideographs
	"㍻㍾㍽㍼〝〟№㏍℡㊤㊥㊦㊧㊨㈱㈲㈹" +
	// math symbols
	"≒≡∫∮∑√⊥∠∟⊿∵∩∪" +
	// IBM extensions
	"￢￤＇＂"

// IsHalfWidth reports whether the trimmed value consists only of printable ASCII.
func IsHalfWidth(value string) bool {
	return halfWidthRegex.MatchString(strings.TrimSpace(value))
}

// IsHalfWidthAlphanumeric reports whether the trimmed value consists only of ASCII letters and digits.
func IsHalfWidthAlphanumeric(value string) bool {
	return halfWidthAlphanumericRegex.MatchString(strings.TrimSpace(value))
}

// IsHalfWidthAlpha reports whether the trimmed value consists only of ASCII letters.
func IsHalfWidthAlpha(value string) bool {
	return halfWidthAlphaRegex.MatchString(strings.TrimSpace(value))
}

// IsHalfWidthNumeric reports whether the trimmed value consists only of ASCII digits.
func IsHalfWidthNumeric(value string) bool {
	return halfWidthNumericRegex.MatchString(strings.TrimSpace(value))
}

// ContainsForbiddenChars reports whether the value holds any platform-dependent symbol.
func ContainsForbiddenChars(value string) bool {
	return strings.ContainsAny(value, forbiddenChars)
}

// charsetRule builds a skip-if-blank rule around a character class pattern.
func charsetRule(field, value string, re *regexp.Regexp, key, message string) Rule {
	return Rule{
		Check: func() bool {
			if IsBlank(value) {
				return true
			}
			return re.MatchString(strings.TrimSpace(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// HalfWidth validates that a value contains only half-width (ASCII 0x20-0x7E) characters.
func HalfWidth(field, value string) Rule {
	return charsetRule(field, value, halfWidthRegex,
		"validation.half_width", "must contain only half-width characters")
}

// HalfWidthMultiLine is HalfWidth that also accepts line breaks.
func HalfWidthMultiLine(field, value string) Rule {
	return charsetRule(field, value, halfWidthMultiLineRegex,
		"validation.half_width", "must contain only half-width characters")
}

func HalfWidthAlphanumeric(field, value string) Rule {
	return charsetRule(field, value, halfWidthAlphanumericRegex,
		"validation.half_width_alphanumeric", "must contain only half-width letters and digits")
}

func HalfWidthAlphanumericMultiLine(field, value string) Rule {
	return charsetRule(field, value, halfWidthAlphanumericMultiLineRegex,
		"validation.half_width_alphanumeric", "must contain only half-width letters and digits")
}

func HalfWidthAlpha(field, value string) Rule {
	return charsetRule(field, value, halfWidthAlphaRegex,
		"validation.half_width_alpha", "must contain only half-width letters")
}

func HalfWidthAlphaMultiLine(field, value string) Rule {
	return charsetRule(field, value, halfWidthAlphaMultiLineRegex,
		"validation.half_width_alpha", "must contain only half-width letters")
}

func HalfWidthNumeric(field, value string) Rule {
	return charsetRule(field, value, halfWidthNumericRegex,
		"validation.half_width_numeric", "must contain only half-width digits")
}

func HalfWidthNumericMultiLine(field, value string) Rule {
	return charsetRule(field, value, halfWidthNumericMultiLineRegex,
		"validation.half_width_numeric", "must contain only half-width digits")
}

// NoForbiddenChars fails when the value contains a platform-dependent symbol
// such as a circled number, a roman numeral or a unit ligature.
func NoForbiddenChars(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !ContainsForbiddenChars(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not contain platform-dependent characters",
			TranslationKey: "validation.forbidden_chars",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
