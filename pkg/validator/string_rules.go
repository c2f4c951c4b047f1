package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// IsBlank reports whether the value is empty after trimming whitespace.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// ByteLength returns the byte length of the trimmed value. Every byte of a
// multi-byte UTF-8 sequence counts, so a full-width character weighs 3.
func ByteLength(value string) int {
	return len(strings.TrimSpace(value))
}

// CharLength returns the number of characters (runes) in the trimmed value.
func CharLength(value string) int {
	return utf8.RuneCountInString(strings.TrimSpace(value))
}

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !IsBlank(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// RequiredTogether fails when exactly one of value and other is filled in.
// Both blank or both present pass.
func RequiredTogether(field, value, other string) Rule {
	return Rule{
		Check: func() bool {
			return IsBlank(value) == IsBlank(other)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be filled in together",
			TranslationKey: "validation.required_together",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ByteLen validates the exact byte length of a non-blank value.
func ByteLen(field, value string, exact int) Rule {
	return Rule{
		Check: func() bool {
			if IsBlank(value) {
				return true
			}
			return ByteLength(value) == exact
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be exactly %d bytes long", exact),
			TranslationKey: "validation.byte_length",
			TranslationValues: map[string]any{
				"field":  field,
				"length": exact,
			},
		},
	}
}

// MaxByteLen validates the maximum byte length of a non-blank value.
func MaxByteLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			if IsBlank(value) {
				return true
			}
			return ByteLength(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d bytes long", max),
			TranslationKey: "validation.max_byte_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// MaxChars validates the maximum character count of a non-blank value.
func MaxChars(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			if IsBlank(value) {
				return true
			}
			return CharLength(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// MinChars validates the minimum character count of a non-blank value.
func MinChars(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			if IsBlank(value) {
				return true
			}
			return CharLength(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}
