package validator

import (
	"regexp"
	"strings"
)

var (
	emailPatterns = []*regexp.Regexp{
		regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$"),
		// legacy carrier addresses may hold consecutive dots or a dot before the @
		regexp.MustCompile(`^[a-zA-Z0-9._?/+-]+@(?:docomo\.ne\.jp|ezweb\.ne\.jp|softbank\.ne\.jp|i\.softbank\.jp|disney\.ne\.jp|au\.com)$`),
	}

	phonePatterns = []*regexp.Regexp{
		// area code present: 03-1234-5678, 0123-45-6789
		regexp.MustCompile(`^0[0-9]{1,4}-[0-9]{1,4}-[0-9]{4}$`),
		// area code absent: 1234-5678
		regexp.MustCompile(`^[0-9]{1,4}-[0-9]{4}$`),
		// mobile: 090-1234-5678, 08012345678
		regexp.MustCompile(`^0[789]0-?[0-9]{4}-?[0-9]{4}$`),
		// toll-free: 0120-123-456, 0800-123-4567
		regexp.MustCompile(`^(?:0120|0800)-?[0-9]{3}-?[0-9]{3,4}$`),
	}

	postalCodePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^[0-9]{3}-[0-9]{4}$`),
		regexp.MustCompile(`^[0-9]{7}$`),
	}

	floatRegex         = regexp.MustCompile(`^-?[0-9]+(?:\.[0-9]+)?$`)
	positiveFloatRegex = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)?$`)
)

func matchAny(patterns []*regexp.Regexp, value string) bool {
	value = strings.TrimSpace(value)
	for _, re := range patterns {
		if re.MatchString(value) {
			return true
		}
	}
	return false
}

// IsEmail reports whether the trimmed value looks like a deliverable e-mail address.
func IsEmail(value string) bool {
	return matchAny(emailPatterns, value)
}

// IsPhone reports whether the trimmed value is a domestic phone number in one of
// the accepted layouts.
func IsPhone(value string) bool {
	return matchAny(phonePatterns, value)
}

// IsPostalCode reports whether the trimmed value is a 7-digit postal code,
// with or without the hyphen.
func IsPostalCode(value string) bool {
	return matchAny(postalCodePatterns, value)
}

// IsFloat reports whether the trimmed value is a signed decimal number.
func IsFloat(value string) bool {
	return floatRegex.MatchString(strings.TrimSpace(value))
}

func IsPositiveFloat(value string) bool {
	return positiveFloatRegex.MatchString(strings.TrimSpace(value))
}

// patternRule builds a skip-if-blank rule around a predicate.
func patternRule(field, value string, match func(string) bool, key, message string) Rule {
	return Rule{
		Check: func() bool {
			return IsBlank(value) || match(value)
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

// Email validates that a non-blank value is an e-mail address.
func Email(field, value string) Rule {
	return patternRule(field, value, IsEmail,
		"validation.email", "must be a valid email address")
}

// Phone validates that a non-blank value matches one of the phone layouts:
// with area code, without area code, mobile or toll-free.
func Phone(field, value string) Rule {
	return patternRule(field, value, IsPhone,
		"validation.phone", "must be a valid phone number")
}

// PostalCode validates that a non-blank value is NNN-NNNN or NNNNNNN.
func PostalCode(field, value string) Rule {
	return patternRule(field, value, IsPostalCode,
		"validation.postal_code", "must be a valid postal code")
}

func Float(field, value string) Rule {
	return patternRule(field, value, IsFloat,
		"validation.float", "must be a number")
}

func PositiveFloat(field, value string) Rule {
	return patternRule(field, value, IsPositiveFloat,
		"validation.positive_float", "must be a positive number")
}

// Digits validates that a non-blank value consists of digits only.
// Unlike HalfWidthNumeric it has no multi-line variant.
func Digits(field, value string) Rule {
	return patternRule(field, value, IsHalfWidthNumeric,
		"validation.digits", "must contain only digits")
}
