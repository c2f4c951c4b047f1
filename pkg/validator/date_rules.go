package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateFormat identifies one of the supported textual date layouts.
type DateFormat int

const (
	DateFormatUnknown DateFormat = iota
	DateFormatYYYYMMDD
	DateFormatYYYYMMDDSlash
	DateFormatYYYYMMDDHyphen
	DateFormatYYYYMM
	DateFormatYYYYMMSlash
	DateFormatYYYYMMHyphen
)

// String returns the human-readable layout, e.g. "YYYY/MM/DD".
func (f DateFormat) String() string {
	switch f {
	case DateFormatYYYYMMDD:
		return "YYYYMMDD"
	case DateFormatYYYYMMDDSlash:
		return "YYYY/MM/DD"
	case DateFormatYYYYMMDDHyphen:
		return "YYYY-MM-DD"
	case DateFormatYYYYMM:
		return "YYYYMM"
	case DateFormatYYYYMMSlash:
		return "YYYY/MM"
	case DateFormatYYYYMMHyphen:
		return "YYYY-MM"
	default:
		return "unknown"
	}
}

// MonthOnly reports whether the layout omits the day component.
func (f DateFormat) MonthOnly() bool {
	return f == DateFormatYYYYMM || f == DateFormatYYYYMMSlash || f == DateFormatYYYYMMHyphen
}

// dateFormats is ordered: the first matching pattern wins.
var dateFormats = []struct {
	format  DateFormat
	pattern *regexp.Regexp
}{
	{DateFormatYYYYMMDD, regexp.MustCompile(`^[0-9]{8}$`)},
	{DateFormatYYYYMMDDSlash, regexp.MustCompile(`^[0-9]{4}/[0-9]{1,2}/[0-9]{1,2}$`)},
	{DateFormatYYYYMMDDHyphen, regexp.MustCompile(`^[0-9]{4}-[0-9]{1,2}-[0-9]{1,2}$`)},
	{DateFormatYYYYMM, regexp.MustCompile(`^[0-9]{6}$`)},
	{DateFormatYYYYMMSlash, regexp.MustCompile(`^[0-9]{4}/[0-9]{1,2}$`)},
	{DateFormatYYYYMMHyphen, regexp.MustCompile(`^[0-9]{4}-[0-9]{1,2}$`)},
}

// daysInMonth allows Feb 29; the leap-year check runs separately.
var daysInMonth = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var dateSeparators = strings.NewReplacer("/", "", "-", "")

// DetectDateFormat returns the layout of the trimmed value, or DateFormatUnknown.
func DetectDateFormat(value string) DateFormat {
	value = strings.TrimSpace(value)
	for _, df := range dateFormats {
		if df.pattern.MatchString(value) {
			return df.format
		}
	}
	return DateFormatUnknown
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// IsValidDate reports whether the value is a calendar date in any supported layout.
func IsValidDate(value string) bool {
	_, _, _, err := splitDate(value, DateFormatUnknown)
	return err == nil
}

// ParseDate parses a value in the given layout into a UTC midnight time.
// Month-only layouts resolve to the first day of the month.
func ParseDate(value string, format DateFormat) (time.Time, error) {
	y, m, d, err := splitDate(value, format)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC), nil
}

// splitDate detects, normalizes and checks a date. An expected format of
// DateFormatUnknown accepts any supported layout.
func splitDate(value string, expected DateFormat) (year, month, day int, err error) {
	value = strings.TrimSpace(value)

	detected := DetectDateFormat(value)
	if detected == DateFormatUnknown {
		return 0, 0, 0, ErrUnknownDateFormat
	}
	if expected != DateFormatUnknown && detected != expected {
		return 0, 0, 0, fmt.Errorf("%w: expected %s, got %s", ErrDateFormatMismatch, expected, detected)
	}

	digits := dateSeparators.Replace(value)
	if detected.MonthOnly() {
		digits += "01"
	}
	if len(digits) != 8 || !halfWidthNumericRegex.MatchString(digits) {
		return 0, 0, 0, ErrInvalidDate
	}

	year, _ = strconv.Atoi(digits[0:4])
	month, _ = strconv.Atoi(digits[4:6])
	day, _ = strconv.Atoi(digits[6:8])

	if month < 1 || month > 12 {
		return 0, 0, 0, ErrInvalidDate
	}
	if day < 1 || day > daysInMonth[month-1] {
		return 0, 0, 0, ErrInvalidDate
	}
	if month == 2 && day == 29 && !IsLeapYear(year) {
		return 0, 0, 0, ErrInvalidDate
	}

	return year, month, day, nil
}

// ValidDate validates that a non-blank value is a calendar date written in the given layout.
func ValidDate(field, value string, format DateFormat) Rule {
	return Rule{
		Check: func() bool {
			if IsBlank(value) {
				return true
			}
			_, _, _, err := splitDate(value, format)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a valid date in %s format", format),
			TranslationKey: "validation.date",
			TranslationValues: map[string]any{
				"field":  field,
				"format": format.String(),
			},
		},
	}
}

// ValidDateAny validates that a non-blank value is a calendar date in any supported layout.
func ValidDateAny(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsBlank(value) || IsValidDate(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid date",
			TranslationKey: "validation.date_any",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// DateRange fails when both dates are valid in the given layout and to is not
// strictly after from. An incomplete or malformed pair passes: format problems
// are reported by ValidDate on the individual fields.
func DateRange(field, from, to string, format DateFormat) Rule {
	return Rule{
		Check: func() bool {
			if IsBlank(from) || IsBlank(to) {
				return true
			}
			fromDate, err := ParseDate(from, format)
			if err != nil {
				return true
			}
			toDate, err := ParseDate(to, format)
			if err != nil {
				return true
			}
			return toDate.After(fromDate)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be later than the start date",
			TranslationKey: "validation.date_range",
			TranslationValues: map[string]any{
				"field":  field,
				"format": format.String(),
			},
		},
	}
}
