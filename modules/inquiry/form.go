package inquiry

import (
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// DateFormat is the layout accepted by the date fields.
const DateFormat = validator.DateFormatYYYYMMDDHyphen

const (
	maxNameChars    = 50
	maxAddressBytes = 200
	maxMailChars    = 256
	maxNoteChars    = 1000
)

// Form is the inquiry payload. The same struct is bound from form posts,
// JSON bodies and DataStar signals.
type Form struct {
	Name     string `form:"name" json:"name"`
	PostCode string `form:"postCode" json:"postCode"`
	Address  string `form:"address" json:"address"`
	DateFrom string `form:"dateFrom" json:"dateFrom"`
	DateTo   string `form:"dateTo" json:"dateTo"`
	Mail     string `form:"mail" json:"mail"`
	Phone    string `form:"phone" json:"phone"`
	Note     string `form:"note" json:"note"`
}

var (
	singleLine = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.StripHTML, sanitizer.Trim)
	halfWidth  = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.Trim, sanitizer.ToHalfWidth)
	multiLine  = sanitizer.Compose(sanitizer.NormalizeNewlines, sanitizer.StripHTML, sanitizer.Trim)
)

// Normalize trims every field, drops markup from the free-text fields and
// folds full-width ASCII in the fields that only accept half-width input.
func (f Form) Normalize() Form {
	return Form{
		Name:     singleLine(f.Name),
		PostCode: halfWidth(f.PostCode),
		Address:  singleLine(f.Address),
		DateFrom: halfWidth(f.DateFrom),
		DateTo:   halfWidth(f.DateTo),
		Mail:     halfWidth(f.Mail),
		Phone:    halfWidth(f.Phone),
		Note:     multiLine(f.Note),
	}
}

// Rules lists the checks in display order.
func (f Form) Rules() []validator.Rule {
	return []validator.Rule{
		validator.Required("name", f.Name),
		validator.MaxChars("name", f.Name, maxNameChars),
		validator.NoForbiddenChars("name", f.Name),

		validator.PostalCode("postCode", f.PostCode),

		validator.MaxByteLen("address", f.Address, maxAddressBytes),
		validator.NoForbiddenChars("address", f.Address),

		validator.ValidDate("dateFrom", f.DateFrom, DateFormat),
		validator.ValidDate("dateTo", f.DateTo, DateFormat),
		validator.RequiredTogether("dateTo", f.DateFrom, f.DateTo),
		validator.DateRange("dateTo", f.DateFrom, f.DateTo, DateFormat),

		validator.Required("mail", f.Mail),
		validator.HalfWidth("mail", f.Mail),
		validator.Email("mail", f.Mail),
		validator.MaxChars("mail", f.Mail, maxMailChars),

		validator.Phone("phone", f.Phone),

		validator.MaxChars("note", f.Note, maxNoteChars),
		validator.NoForbiddenChars("note", f.Note),
	}
}

// Validate returns the failed rules, or nil.
func (f Form) Validate() validator.ValidationErrors {
	return validator.ExtractValidationErrors(validator.Apply(f.Rules()...))
}
