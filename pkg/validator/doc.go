// Package validator provides rule-building helpers for validating text form
// input: required and paired fields, half-width character classes, byte and
// character lengths, platform-dependent symbols, calendar dates in six
// layouts, date ranges, e-mail addresses, phone numbers and postal codes.
//
// Every exported validation function constructs and returns a Rule. A Rule
// holds a Check func and translation-friendly error metadata; nothing is
// evaluated until the rule is run. There is no shared mutable state, so rules
// are safe to build and run from any goroutine.
//
// Except for Required and RequiredTogether, every rule passes when the value is
// blank after trimming. Combine a format rule with Required to make a field
// mandatory.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.MaxChars("name", name, 50),
//	    validator.ValidDate("dateFrom", dateFrom, validator.DateFormatYYYYMMDDHyphen),
//	    validator.DateRange("dateTo", dateFrom, dateTo, validator.DateFormatYYYYMMDDHyphen),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, msg := range verrs.Messages() {
//	        fmt.Println(msg) // [name]field is required
//	    }
//	}
//
// Rule.Result evaluates a single rule into a Result. Messages evaluates a list
// of rules and returns the failures formatted as "[field]message".
//
// # Error Handling
//
// ValidationErrors implements Is and Error, so errors.Is(err,
// ErrValidationFailed) detects validation problems while errors.As recovers
// the details. Individual field errors can be inspected with Has, Get,
// GetErrors and Fields.
package validator
