package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports ErrValidationFailed as the generic cause of any ValidationErrors.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

func (ve ValidationErrors) GetTranslatableErrors() []ValidationError {
	return ve
}

// Messages returns every error formatted as "[field]message", in order.
func (ve ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, FormatMessage(err.Field, err.Message))
	}
	return messages
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Result is the evaluated outcome of a single rule.
// Message is empty when the rule passed.
type Result struct {
	Passed  bool
	Message string
}

// Result evaluates the rule. A rule without a Check always passes.
func (r Rule) Result() Result {
	if r.Check == nil || r.Check() {
		return Result{Passed: true}
	}
	return Result{
		Passed:  false,
		Message: FormatMessage(r.Error.Field, r.Error.Message),
	}
}

// FormatMessage prefixes a message with the bracketed field label.
func FormatMessage(label, message string) string {
	return "[" + label + "]" + message
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if rule.Check != nil && !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// Evaluate runs every rule and returns one Result per rule, in order.
func Evaluate(rules ...Rule) []Result {
	results := make([]Result, 0, len(rules))
	for _, rule := range rules {
		results = append(results, rule.Result())
	}
	return results
}

// Messages runs every rule and collects the messages of the failed ones.
// The returned slice is empty, never nil, when all rules pass.
func Messages(rules ...Rule) []string {
	messages := []string{}
	for _, rule := range rules {
		if res := rule.Result(); !res.Passed {
			messages = append(messages, res.Message)
		}
	}
	return messages
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
