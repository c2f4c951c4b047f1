package inquiry

import (
	"maps"

	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Label returns the localized field label, or the field name.
func Label(tr *i18n.Translator, lang, field string) string {
	return tr.Td(lang, "fields."+field, field)
}

// localizeMessage renders one error in lang, falling back to the English
// default carried by the rule.
func localizeMessage(tr *i18n.Translator, lang string, e validator.ValidationError) string {
	values := maps.Clone(e.TranslationValues)
	if values == nil {
		values = make(map[string]any, 1)
	}
	values["field"] = Label(tr, lang, e.Field)

	return tr.Td(lang, e.TranslationKey, e.Message, i18n.Args(values)...)
}

// Localize renders errs as "[label]message" lines in lang, in rule order.
func Localize(tr *i18n.Translator, lang string, errs validator.ValidationErrors) []string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, validator.FormatMessage(Label(tr, lang, e.Field), localizeMessage(tr, lang, e)))
	}
	return messages
}

// FieldErrors groups localized messages by field for the JSON error envelope.
func FieldErrors(tr *i18n.Translator, lang string, errs validator.ValidationErrors) handler.ValidationError {
	out := handler.NewValidationError()
	for _, e := range errs {
		out.Add(e.Field, localizeMessage(tr, lang, e))
	}
	return out
}
