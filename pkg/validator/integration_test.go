package validator_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

type contactForm struct {
	Name     string
	PostCode string
	Address  string
	DateFrom string
	DateTo   string
	Mail     string
	Phone    string
}

func (f contactForm) rules() []validator.Rule {
	const layout = validator.DateFormatYYYYMMDDHyphen
	return []validator.Rule{
		validator.Required("name", f.Name),
		validator.MaxChars("name", f.Name, 50),
		validator.NoForbiddenChars("name", f.Name),
		validator.PostalCode("postCode", f.PostCode),
		validator.MaxByteLen("address", f.Address, 200),
		validator.ValidDate("dateFrom", f.DateFrom, layout),
		validator.ValidDate("dateTo", f.DateTo, layout),
		validator.RequiredTogether("dateTo", f.DateFrom, f.DateTo),
		validator.DateRange("dateTo", f.DateFrom, f.DateTo, layout),
		validator.Required("mail", f.Mail),
		validator.Email("mail", f.Mail),
		validator.Phone("phone", f.Phone),
	}
}

func TestIntegration_ContactForm(t *testing.T) {
	t.Run("accepts a complete valid form", func(t *testing.T) {
		form := contactForm{
			Name:     "山田 太郎",
			PostCode: "100-0001",
			Address:  "東京都千代田区千代田1-1",
			DateFrom: "2024-04-01",
			DateTo:   "2024-04-30",
			Mail:     "taro@example.com",
			Phone:    "03-1234-5678",
		}

		assert.NoError(t, validator.Apply(form.rules()...))
		assert.Empty(t, validator.Messages(form.rules()...))
	})

	t.Run("accepts a minimal form with optional fields blank", func(t *testing.T) {
		form := contactForm{Name: "taro", Mail: "taro@example.com"}

		assert.NoError(t, validator.Apply(form.rules()...))
	})

	t.Run("reports every failing field", func(t *testing.T) {
		form := contactForm{
			Name:     "①太郎",
			PostCode: "12-34567",
			Address:  strings.Repeat("あ", 67),
			DateFrom: "2024-05-01",
			DateTo:   "2024-04-30",
			Phone:    "12",
		}

		err := validator.Apply(form.rules()...)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"name", "postCode", "address", "dateTo", "mail", "phone"}, verrs.Fields())
		assert.Equal(t, []string{"field is required"}, verrs.Get("mail"))
	})

	t.Run("reports a half-filled date range once", func(t *testing.T) {
		form := contactForm{Name: "taro", Mail: "taro@example.com", DateFrom: "2024-04-01"}

		msgs := validator.Messages(form.rules()...)
		assert.Equal(t, []string{"[dateTo]must be filled in together"}, msgs)
	})

	t.Run("reports an invalid date without a range error", func(t *testing.T) {
		form := contactForm{
			Name:     "taro",
			Mail:     "taro@example.com",
			DateFrom: "2023-02-29",
			DateTo:   "2023-01-01",
		}

		msgs := validator.Messages(form.rules()...)
		assert.Equal(t, []string{"[dateFrom]must be a valid date in YYYY-MM-DD format"}, msgs)
	})
}
