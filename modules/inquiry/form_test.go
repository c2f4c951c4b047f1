package inquiry_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/modules/inquiry"
)

func validForm() inquiry.Form {
	return inquiry.Form{
		Name:     "山田 太郎",
		PostCode: "100-0001",
		Address:  "東京都千代田区千代田1-1",
		DateFrom: "2024-04-01",
		DateTo:   "2024-04-30",
		Mail:     "taro@example.com",
		Phone:    "03-1234-5678",
		Note:     "よろしくお願いします。",
	}
}

func TestForm_Normalize(t *testing.T) {
	t.Parallel()

	got := inquiry.Form{
		Name:     "  山田 太郎\t",
		PostCode: "１００－０００１",
		Address:  "<i>東京都</i> &amp; 千代田区",
		DateFrom: " ２０２４－０４－０１ ",
		Mail:     "ｔａｒｏ＠ｅｘａｍｐｌｅ．ｃｏｍ",
		Phone:    "０３－１２３４－５６７８",
		Note:     "line one\r\n<script>x()</script>line two\r",
	}.Normalize()

	assert.Equal(t, "山田 太郎", got.Name)
	assert.Equal(t, "100-0001", got.PostCode)
	assert.Equal(t, "東京都 & 千代田区", got.Address)
	assert.Equal(t, "2024-04-01", got.DateFrom)
	assert.Equal(t, "taro@example.com", got.Mail)
	assert.Equal(t, "03-1234-5678", got.Phone)
	assert.Equal(t, "line one\nline two", got.Note)

	t.Run("keeps text that only looks like markup", func(t *testing.T) {
		got := inquiry.Form{Address: "A<B棟 101", Note: "x<y and y>z"}.Normalize()

		assert.Equal(t, "A<B棟 101", got.Address)
		assert.Equal(t, "x<y and y>z", got.Note)
	})
}

func TestForm_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete form", func(t *testing.T) {
		assert.Nil(t, validForm().Validate())
	})

	t.Run("accepts optional fields left blank", func(t *testing.T) {
		assert.Nil(t, inquiry.Form{Name: "taro", Mail: "taro@example.com"}.Validate())
	})

	t.Run("requires name and mail", func(t *testing.T) {
		errs := inquiry.Form{}.Validate()
		require.NotNil(t, errs)
		assert.Equal(t, []string{"name", "mail"}, errs.Fields())
	})

	t.Run("reports each failing field in order", func(t *testing.T) {
		form := validForm()
		form.Name = strings.Repeat("あ", 51)
		form.PostCode = "12-34567"
		form.Address = "①丁目"
		form.DateTo = "2024-03-31"
		form.Mail = "taro@"
		form.Phone = "12"
		form.Note = "㈱"

		errs := form.Validate()
		assert.Equal(t, []string{"name", "postCode", "address", "dateTo", "mail", "phone", "note"}, errs.Fields())
	})

	t.Run("full-width mail fails before normalization", func(t *testing.T) {
		form := validForm()
		form.Mail = "ｔａｒｏ＠ｅｘａｍｐｌｅ．ｃｏｍ"

		assert.True(t, form.Validate().Has("mail"))
		assert.Nil(t, form.Normalize().Validate())
	})

	t.Run("address is limited in bytes", func(t *testing.T) {
		form := validForm()
		form.Address = strings.Repeat("あ", 66) + "ab"
		assert.Nil(t, form.Validate())

		form.Address = strings.Repeat("あ", 67)
		assert.Equal(t, []string{"address"}, form.Validate().Fields())
	})
}
