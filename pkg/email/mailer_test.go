package email_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/email"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func validParams() email.SendEmailParams {
	return email.SendEmailParams{
		SendTo:   "owner@example.com",
		ReplyTo:  "customer@example.com",
		Subject:  "New inquiry",
		BodyHTML: "<p>hello</p>",
		Tag:      "inquiry",
	}
}

func TestSendEmailParams_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts complete params", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validParams().Validate())
	})

	t.Run("reply-to is optional", func(t *testing.T) {
		t.Parallel()
		p := validParams()
		p.ReplyTo = ""
		assert.NoError(t, p.Validate())
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		t.Parallel()

		err := email.SendEmailParams{SendTo: "owner@", ReplyTo: "nope"}.Validate()
		require.ErrorIs(t, err, email.ErrInvalidParams)

		errs := validator.ExtractValidationErrors(err)
		assert.ElementsMatch(t, []string{"send_to", "reply_to", "subject", "body_html"}, errs.Fields())
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	body, err := email.Render(context.Background(), templ.Raw("<p>hi</p>"))
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", body)

	failing := templ.ComponentFunc(func(context.Context, io.Writer) error {
		return errors.New("boom")
	})
	_, err = email.Render(context.Background(), failing)
	assert.EqualError(t, err, "boom")
}

func TestNewSender(t *testing.T) {
	t.Parallel()

	t.Run("writes to a directory without a Postmark token", func(t *testing.T) {
		t.Parallel()

		sender, err := email.NewSender(email.Config{DevDir: t.TempDir()})
		require.NoError(t, err)
		assert.IsType(t, &email.DevSender{}, sender)
	})

	t.Run("requires a directory without a Postmark token", func(t *testing.T) {
		t.Parallel()

		_, err := email.NewSender(email.Config{})
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})

	t.Run("uses Resend when only an API key is set", func(t *testing.T) {
		t.Parallel()

		sender, err := email.NewSender(email.Config{
			ResendAPIKey: "re_test",
			SenderEmail:  "noreply@example.com",
		})
		require.NoError(t, err)
		_, isDev := sender.(*email.DevSender)
		assert.False(t, isDev)
	})

	t.Run("uses Postmark when a token is set", func(t *testing.T) {
		t.Parallel()

		sender, err := email.NewSender(email.Config{
			PostmarkServerToken: "server-token",
			SenderEmail:         "noreply@example.com",
		})
		require.NoError(t, err)
		_, isDev := sender.(*email.DevSender)
		assert.False(t, isDev)
	})
}
