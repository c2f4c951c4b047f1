package email

import (
	"context"
	"errors"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`
	ReplyTo  string `json:"reply_to,omitempty"` // overrides Config.ReplyTo
	Subject  string `json:"subject"`
	BodyHTML string `json:"body_html"`
	Tag      string `json:"tag,omitempty"`
}

// Validate checks the recipient addresses and that subject and body are set.
func (p SendEmailParams) Validate() error {
	err := validator.Apply(
		validator.Required("send_to", p.SendTo),
		validator.Email("send_to", p.SendTo),
		validator.Email("reply_to", p.ReplyTo),
		validator.Required("subject", p.Subject),
		validator.Required("body_html", p.BodyHTML),
	)
	if err != nil {
		return errors.Join(ErrInvalidParams, err)
	}
	return nil
}

// Render renders a templ component into an HTML body.
func Render(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
