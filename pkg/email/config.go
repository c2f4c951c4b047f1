package email

import (
	"errors"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Config holds the mail settings. Without a Postmark token or a Resend key
// messages are written to DevDir instead of being delivered.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	ResendAPIKey         string `env:"RESEND_API_KEY"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"noreply@localhost.localdomain"`
	ReplyTo              string `env:"EMAIL_REPLY_TO"`
	DevDir               string `env:"EMAIL_DEV_DIR" envDefault:"tmp/emails"`
}

// UsePostmark reports whether a Postmark server token is configured.
func (c Config) UsePostmark() bool {
	return c.PostmarkServerToken != ""
}

// UseResend reports whether a Resend API key is configured.
func (c Config) UseResend() bool {
	return c.ResendAPIKey != ""
}

func (c Config) validatePostmark() error {
	return c.validateProvider(validator.Required("PostmarkServerToken", c.PostmarkServerToken))
}

func (c Config) validateResend() error {
	return c.validateProvider(validator.Required("ResendAPIKey", c.ResendAPIKey))
}

func (c Config) validateProvider(credentials validator.Rule) error {
	err := validator.Apply(
		credentials,
		validator.Required("SenderEmail", c.SenderEmail),
		validator.Email("SenderEmail", c.SenderEmail),
		validator.Email("ReplyTo", c.ReplyTo),
	)
	if err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// NewSender picks the first configured provider: Postmark, then Resend. It
// falls back to a DevSender writing to DevDir.
func NewSender(cfg Config) (EmailSender, error) {
	switch {
	case cfg.UsePostmark():
		return NewPostmarkClient(cfg)
	case cfg.UseResend():
		return NewResendClient(cfg)
	}
	if cfg.DevDir == "" {
		return nil, errors.Join(ErrInvalidConfig, errors.New("DevDir is required without a mail provider"))
	}
	return NewDevSender(cfg.DevDir), nil
}
