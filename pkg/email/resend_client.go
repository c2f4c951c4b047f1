package email

import (
	"cmp"
	"context"
	"errors"
	"net/url"

	"github.com/resend/resend-go/v2"
)

type resendClient struct {
	client *resend.Client
	config Config
}

// ResendOption configures the Resend client.
type ResendOption func(*resend.Client) error

// WithResendBaseURL points the client at another API endpoint.
func WithResendBaseURL(rawURL string) ResendOption {
	return func(c *resend.Client) error {
		u, err := url.Parse(rawURL)
		if err != nil {
			return err
		}
		c.BaseURL = u
		return nil
	}
}

// NewResendClient creates a Resend-backed email sender.
func NewResendClient(cfg Config, opts ...ResendOption) (EmailSender, error) {
	if err := cfg.validateResend(); err != nil {
		return nil, err
	}

	client := resend.NewClient(cfg.ResendAPIKey)
	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
	}

	return &resendClient{client: client, config: cfg}, nil
}

func (c *resendClient) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	req := &resend.SendEmailRequest{
		From:    c.config.SenderEmail,
		To:      []string{params.SendTo},
		ReplyTo: cmp.Or(params.ReplyTo, c.config.ReplyTo),
		Subject: params.Subject,
		Html:    params.BodyHTML,
	}
	if params.Tag != "" {
		req.Tags = []resend.Tag{{Name: "category", Value: params.Tag}}
	}

	if _, err := c.client.Emails.SendWithContext(ctx, req); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	return nil
}
