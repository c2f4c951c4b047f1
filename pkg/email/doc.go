// Package email sends transactional mail through a provider-agnostic
// EmailSender.
//
// Two senders are provided. NewPostmarkClient delivers through Postmark.
// NewDevSender writes each message to a directory as an HTML body plus a
// JSON metadata file, which is what local development uses. NewSender picks
// one from Config: Postmark when a server token is set, the directory
// otherwise.
//
// # Usage
//
//	sender, err := email.NewSender(cfg)
//	if err != nil {
//		return err
//	}
//
//	body, err := email.Render(ctx, notificationComponent)
//	if err != nil {
//		return err
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "owner@example.com",
//		ReplyTo:  "customer@example.com",
//		Subject:  "New inquiry",
//		BodyHTML: body,
//		Tag:      "inquiry",
//	})
//
// Parameters and configuration are checked with pkg/validator before
// anything is sent. Failures wrap ErrInvalidParams or ErrInvalidConfig, and
// delivery failures wrap ErrFailedToSendEmail.
package email
