package inquiry

import (
	"context"
	"time"

	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/email"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// NotificationTag marks inquiry notifications at the mail provider.
const NotificationTag = "inquiry"

// DefaultNotifyTimeout bounds a single notification send.
const DefaultNotifyTimeout = 30 * time.Second

// WithNotifier mails every accepted inquiry to the given address. The
// submitter's address is used as reply-to.
func WithNotifier(sender email.EmailSender, to string) Option {
	return func(s *Service) {
		s.mailer = sender
		s.notifyTo = to
	}
}

// WithNotifyTimeout bounds each notification send. Non-positive values are ignored.
func WithNotifyTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.notifyTimeout = d
		}
	}
}

// notify sends the notification in the background. The request context only
// contributes its values, so the send outlives the response but not the
// notify timeout.
func (s *Service) notify(ctx context.Context, form Form) *async.Future[struct{}] {
	if s.mailer == nil || s.notifyTo == "" {
		return nil
	}

	s.pending.Add(1)
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	return async.Async(ctx, form, func(ctx context.Context, form Form) (struct{}, error) {
		defer s.pending.Done()
		defer cancel()
		return s.sendNotification(ctx, form)
	})
}

// Shutdown waits for notifications that are still being sent. It returns
// ctx.Err() if ctx is done first.
func (s *Service) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) sendNotification(ctx context.Context, form Form) (struct{}, error) {
	lang := s.tr.DefaultLanguage()

	body, err := email.Render(ctx, s.views.Notification(NotificationParams{
		Lang: lang,
		Text: func(key string) string { return s.tr.T(lang, key) },
		Form: form,
	}))
	if err == nil {
		err = s.mailer.SendEmail(ctx, email.SendEmailParams{
			SendTo:   s.notifyTo,
			ReplyTo:  form.Mail,
			Subject:  s.tr.T(lang, "mail.subject", "name", form.Name),
			BodyHTML: body,
			Tag:      NotificationTag,
		})
	}
	if err != nil {
		s.log.ErrorContext(ctx, "inquiry notification failed",
			logger.Component("inquiry"),
			logger.Error(err),
		)
		return struct{}{}, err
	}

	s.log.DebugContext(ctx, "inquiry notification sent", logger.Component("inquiry"))
	return struct{}{}, nil
}
