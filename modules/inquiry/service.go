package inquiry

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/email"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/ratelimiter"
)

// Service serves the inquiry form. Nothing is persisted: a valid submission
// is logged and echoed back.
type Service struct {
	tr           *i18n.Translator
	views        Views
	errorHandler handler.ErrorHandler[handler.Context]
	limiter      ratelimiter.Limiter
	keyFunc      ratelimiter.KeyFunc
	mailer        email.EmailSender
	notifyTo      string
	notifyTimeout time.Duration
	pending       sync.WaitGroup
	log           *slog.Logger
}

type Option func(*Service)

func WithViews(v Views) Option {
	return func(s *Service) {
		s.views = v
	}
}

func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		s.errorHandler = h
	}
}

// WithLimiter throttles POST requests per key. keyFunc defaults to the
// client IP combined with the path.
func WithLimiter(l ratelimiter.Limiter, keyFunc ratelimiter.KeyFunc) Option {
	return func(s *Service) {
		s.limiter = l
		if keyFunc != nil {
			s.keyFunc = keyFunc
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func NewService(tr *i18n.Translator, opts ...Option) *Service {
	s := &Service{
		tr:            tr,
		keyFunc:       ratelimiter.Composite(ratelimiter.ByClientIP(), ratelimiter.ByPath()),
		notifyTimeout: DefaultNotifyTimeout,
		log:           slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.views = s.views.withDefaults()
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, s.errorHandlerConfig())
	}
	return s
}

func (s *Service) errorHandlerConfig() handler.ErrorHandlerConfig {
	return handler.ErrorHandlerConfig{
		ErrorPage:  s.views.ErrorPage,
		ErrorToast: s.views.ErrorToast,
		Translate: func(r *http.Request, key string) string {
			return s.tr.Td(i18n.GetLocale(r.Context()), "errors."+key, key)
		},
	}
}

// ErrorHandler returns the handler used for this module's failures.
func (s *Service) ErrorHandler() handler.ErrorHandler[handler.Context] {
	return s.errorHandler
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithBinders[handler.Context, pageRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, pageRequest](s.errorHandler),
	))

	r.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(ratelimiter.Middleware(s.limiter, s.keyFunc,
				ratelimiter.WithLogger(s.log),
				ratelimiter.WithResponder(s.rateLimited),
			))
		}

		r.Post("/validate", handler.Wrap(s.validate,
			handler.WithBinders[handler.Context, Form](handler.Signals()),
			handler.WithErrorHandler[handler.Context, Form](s.errorHandler),
		))

		r.Post("/submit", handler.Wrap(s.submit,
			handler.WithBinders[handler.Context, Form](binder.First(
				handler.Signals(),
				binder.JSON(),
				binder.Form(),
			)),
			handler.WithErrorHandler[handler.Context, Form](s.errorHandler),
		))
	})

	return r
}

func (s *Service) rateLimited(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result, err error) {
	ctx := handler.NewContext(w, r)
	if err != nil {
		s.errorHandler(ctx, handler.ErrServiceUnavailable.Wrap(err))
		return
	}
	s.errorHandler(ctx, handler.ErrTooManyRequests)
}

type pageRequest struct {
	Sent bool `query:"sent"`
}

func (s *Service) pageParams(ctx handler.Context, form Form, messages []string) PageParams {
	lang := i18n.GetLocale(ctx)
	return PageParams{
		Lang: lang,
		Text: func(key string) string {
			return s.tr.T(lang, key)
		},
		Form:     form,
		Messages: messages,
	}
}

func (s *Service) page(ctx handler.Context, req pageRequest) handler.Response {
	params := s.pageParams(ctx, Form{}, nil)
	params.Sent = req.Sent
	return handler.Templ(s.views.Page(params))
}

// validate answers DataStar input events with the current message list.
func (s *Service) validate(ctx handler.Context, form Form) handler.Response {
	messages := Localize(s.tr, i18n.GetLocale(ctx), form.Normalize().Validate())
	return s.patchErrors(messages)
}

func (s *Service) patchErrors(messages []string) handler.Response {
	return handler.SSE(func(stream handler.StreamContext) error {
		if err := stream.SendComponent(s.views.Errors(ErrorsParams{Messages: messages}), handler.WithTarget(ErrorsTarget)); err != nil {
			return err
		}
		return stream.SendSignals(map[string]any{"valid": len(messages) == 0})
	})
}

func (s *Service) submit(ctx handler.Context, form Form) handler.Response {
	r := ctx.Request()
	lang := i18n.GetLocale(ctx)
	form = form.Normalize()

	if errs := form.Validate(); !errs.IsEmpty() {
		s.log.InfoContext(ctx, "inquiry rejected",
			logger.Component("inquiry"),
			logger.Fields(errs.Fields()...),
		)

		switch {
		case handler.IsDataStar(r):
			return s.patchErrors(Localize(s.tr, lang, errs))
		case acceptsHTML(r):
			return handler.TemplWithStatus(http.StatusUnprocessableEntity,
				s.views.Page(s.pageParams(ctx, form, Localize(s.tr, lang, errs))))
		default:
			return handler.JSONError(FieldErrors(s.tr, lang, errs))
		}
	}

	s.log.InfoContext(ctx, "inquiry accepted",
		logger.Component("inquiry"),
		logger.Event("inquiry_submitted"),
	)
	s.notify(ctx, form)

	if acceptsHTML(r) || handler.IsDataStar(r) {
		return handler.Redirect("/?sent=true")
	}
	return handler.JSON(form)
}

func acceptsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
