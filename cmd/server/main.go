// Command server serves the sample inquiry form.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/modules/inquiry"
	"github.com/dmitrymomot/formkit/modules/inquiry/locales"
	"github.com/dmitrymomot/formkit/pkg/clientip"
	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/email"
	"github.com/dmitrymomot/formkit/pkg/environment"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/ratelimiter"
	"github.com/dmitrymomot/formkit/pkg/redis"
	"github.com/dmitrymomot/formkit/pkg/requestid"
)

type appConfig struct {
	Env                 string   `env:"APP_ENV" envDefault:"development"`
	Name                string   `env:"APP_NAME" envDefault:"formkit"`
	DefaultLang         string   `env:"APP_DEFAULT_LANG" envDefault:"ja"`
	TrustedProxyHeaders []string `env:"TRUSTED_PROXY_HEADERS" envSeparator:","`
	NotifyEmail         string   `env:"INQUIRY_NOTIFY_EMAIL"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	var (
		appCfg   appConfig
		httpCfg  httpserver.Config
		limitCfg ratelimiter.Config
		redisCfg redis.Config
		mailCfg  email.Config
	)
	if err := errors.Join(
		config.Load(&appCfg),
		config.Load(&httpCfg),
		config.Load(&limitCfg),
		config.Load(&redisCfg),
		config.Load(&mailCfg),
	); err != nil {
		return err
	}

	env := environment.Parse(appCfg.Env)
	log := logger.New(
		logger.WithEnvironment(env, appCfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tr, err := i18n.NewTranslator(ctx,
		i18n.NewEmbedAdapter(i18n.NewYAMLParser(), locales.FS, "."),
		i18n.WithDefaultLanguage(appCfg.DefaultLang),
		i18n.WithLogger(log),
	)
	if err != nil {
		return err
	}

	store, checks, closeStore, err := newStore(ctx, redisCfg)
	if err != nil {
		return err
	}
	defer closeStore()

	limiter, err := ratelimiter.NewBucket(store, limitCfg)
	if err != nil {
		return err
	}

	opts := []inquiry.Option{
		inquiry.WithLogger(log),
		inquiry.WithLimiter(limiter, ratelimiter.Composite(
			ratelimiter.ByClientIP(appCfg.TrustedProxyHeaders...),
			ratelimiter.ByPath(),
		)),
	}
	if appCfg.NotifyEmail != "" {
		sender, err := email.NewSender(mailCfg)
		if err != nil {
			return err
		}
		opts = append(opts, inquiry.WithNotifier(sender, appCfg.NotifyEmail))
	}
	svc := inquiry.NewService(tr, opts...)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		environment.Middleware(env),
		clientip.Middleware(appCfg.TrustedProxyHeaders...),
		middleware.Recoverer,
		i18n.Middleware(i18n.DefaultLangExtractor(tr.SupportedLanguages()...), tr.DefaultLanguage()),
	)
	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, checks...))
	r.NotFound(notFound(svc))
	r.Mount("/", svc.Handle())

	log.InfoContext(ctx, "starting server",
		slog.String("addr", httpCfg.Addr),
		slog.Bool("redis", redisCfg.Enabled()),
		slog.Bool("postmark", mailCfg.UsePostmark()),
		slog.Bool("resend", mailCfg.UseResend()),
	)
	err = httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log)).Run(ctx, r)

	drainCtx, cancel := context.WithTimeout(context.Background(), inquiry.DefaultNotifyTimeout)
	defer cancel()
	if derr := svc.Shutdown(drainCtx); derr != nil {
		log.Warn("pending notifications abandoned", logger.Error(derr))
	}
	return err
}

// newStore connects to Redis when it is configured and falls back to
// process memory otherwise.
func newStore(ctx context.Context, cfg redis.Config) (ratelimiter.Store, []httpserver.Check, func(), error) {
	if !cfg.Enabled() {
		ms := ratelimiter.NewMemoryStore()
		return ms, nil, ms.Close, nil
	}

	client, err := redis.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	checks := []httpserver.Check{{Name: "redis", Check: redis.Healthcheck(client)}}
	return ratelimiter.NewRedisStore(client), checks, func() { _ = client.Close() }, nil
}

func notFound(svc *inquiry.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.ErrorHandler()(handler.NewContext(w, r), handler.ErrNotFound)
	}
}
