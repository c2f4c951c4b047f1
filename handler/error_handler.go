package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formkit/pkg/environment"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/requestid"
)

type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
	Details    string // raw error text, development only
}

type ErrorToastParams struct {
	Message   string
	Type      string // "error" or "warning"
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler. Nil components fall back to
// plain text responses.
type ErrorHandlerConfig struct {
	ErrorPage  func(ErrorPageParams) templ.Component
	ErrorToast func(ErrorToastParams) templ.Component

	// Translate turns an HTTPError key into a user-facing message.
	Translate func(r *http.Request, key string) string

	// ToastTarget defaults to "#toast-container".
	ToastTarget string
}

// ErrorInfo is the classification of an error for rendering and logging.
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       string
	LogLevel   slog.Level
}

func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "internal_server_error",
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		info.StatusCode = http.StatusUnprocessableEntity
		info.Message = validationErr.Error()
	}

	info.Type = "error"
	info.LogLevel = slog.LevelError
	if info.StatusCode < http.StatusInternalServerError {
		info.Type = "warning"
		info.LogLevel = slog.LevelWarn
	}

	return info
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// NewErrorHandler returns an ErrorHandler that logs the error and answers in
// the form the client expects: a toast patch for DataStar, the JSON envelope
// for JSON clients, or an error page.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		reqID := requestid.FromContext(r.Context())
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Component("error_handler"),
			logger.RequestID(reqID),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		message := info.Message
		if cfg.Translate != nil {
			message = cfg.Translate(r, info.Message)
		}

		var renderErr error
		switch {
		case IsDataStar(r) && cfg.ErrorToast != nil:
			renderErr = Templ(
				cfg.ErrorToast(ErrorToastParams{Message: message, Type: info.Type, RequestID: reqID}),
				WithTarget(cfg.ToastTarget),
				WithPatchMode(PatchPrepend),
			).Render(w, r)
		case wantsJSON(r):
			renderErr = JSONError(err).Render(w, r)
		case cfg.ErrorPage != nil:
			params := ErrorPageParams{
				Error:      message,
				StatusCode: info.StatusCode,
				RequestID:  reqID,
				RetryURL:   r.URL.Path,
			}
			if environment.IsDevelopment(r.Context()) {
				params.Details = err.Error()
			}
			renderErr = TemplWithStatus(info.StatusCode, cfg.ErrorPage(params)).Render(w, r)
		default:
			http.Error(w, message, info.StatusCode)
		}

		if renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Component("error_handler"),
				logger.RequestID(reqID),
				logger.Error(renderErr),
			)
		}
	}
}
