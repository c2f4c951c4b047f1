package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}

// Lang records the negotiated request language.
func Lang(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// Fields records the names of form fields, e.g. the ones that failed validation.
func Fields(names ...string) slog.Attr {
	return slog.Any("fields", names)
}

func ClientIP(ip string) slog.Attr {
	return slog.String("client_ip", ip)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
