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

// Component records the emitting component.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Host records a request or registry host.
func Host(host string) slog.Attr {
	return slog.String("host", host)
}

// Language records a language identifier.
func Language(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// RedirectTarget records the location a request was redirected to.
func RedirectTarget(location string) slog.Attr {
	return slog.String("redirect_to", location)
}

// Store records the settings backend name.
func Store(name string) slog.Attr {
	return slog.String("store", name)
}

// Duration records d under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Attempt records a retry attempt number.
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}
