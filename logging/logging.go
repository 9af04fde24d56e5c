// Package logging configures the process loggers: slog (tinted in dev, JSON in
// production) for the gateway and zerolog for the services.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs the default slog logger and the global zerolog logger at level
// (debug, info, warn or error; anything else is info).
func Setup(level string, production bool) {
	SetupWithWriter(os.Stderr, level, production)
}

func SetupWithWriter(w io.Writer, level string, production bool) {
	l := ParseLevel(level)

	var handler slog.Handler
	if production {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: l})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      l,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		})
	}
	slog.SetDefault(slog.New(handler))

	zerolog.SetGlobalLevel(zerologLevel(l))
	if production {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
	}
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func zerologLevel(l slog.Level) zerolog.Level {
	switch l {
	case slog.LevelDebug:
		return zerolog.DebugLevel
	case slog.LevelWarn:
		return zerolog.WarnLevel
	case slog.LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// RequestLogger logs one line per request once the handler chain has finished.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}
		switch {
		case status >= 500:
			slog.Error("request failed", attrs...)
		case status >= 400:
			slog.Warn("request rejected", attrs...)
		default:
			slog.Info("request ok", attrs...)
		}
	}
}
