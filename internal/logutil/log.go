package logutil

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type (
	key byte
)

var (
	loggerKey = key(1)
)

// Setup returns the root logger for the given environment. Local runs get
// human-readable console output, everything else keeps the default JSON
// stream.
func Setup(env string) zerolog.Logger {
	if env == "local" {
		return log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel)
	}
	return log.Logger
}

func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func GetOrDefault(ctx context.Context) zerolog.Logger {
	v := ctx.Value(loggerKey)
	if v == nil {
		return log.Logger
	}
	return v.(zerolog.Logger)
}

// RequestLogger tags every request with a fresh request id, pushes the
// per-request logger into the context and writes one line per request once
// the handler is done.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		reqlog := GetOrDefault(ctx).With().
			Str("request.id", uuid.NewString()).
			Str("request.method", r.Method).
			Str("request.path", r.URL.Path).
			Logger()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r.WithContext(WithLogger(ctx, reqlog)))
		reqlog.Info().
			Int("response.status", sw.status).
			Dur("response.took", time.Since(start)).
			Msg("Request served")
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (s *statusWriter) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
