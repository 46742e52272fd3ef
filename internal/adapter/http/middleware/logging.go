package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger returns middleware that logs HTTP requests on completion.
// Each entry carries the request ID set by the RequestID middleware so
// normalization log lines can be correlated with the request that produced
// them.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let Echo's error handler produce the response first so
				// the status below reflects what the client actually saw.
				c.Error(err)
			}

			duration := time.Since(start)
			req := c.Request()
			res := c.Response()

			levelFor(log, res.Status).
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", res.Status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			// Error already handled via c.Error above.
			return nil
		}
	}
}

// levelFor maps a response status to a log level: 5xx logs at error,
// 4xx at warn, everything else at info.
func levelFor(log zerolog.Logger, status int) *zerolog.Event {
	switch {
	case status >= 500:
		return log.Error()
	case status >= 400:
		return log.Warn()
	default:
		return log.Info()
	}
}
