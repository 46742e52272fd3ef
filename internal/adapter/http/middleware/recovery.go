package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/itinerary-normalization-service/internal/adapter/http/response"
)

// RecoveryConfig controls how panics are reported.
type RecoveryConfig struct {
	// DisableStackAll limits the stack trace to the panicking goroutine.
	DisableStackAll bool
	// DisablePrintStack omits the stack trace from the log entry entirely.
	DisablePrintStack bool
}

// DefaultRecoveryConfig returns the default recovery configuration.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{
		DisableStackAll:   false,
		DisablePrintStack: false,
	}
}

// Recover returns middleware that recovers from panics in the handler chain.
// It logs the panic with stack trace and returns a 500 Internal Server Error.
// The server continues to handle subsequent requests.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig returns recovery middleware with custom configuration.
func RecoverWithConfig(log zerolog.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					logPanic(c, log, config, r)

					// Generic error response so internal details do not leak.
					if !c.Response().Committed {
						_ = response.InternalServerError(c)
					}
				}
			}()

			return next(c)
		}
	}
}

func logPanic(c echo.Context, log zerolog.Logger, config RecoveryConfig, r interface{}) {
	var panicMsg string
	if err, ok := r.(error); ok {
		panicMsg = err.Error()
	} else {
		panicMsg = fmt.Sprintf("%v", r)
	}

	event := log.Error().
		Str("request_id", GetRequestID(c)).
		Str("method", c.Request().Method).
		Str("path", c.Request().URL.Path).
		Str("panic", panicMsg)

	if !config.DisablePrintStack {
		event = event.Str("stack", string(debug.Stack()))
	}

	event.Msg("Panic recovered")
}
