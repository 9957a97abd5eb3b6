package middleware

import (
	"github.com/google/uuid"
	"github.com/grachmannico95/cnab-ledger/pkg/logger"
	"github.com/labstack/echo/v4"
)

const (
	HeaderTraceID   = "X-Trace-ID"
	HeaderRequestID = "X-Request-ID"
)

// RequestID tags the request context with a trace id, taken from the caller
// when supplied and generated otherwise, and echoes it back.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(HeaderTraceID)
			if traceID == "" {
				traceID = req.Header.Get(HeaderRequestID)
			}
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.SetRequest(req.WithContext(logger.WithTraceID(req.Context(), traceID)))
			c.Response().Header().Set(HeaderTraceID, traceID)

			return next(c)
		}
	}
}
