package middleware

import (
	"net/http"
	"time"

	"github.com/grachmannico95/cnab-ledger/pkg/logger"
	"github.com/labstack/echo/v4"
)

func Logging(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				// let echo write the response so the status below is the real one
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			fields := []interface{}{
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"bytes_in", req.ContentLength,
				"bytes_out", res.Size,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", c.RealIP(),
			}

			switch {
			case res.Status >= http.StatusInternalServerError:
				log.Error(req.Context(), "HTTP request", fields...)
			case res.Status >= http.StatusBadRequest:
				log.Warn(req.Context(), "HTTP request", fields...)
			default:
				log.Info(req.Context(), "HTTP request", fields...)
			}

			return nil
		}
	}
}
