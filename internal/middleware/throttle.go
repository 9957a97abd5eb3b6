package middleware

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/grachmannico95/cnab-ledger/internal/config"
	"github.com/grachmannico95/cnab-ledger/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// Throttle limits requests per client. Clients are identified by the
// configured header, falling back to the caller's IP address.
type Throttle struct {
	limiters *cache.Cache
	limit    rate.Limit
	burst    int
	header   string
	retry    string
	logger   *logger.Logger
}

func NewThrottle(cfg config.ThrottleConfig, log *logger.Logger) *Throttle {
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	// an idle limiter is dropped only once it would have refilled anyway
	idle := cfg.Interval * time.Duration(burst) * 2
	if idle < time.Minute {
		idle = time.Minute
	}

	return &Throttle{
		limiters: cache.New(idle, 2*idle),
		limit:    rate.Every(cfg.Interval),
		burst:    burst,
		header:   cfg.ClientHeader,
		retry:    strconv.Itoa(int(math.Ceil(cfg.Interval.Seconds()))),
		logger:   log,
	}
}

func (t *Throttle) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			clientID := t.clientID(c)
			ctx := logger.WithClientID(req.Context(), clientID)
			c.SetRequest(req.WithContext(ctx))

			if !t.limiter(clientID).Allow() {
				t.logger.Warn(ctx, "Request throttled",
					"path", req.URL.Path,
				)
				c.Response().Header().Set("Retry-After", t.retry)
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "too many requests, try again later",
				})
			}

			return next(c)
		}
	}
}

func (t *Throttle) clientID(c echo.Context) string {
	if t.header != "" {
		if id := strings.TrimSpace(c.Request().Header.Get(t.header)); id != "" {
			return id
		}
	}
	return c.RealIP()
}

func (t *Throttle) limiter(clientID string) *rate.Limiter {
	if v, ok := t.limiters.Get(clientID); ok {
		l := v.(*rate.Limiter)
		t.limiters.Set(clientID, l, cache.DefaultExpiration)
		return l
	}

	l := rate.NewLimiter(t.limit, t.burst)
	if err := t.limiters.Add(clientID, l, cache.DefaultExpiration); err != nil {
		// lost the race to another request from the same client
		if v, ok := t.limiters.Get(clientID); ok {
			return v.(*rate.Limiter)
		}
	}
	return l
}
