package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/grachmannico95/cnab-ledger/pkg/logger"
	"github.com/labstack/echo/v4"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	storage Pinger
	timeout time.Duration
	logger  *logger.Logger
}

func NewHealthHandler(storage Pinger, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		storage: storage,
		timeout: 2 * time.Second,
		logger:  log,
	}
}

func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	status, storage, code := "ok", "ok", http.StatusOK
	if err := h.storage.Ping(ctx); err != nil {
		h.logger.Error(ctx, "Storage ping failed",
			"error", err,
		)
		status, storage, code = "degraded", "unavailable", http.StatusServiceUnavailable
	}

	return c.JSON(code, map[string]interface{}{
		"status":    status,
		"storage":   storage,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
