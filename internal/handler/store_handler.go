package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/grachmannico95/cnab-ledger/internal/domain"
	"github.com/grachmannico95/cnab-ledger/internal/service"
	"github.com/grachmannico95/cnab-ledger/pkg/logger"
	"github.com/labstack/echo/v4"
)

type StoreHandler struct {
	service         service.LedgerService
	defaultPageSize int
	logger          *logger.Logger
}

func NewStoreHandler(service service.LedgerService, defaultPageSize int, log *logger.Logger) *StoreHandler {
	return &StoreHandler{
		service:         service,
		defaultPageSize: defaultPageSize,
		logger:          log,
	}
}

// List returns a page of stores with their transactions and balances.
// Query: page, page_size (or pageSize), cpf.
func (h *StoreHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := intParam(c, 1, "page")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "page must be an integer",
		})
	}

	pageSize, err := intParam(c, h.defaultPageSize, "page_size", "pageSize")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "page_size must be an integer",
		})
	}

	query := domain.StoresQuery{
		Page:     page,
		PageSize: pageSize,
		CPF:      c.QueryParam("cpf"),
	}

	h.logger.Debug(ctx, "Listing stores",
		"page", query.Page,
		"page_size", query.PageSize,
		"cpf", query.CPF,
	)

	result, err := h.service.GetStores(ctx, query)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPageParams) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": err.Error(),
			})
		}

		h.logger.Error(ctx, "Failed to list stores",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list stores",
		})
	}

	return c.JSON(http.StatusOK, result)
}

// intParam reads the first present query parameter among names.
func intParam(c echo.Context, fallback int, names ...string) (int, error) {
	for _, name := range names {
		if raw := c.QueryParam(name); raw != "" {
			return strconv.Atoi(raw)
		}
	}
	return fallback, nil
}
