package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/grachmannico95/cnab-ledger/internal/domain"
	"github.com/grachmannico95/cnab-ledger/internal/eventbus"
	"github.com/grachmannico95/cnab-ledger/internal/service"
	"github.com/grachmannico95/cnab-ledger/pkg/logger"
	"github.com/labstack/echo/v4"
)

// multipart framing allowance on top of the file size limit
const multipartOverhead = 64 << 10

var errContentTooLarge = errors.New("content too large")

type CNABHandler struct {
	service  service.IngestionService
	maxBytes int64
	logger   *logger.Logger
}

func NewCNABHandler(service service.IngestionService, maxBytes int64, log *logger.Logger) *CNABHandler {
	return &CNABHandler{
		service:  service,
		maxBytes: maxBytes,
		logger:   log,
	}
}

// UploadFile ingests a multipart CNAB file sent in the "file" field.
func (h *CNABHandler) UploadFile(c echo.Context) error {
	ctx := c.Request().Context()

	req := c.Request()
	req.Body = http.MaxBytesReader(c.Response(), req.Body, h.maxBytes+multipartOverhead)

	file, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return h.tooLarge(c)
		}
		h.logger.Warn(ctx, "Failed to get file from request",
			"error", err,
		)
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "file is required",
		})
	}

	if file.Size > h.maxBytes {
		return h.tooLarge(c)
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error(ctx, "Failed to open file",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to open file",
		})
	}
	defer src.Close()

	content, err := h.readLimited(src)
	if err != nil {
		if errors.Is(err, errContentTooLarge) {
			return h.tooLarge(c)
		}
		h.logger.Error(ctx, "Failed to read file",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to read file",
		})
	}

	return h.ingest(c, content, file.Filename)
}

// UploadText ingests a CNAB document sent as the raw request body.
func (h *CNABHandler) UploadText(c echo.Context) error {
	ctx := c.Request().Context()

	content, err := h.readLimited(c.Request().Body)
	if err != nil {
		if errors.Is(err, errContentTooLarge) {
			return h.tooLarge(c)
		}
		h.logger.Error(ctx, "Failed to read request body",
			"error", err,
		)
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "failed to read request body",
		})
	}

	return h.ingest(c, content, "text")
}

func (h *CNABHandler) GetUpload(c echo.Context) error {
	ctx := c.Request().Context()
	uploadID := c.Param("id")

	upload, err := h.service.GetUpload(ctx, uploadID)
	if err != nil {
		if errors.Is(err, domain.ErrUploadNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "upload not found",
			})
		}

		h.logger.Error(ctx, "Failed to get upload",
			"upload_id", uploadID,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to get upload",
		})
	}

	return c.JSON(http.StatusOK, upload)
}

func (h *CNABHandler) ingest(c echo.Context, content []byte, source string) error {
	ctx := c.Request().Context()

	if len(bytes.TrimSpace(content)) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": domain.ErrEmptyContent.Error(),
		})
	}

	async, _ := strconv.ParseBool(c.QueryParam("async"))

	h.logger.Info(ctx, "Handling CNAB upload",
		"source", source,
		"size_bytes", len(content),
		"async", async,
	)

	if async {
		uploadID, err := h.service.Submit(ctx, content, source)
		if err != nil {
			return h.ingestError(c, err)
		}
		return c.JSON(http.StatusAccepted, map[string]string{
			"upload_id": uploadID,
			"status":    string(domain.UploadStatusQueued),
		})
	}

	upload, err := h.service.Ingest(ctx, bytes.NewReader(content), source)
	if err != nil {
		return h.ingestError(c, err)
	}

	h.logger.Info(ctx, "Upload processed",
		"upload_id", upload.ID,
		"status", upload.Status,
	)

	return c.JSON(http.StatusOK, upload)
}

func (h *CNABHandler) ingestError(c echo.Context, err error) error {
	ctx := c.Request().Context()

	switch {
	case errors.Is(err, domain.ErrEmptyContent):
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	case errors.Is(err, eventbus.ErrChannelFull):
		h.logger.Warn(ctx, "Batch queue is full")
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": "ingestion queue is full, try again later",
		})
	}

	h.logger.Error(ctx, "Failed to ingest CNAB content",
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": "failed to ingest content",
	})
}

func (h *CNABHandler) tooLarge(c echo.Context) error {
	return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{
		"error": fmt.Sprintf("content exceeds %d bytes", h.maxBytes),
	})
}

func (h *CNABHandler) readLimited(r io.Reader) ([]byte, error) {
	content, err := io.ReadAll(io.LimitReader(r, h.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > h.maxBytes {
		return nil, errContentTooLarge
	}
	return content, nil
}
