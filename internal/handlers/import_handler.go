package handlers

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"

	"budgethero/internal/dto"
	"budgethero/internal/errors"
	"budgethero/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	importFormField = "file"
	// multipart framing allowance on top of the file itself
	multipartOverhead = 64 << 10
)

// ImportHandler accepts bank statement uploads
type ImportHandler struct {
	importService  services.ImportServiceInterface
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewImportHandler creates a new import handler. A non-positive limit
// disables the upload size check.
func NewImportHandler(importService services.ImportServiceInterface, maxUploadBytes int64, logger *slog.Logger) *ImportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportHandler{
		importService:  importService,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

type importFunc func(ctx context.Context, userID uuid.UUID, fileName string, r io.Reader) (*dto.ImportResponse, error)

// ImportCSV imports a CSV statement export
// @Summary Import a CSV file
// @Description Upload a bank CSV export as multipart field "file". The column layout is detected from the header; rows that fail to parse are reported as skipped.
// @Tags Imports
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 201 {object} dto.ImportResponse "Import summary"
// @Failure 400 {object} errors.ErrorResponse "IMPORT_005 - Missing file"
// @Failure 413 {object} errors.ErrorResponse "IMPORT_004 - File too large"
// @Failure 422 {object} errors.ErrorResponse "IMPORT_001 - No valid transactions or IMPORT_003 - Too many rows"
// @Router /imports/csv [post]
func (h *ImportHandler) ImportCSV(c echo.Context) error {
	return h.handleUpload(c, h.importService.ImportCSV)
}

// ImportOFX imports an OFX or QFX statement
// @Summary Import an OFX file
// @Description Upload an OFX/QFX bank or credit card statement as multipart field "file".
// @Tags Imports
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "OFX file"
// @Success 201 {object} dto.ImportResponse "Import summary"
// @Failure 400 {object} errors.ErrorResponse "IMPORT_005 - Missing file"
// @Failure 413 {object} errors.ErrorResponse "IMPORT_004 - File too large"
// @Failure 422 {object} errors.ErrorResponse "IMPORT_007 - Malformed file"
// @Router /imports/ofx [post]
func (h *ImportHandler) ImportOFX(c echo.Context) error {
	return h.handleUpload(c, h.importService.ImportOFX)
}

func (h *ImportHandler) handleUpload(c echo.Context, run importFunc) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	req := c.Request()
	if h.maxUploadBytes > 0 {
		req.Body = http.MaxBytesReader(c.Response(), req.Body, h.maxUploadBytes+multipartOverhead)
	}

	fileHeader, err := c.FormFile(importFormField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if stderrors.As(err, &maxErr) {
			return SendError(c, errors.ImportFileTooLarge)
		}
		return SendError(c, errors.ImportMissingFile)
	}

	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		return SendError(c, errors.ImportFileTooLarge)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}
	defer file.Close()

	response, err := run(req.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, response)
}

// ListImports lists the user's import batches, newest first
// @Summary List imports
// @Tags Imports
// @Security BearerAuth
// @Produce json
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit (max 100)" default(20)
// @Success 200 {object} dto.ImportListResponse "Import batches"
// @Router /imports [get]
func (h *ImportHandler) ListImports(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	offset := max(getIntParam(c, "offset", 0), 0)
	limit := getIntParam(c, "limit", defaultPageLimit)
	if limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}

	imports, total, err := h.importService.ListImports(userID, offset, limit)
	if err != nil {
		return sendServiceError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, dto.ImportListResponse{
		Imports: imports,
		Total:   total,
		Offset:  offset,
		Limit:   limit,
	})
}
