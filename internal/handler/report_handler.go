package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/report"
	"github.com/dafibh/dompet/dompet-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// ReportDocuments gives access to exported report documents
type ReportDocuments interface {
	FileName(label string) string
	Open(ctx context.Context, label string) (io.ReadCloser, error)
}

// ReportHandler handles report assembly and export
type ReportHandler struct {
	reports   *service.ReportService
	documents ReportDocuments
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reports *service.ReportService, documents ReportDocuments) *ReportHandler {
	return &ReportHandler{reports: reports, documents: documents}
}

// GetReport godoc
// @Summary Assemble the report
// @Description Return the renderer-agnostic report blocks of the current ledger
// @Tags report
// @Produce json
// @Success 200 {object} service.Report
// @Router /report [get]
func (h *ReportHandler) GetReport(c echo.Context) error {
	return c.JSON(http.StatusOK, h.reports.Build())
}

// ExportReport godoc
// @Summary Export the report
// @Description Render the report as a paginated PDF and store it as laporan-keuangan-<month>.pdf
// @Tags report
// @Produce json
// @Success 201 {object} domain.ReportArtifact
// @Failure 500 {object} ProblemDetails
// @Router /report/export [post]
func (h *ReportHandler) ExportReport(c echo.Context) error {
	artifact, err := h.reports.Export(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err, "export report")
	}
	return c.JSON(http.StatusCreated, artifact)
}

// DownloadReport godoc
// @Summary Download the exported report
// @Description Stream the last exported document of the current month
// @Tags report
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 404 {object} ProblemDetails
// @Router /report/download [get]
func (h *ReportHandler) DownloadReport(c echo.Context) error {
	label := h.reports.Label()

	body, err := h.documents.Open(c.Request().Context(), label)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NewNotFoundError(c, "Report has not been exported yet")
		}
		return handleServiceError(c, err, "download report")
	}
	defer body.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", h.documents.FileName(label)))
	return c.Stream(http.StatusOK, report.ContentType, body)
}
