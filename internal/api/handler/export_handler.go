package handler

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/varun-k1411/gipl-quality-alert/internal/service"
	"github.com/varun-k1411/gipl-quality-alert/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves register downloads.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportRegister streams the full NC register as an xlsx workbook.
// GET /api/v1/export/register
func (h *ExportHandler) ExportRegister(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportRegister(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	escaped := url.QueryEscape(filename)
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, escaped, escaped))
	c.Data(200, xlsxContentType, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportEmpty):
		response.NotFound(c, 13001, "register is empty, nothing to export")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.Error(c, 500, 13002, "export generation failed")
	default:
		response.InternalError(c)
	}
}
