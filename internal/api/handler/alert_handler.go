package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/varun-k1411/gipl-quality-alert/internal/dto"
	"github.com/varun-k1411/gipl-quality-alert/internal/service"
	"github.com/varun-k1411/gipl-quality-alert/pkg/response"
)

// AlertHandler is the NC alert HTTP surface.
type AlertHandler struct {
	alertSvc service.AlertService
}

// NewAlertHandler creates the AlertHandler.
func NewAlertHandler(alertSvc service.AlertService) *AlertHandler {
	return &AlertHandler{alertSvc: alertSvc}
}

// SubmitAlert accepts one NC event and returns the generated alert.
// POST /api/v1/alerts (multipart/form-data; files: defect_image, ok_image)
func (h *AlertHandler) SubmitAlert(c *gin.Context) {
	var req dto.SubmitAlertRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 10001, "invalid form data")
		return
	}

	defectBytes, err := readFormFile(c, "defect_image")
	if err != nil {
		response.BadRequest(c, 10002, "read NOT OK image failed")
		return
	}
	okBytes, err := readFormFile(c, "ok_image")
	if err != nil {
		response.BadRequest(c, 10003, "read OK image failed")
		return
	}

	result, err := h.alertSvc.Submit(c.Request.Context(), &req, defectBytes, okBytes)
	if err != nil {
		h.handleAlertError(c, err)
		return
	}

	response.Created(c, result)
}

// ListAlerts returns the register in insertion order.
// GET /api/v1/alerts
func (h *AlertHandler) ListAlerts(c *gin.Context) {
	items, err := h.alertSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": items})
}

func (h *AlertHandler) handleAlertError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingDefectImage):
		response.BadRequest(c, 11001, "upload the NOT OK image")
	case errors.Is(err, service.ErrMissingBarcode):
		response.BadRequest(c, 11002, "enter the barcode no")
	case errors.Is(err, service.ErrInvalidQuantity):
		response.BadRequest(c, 11003, "quantity must be a positive number")
	case errors.Is(err, service.ErrBadImage):
		response.BadRequest(c, 11004, "uploaded image cannot be read")
	case errors.Is(err, service.ErrIDConflict):
		response.Conflict(c, 11005, "nc number conflict, please resubmit")
	default:
		// storage or render failure: name the failed stage for the operator
		response.ErrorWithDetails(c, 500, 50000, "alert generation failed", err.Error())
	}
}

// readFormFile reads an optional multipart file part in full.
// A missing part (or no multipart body at all) returns nil bytes, not an
// error; the service decides whether the part was required.
func readFormFile(c *gin.Context, name string) ([]byte, error) {
	fh, err := c.FormFile(name)
	if err != nil {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
