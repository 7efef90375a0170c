package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/varun-k1411/gipl-quality-alert/internal/dto"
	"github.com/varun-k1411/gipl-quality-alert/internal/service"
	"github.com/varun-k1411/gipl-quality-alert/pkg/response"
)

// MasterHandler serves the read-only master-data lists the form is populated
// from.
type MasterHandler struct {
	masterSvc service.MasterService
}

// NewMasterHandler creates the MasterHandler.
func NewMasterHandler(masterSvc service.MasterService) *MasterHandler {
	return &MasterHandler{masterSvc: masterSvc}
}

// ListCustomers returns the customers selection list.
// GET /api/v1/masters/customers
func (h *MasterHandler) ListCustomers(c *gin.Context) {
	response.OK(c, dto.NameListResponse{List: h.masterSvc.Customers()})
}

// ListMachines returns the machines selection list.
// GET /api/v1/masters/machines
func (h *MasterHandler) ListMachines(c *gin.Context) {
	response.OK(c, dto.NameListResponse{List: h.masterSvc.Machines()})
}

// ListOperators returns the operators selection list.
// GET /api/v1/masters/operators
func (h *MasterHandler) ListOperators(c *gin.Context) {
	response.OK(c, dto.NameListResponse{List: h.masterSvc.Operators()})
}

// ListShifts returns the shifts selection list.
// GET /api/v1/masters/shifts
func (h *MasterHandler) ListShifts(c *gin.Context) {
	response.OK(c, dto.NameListResponse{List: h.masterSvc.Shifts()})
}

// ListParts returns the parts selection list.
// GET /api/v1/masters/parts
func (h *MasterHandler) ListParts(c *gin.Context) {
	response.OK(c, dto.NameListResponse{List: h.masterSvc.PartNos()})
}

// GetPart returns description/size/grade for one part.
// GET /api/v1/masters/parts/:part_no
func (h *MasterHandler) GetPart(c *gin.Context) {
	partNo := c.Param("part_no")
	detail, err := h.masterSvc.PartDetail(partNo)
	if err != nil {
		h.handleMasterError(c, err)
		return
	}
	response.OK(c, detail)
}

// ListProcessSteps returns the process steps valid for one part.
// GET /api/v1/masters/parts/:part_no/processes
func (h *MasterHandler) ListProcessSteps(c *gin.Context) {
	partNo := c.Param("part_no")
	steps, err := h.masterSvc.ProcessSteps(partNo)
	if err != nil {
		h.handleMasterError(c, err)
		return
	}
	response.OK(c, dto.NameListResponse{List: steps})
}

func (h *MasterHandler) handleMasterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPartNotFound):
		response.NotFound(c, 12001, "part no not found")
	default:
		response.InternalError(c)
	}
}
