package handler

import "github.com/varun-k1411/gipl-quality-alert/internal/service"

// Handler aggregates the HTTP handlers.
type Handler struct {
	Alert  *AlertHandler
	Master *MasterHandler
	Export *ExportHandler
}

// NewHandler wires the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Alert:  NewAlertHandler(svc.Alert),
		Master: NewMasterHandler(svc.Master),
		Export: NewExportHandler(svc.Export),
	}
}
