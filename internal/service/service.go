package service

import (
	"go.uber.org/zap"

	"github.com/varun-k1411/gipl-quality-alert/config"
	"github.com/varun-k1411/gipl-quality-alert/internal/repository"
)

// Service aggregates the business services.
type Service struct {
	Alert  AlertService
	Master MasterService
	Export ExportService
}

// NewService wires the service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	renderer DocumentRenderer,
	logger *zap.Logger,
) *Service {
	return &Service{
		Alert:  NewAlertService(cfg, repo, renderer, logger),
		Master: NewMasterService(repo),
		Export: NewExportService(repo, logger),
	}
}
