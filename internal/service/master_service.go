package service

import (
	"errors"

	"github.com/varun-k1411/gipl-quality-alert/internal/dto"
	"github.com/varun-k1411/gipl-quality-alert/internal/repository"
)

// ── master-data module business errors ──

var ErrPartNotFound = errors.New("part no not found in part master")

// MasterService exposes the read-only master catalog to the UI.
type MasterService interface {
	Customers() []string
	Machines() []string
	Operators() []string
	Shifts() []string
	PartNos() []string
	PartDetail(partNo string) (*dto.PartDetailResponse, error)
	ProcessSteps(partNo string) ([]string, error)
}

type masterService struct {
	repo *repository.Repository
}

// NewMasterService creates the MasterService.
func NewMasterService(repo *repository.Repository) MasterService {
	return &masterService{repo: repo}
}

func (s *masterService) Customers() []string { return s.repo.Master.Customers() }
func (s *masterService) Machines() []string  { return s.repo.Master.Machines() }
func (s *masterService) Operators() []string { return s.repo.Master.Operators() }
func (s *masterService) Shifts() []string    { return s.repo.Master.Shifts() }

func (s *masterService) PartNos() []string {
	parts := s.repo.Master.Parts()
	nos := make([]string, 0, len(parts))
	for _, p := range parts {
		nos = append(nos, p.PartNo)
	}
	return nos
}

func (s *masterService) PartDetail(partNo string) (*dto.PartDetailResponse, error) {
	p, ok := s.repo.Master.PartByNo(partNo)
	if !ok {
		return nil, ErrPartNotFound
	}
	return &dto.PartDetailResponse{
		PartNo:      p.PartNo,
		Description: p.Description,
		Size:        p.Size,
		Grade:       p.Grade,
	}, nil
}

func (s *masterService) ProcessSteps(partNo string) ([]string, error) {
	if _, ok := s.repo.Master.PartByNo(partNo); !ok {
		return nil, ErrPartNotFound
	}
	return s.repo.Master.ProcessSteps(partNo), nil
}
