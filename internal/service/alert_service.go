package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/varun-k1411/gipl-quality-alert/config"
	"github.com/varun-k1411/gipl-quality-alert/internal/dto"
	"github.com/varun-k1411/gipl-quality-alert/internal/model"
	"github.com/varun-k1411/gipl-quality-alert/internal/ncid"
	"github.com/varun-k1411/gipl-quality-alert/internal/render"
	"github.com/varun-k1411/gipl-quality-alert/internal/repository"
)

// ── alert module business errors ──

var (
	ErrMissingDefectImage = errors.New("NOT OK image is required")
	ErrMissingBarcode     = errors.New("barcode no is required")
	ErrInvalidQuantity    = errors.New("quantity must be a positive number")
	ErrBadImage           = errors.New("uploaded image cannot be decoded")
	// ErrIDConflict is returned when the retry after a duplicate NC number
	// also collides. Safe to resubmit.
	ErrIDConflict = errors.New("nc number conflict, please resubmit")
)

// DocumentRenderer renders a record plus its decoded photos to a file.
// Satisfied by *render.Renderer.
type DocumentRenderer interface {
	RenderToFile(rec *model.NCRecord, defect, ok image.Image, path string) error
}

// AlertService is the submit-alert orchestration.
type AlertService interface {
	// Submit runs the full pipeline for one NC event: validate, allocate the
	// NC number, persist photos, render the alert document, append the
	// record. okImage may be nil.
	Submit(ctx context.Context, req *dto.SubmitAlertRequest, defectImage, okImage []byte) (*dto.SubmitAlertResponse, error)
	// List returns the register in insertion order.
	List(ctx context.Context) ([]dto.AlertListItem, error)
}

type alertService struct {
	cfg      *config.Config
	repo     *repository.Repository
	renderer DocumentRenderer
	strategy ncid.Strategy
	logger   *zap.Logger

	// serializes the read-allocate-append sequence within this process
	mu sync.Mutex

	// now is swapped in tests to pin the year
	now func() time.Time
}

// NewAlertService creates the AlertService.
func NewAlertService(cfg *config.Config, repo *repository.Repository, renderer DocumentRenderer, logger *zap.Logger) AlertService {
	return &alertService{
		cfg:      cfg,
		repo:     repo,
		renderer: renderer,
		strategy: ncid.Strategy(cfg.Alert.AllocatorStrategy),
		logger:   logger,
		now:      time.Now,
	}
}

func (s *alertService) Submit(ctx context.Context, req *dto.SubmitAlertRequest, defectImage, okImage []byte) (*dto.SubmitAlertResponse, error) {
	// 1. validate before any side effect
	if len(defectImage) == 0 {
		return nil, ErrMissingDefectImage
	}
	if strings.TrimSpace(req.BarcodeNo) == "" {
		return nil, ErrMissingBarcode
	}
	if req.Qty <= 0 {
		return nil, ErrInvalidQuantity
	}

	// decode photos up front: a corrupt upload must fail the submission
	// before anything touches disk
	defectImg, err := render.Decode(defectImage)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadImage, err)
	}
	var okImg image.Image
	if len(okImage) > 0 {
		if okImg, err = render.Decode(okImage); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadImage, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	resp, err := s.submit(ctx, req, defectImage, okImage, defectImg, okImg)
	if errors.Is(err, repository.ErrDuplicateNCNo) {
		// another writer won the NC number; re-allocate from the fresh
		// snapshot and retry exactly once
		s.logger.Warn("nc number collision, retrying with fresh allocation")
		resp, err = s.submit(ctx, req, defectImage, okImage, defectImg, okImg)
		if errors.Is(err, repository.ErrDuplicateNCNo) {
			return nil, ErrIDConflict
		}
	}
	return resp, err
}

// submit runs one allocation attempt end to end. Side effects happen in
// order; on failure nothing is rolled back — already written photo files are
// orphans recoverable by resubmitting under a fresh NC number.
func (s *alertService) submit(ctx context.Context, req *dto.SubmitAlertRequest, defectImage, okImage []byte, defectImg, okImg image.Image) (*dto.SubmitAlertResponse, error) {
	// 2. allocate the NC number from the current register snapshot
	history, err := s.repo.NCRecord.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load register: %w", err)
	}
	ncNos := make([]string, len(history))
	for i := range history {
		ncNos[i] = history[i].NCNo
	}
	now := s.now()
	ncNo := ncid.Next(ncNos, now, s.strategy)

	// 3. persist photo evidence
	defectPath, err := s.repo.Images.SaveDefect(ncNo, defectImage)
	if err != nil {
		return nil, fmt.Errorf("persist defect image: %w", err)
	}
	var okPath *string
	if len(okImage) > 0 {
		p, err := s.repo.Images.SaveOK(ncNo, okImage)
		if err != nil {
			return nil, fmt.Errorf("persist ok image: %w", err)
		}
		okPath = &p
	}

	rec := &model.NCRecord{
		NCNo:            ncNo,
		BarcodeNo:       strings.TrimSpace(req.BarcodeNo),
		Date:            now.Format(model.DateLayout),
		Customer:        req.Customer,
		PartNo:          req.PartNo,
		Process:         req.Process,
		Machine:         req.Machine,
		Operator:        req.Operator,
		Shift:           req.Shift,
		Qty:             req.Qty,
		Defect:          req.Defect,
		PreparedBy:      req.PreparedBy,
		DefectImagePath: defectPath,
		OKImagePath:     okPath,
	}
	s.fillPartDetail(rec)

	// 4. render the alert document (before the append: a render failure
	// must leave the register untouched)
	alertPath := s.repo.Images.AlertPath(ncNo)
	if err := s.renderer.RenderToFile(rec, defectImg, okImg, alertPath); err != nil {
		return nil, fmt.Errorf("render alert: %w", err)
	}
	rec.AlertImagePath = alertPath

	// 5. append the fully populated record
	if err := s.repo.NCRecord.Append(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrDuplicateNCNo) {
			return nil, err
		}
		return nil, fmt.Errorf("append record: %w", err)
	}

	s.logger.Info("quality alert generated",
		zap.String("nc_no", ncNo),
		zap.String("part_no", rec.PartNo),
		zap.Int("qty", rec.Qty),
	)

	// 6. return the number and artifact for display/download
	return &dto.SubmitAlertResponse{
		NCNo:           ncNo,
		AlertImagePath: alertPath,
		AlertURL:       s.alertURL(ncNo),
	}, nil
}

func (s *alertService) List(ctx context.Context) ([]dto.AlertListItem, error) {
	recs, err := s.repo.NCRecord.LoadAll(ctx)
	if err != nil {
		s.logger.Error("load register failed", zap.Error(err))
		return nil, err
	}

	items := make([]dto.AlertListItem, 0, len(recs))
	for i := range recs {
		items = append(items, dto.AlertListItem{
			NCNo:       recs[i].NCNo,
			BarcodeNo:  recs[i].BarcodeNo,
			Date:       recs[i].Date,
			Customer:   recs[i].Customer,
			PartNo:     recs[i].PartNo,
			Process:    recs[i].Process,
			Defect:     recs[i].Defect,
			Qty:        recs[i].Qty,
			PreparedBy: recs[i].PreparedBy,
			AlertURL:   s.alertURL(recs[i].NCNo),
		})
	}
	return items, nil
}

// fillPartDetail resolves description/size/grade from the part master. Parts
// outside the master keep the em-dash placeholder the form shows.
func (s *alertService) fillPartDetail(rec *model.NCRecord) {
	if p, ok := s.repo.Master.PartByNo(rec.PartNo); ok {
		rec.Description = p.Description
		rec.Size = p.Size
		rec.Grade = p.Grade
		return
	}
	rec.Description = "—"
}

func (s *alertService) alertURL(ncNo string) string {
	return strings.TrimRight(s.cfg.Server.BaseURL, "/") + "/files/alerts/" + ncNo + ".png"
}
