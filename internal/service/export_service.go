package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/varun-k1411/gipl-quality-alert/internal/model"
	"github.com/varun-k1411/gipl-quality-alert/internal/repository"
)

// ── export module business errors ──

var (
	ErrExportEmpty        = errors.New("register has no records to export")
	ErrExportGenerateFail = errors.New("generate excel file failed")
)

// ExportService exports the NC register for offline review.
//
// The export is returned as a bytes.Buffer; the handler sets the download
// headers and writes it out.
type ExportService interface {
	// ExportRegister exports the full register as one xlsx sheet.
	// Returns the file content and a suggested filename.
	ExportRegister(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportRegister(ctx context.Context) (*bytes.Buffer, string, error) {
	recs, err := s.repo.NCRecord.LoadAll(ctx)
	if err != nil {
		s.logger.Error("load register failed", zap.Error(err))
		return nil, "", err
	}
	if len(recs) == 0 {
		return nil, "", ErrExportEmpty
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "NC Register"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#C00000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// header row
	for i, col := range model.RegisterColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, col)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
		name, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, name, name, 16)
	}

	// data rows, register order
	for r := range recs {
		okPath := ""
		if recs[r].OKImagePath != nil {
			okPath = *recs[r].OKImagePath
		}
		values := []interface{}{
			recs[r].NCNo,
			recs[r].BarcodeNo,
			recs[r].Date,
			recs[r].Customer,
			recs[r].PartNo,
			recs[r].Description,
			recs[r].Size,
			recs[r].Grade,
			recs[r].Process,
			recs[r].Machine,
			recs[r].Operator,
			recs[r].Shift,
			recs[r].Qty,
			recs[r].Defect,
			recs[r].PreparedBy,
			recs[r].DefectImagePath,
			okPath,
			recs[r].AlertImagePath,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write excel failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("nc_register_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}
