package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/varun-k1411/gipl-quality-alert/internal/model"
)

// csvNCRecordRepo is the default register backend (store.backend: csv): one
// human-readable tabular file, one row per NC record, header row matching
// model.RegisterColumns.
//
// Append rewrites the whole register to a temp file in the same directory and
// renames it over the original, so a crash mid-write never leaves a partially
// written row behind.
type csvNCRecordRepo struct {
	path string
}

// NewCSVNCRecordRepo opens the file-backed register, creating an empty
// register with the full column schema if the file does not exist yet.
func NewCSVNCRecordRepo(path string) (NCRecordRepository, error) {
	r := &csvNCRecordRepo{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create register directory: %w", err)
		}
		if err := r.write(nil); err != nil {
			return nil, fmt.Errorf("initialize register: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat register: %w", err)
	}
	return r, nil
}

func (r *csvNCRecordRepo) Append(ctx context.Context, rec *model.NCRecord) error {
	recs, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	for i := range recs {
		if recs[i].NCNo == rec.NCNo {
			return ErrDuplicateNCNo
		}
	}
	recs = append(recs, *rec)
	if err := r.write(recs); err != nil {
		return fmt.Errorf("append to register: %w", err)
	}
	return nil
}

func (r *csvNCRecordRepo) LoadAll(_ context.Context) ([]model.NCRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open register: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read register: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	recs := make([]model.NCRecord, 0, len(rows)-1)
	for _, row := range rows[1:] { // skip header
		rec, err := rowToRecord(row)
		if err != nil {
			return nil, fmt.Errorf("read register: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// write replaces the register atomically: temp file in the same directory,
// fsync, rename.
func (r *csvNCRecordRepo) write(recs []model.NCRecord) error {
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".nc_database-*.csv")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	w := csv.NewWriter(tmp)
	if err := w.Write(model.RegisterColumns); err != nil {
		tmp.Close()
		return err
	}
	for i := range recs {
		if err := w.Write(recordToRow(&recs[i])); err != nil {
			tmp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, r.path)
}

func recordToRow(rec *model.NCRecord) []string {
	okPath := ""
	if rec.OKImagePath != nil {
		okPath = *rec.OKImagePath
	}
	return []string{
		rec.NCNo,
		rec.BarcodeNo,
		rec.Date,
		rec.Customer,
		rec.PartNo,
		rec.Description,
		rec.Size,
		rec.Grade,
		rec.Process,
		rec.Machine,
		rec.Operator,
		rec.Shift,
		strconv.Itoa(rec.Qty),
		rec.Defect,
		rec.PreparedBy,
		rec.DefectImagePath,
		okPath,
		rec.AlertImagePath,
	}
}

func rowToRecord(row []string) (model.NCRecord, error) {
	if len(row) != len(model.RegisterColumns) {
		return model.NCRecord{}, fmt.Errorf("row has %d columns, want %d", len(row), len(model.RegisterColumns))
	}
	qty, err := strconv.Atoi(row[12])
	if err != nil {
		return model.NCRecord{}, fmt.Errorf("invalid qty %q: %w", row[12], err)
	}
	rec := model.NCRecord{
		NCNo:            row[0],
		BarcodeNo:       row[1],
		Date:            row[2],
		Customer:        row[3],
		PartNo:          row[4],
		Description:     row[5],
		Size:            row[6],
		Grade:           row[7],
		Process:         row[8],
		Machine:         row[9],
		Operator:        row[10],
		Shift:           row[11],
		Qty:             qty,
		Defect:          row[13],
		PreparedBy:      row[14],
		DefectImagePath: row[15],
		AlertImagePath:  row[17],
	}
	if row[16] != "" {
		ok := row[16]
		rec.OKImagePath = &ok
	}
	return rec, nil
}
