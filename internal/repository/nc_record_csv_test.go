package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/varun-k1411/gipl-quality-alert/internal/model"
)

func testRecord(ncNo string) *model.NCRecord {
	okPath := "data/ok_images/" + ncNo + ".jpg"
	return &model.NCRecord{
		NCNo:            ncNo,
		BarcodeNo:       "BC-1001",
		Date:            "15-06-2024 10:30",
		Customer:        "ACME FORGE",
		PartNo:          "P-100",
		Description:     "FLANGE 2IN",
		Size:            "2\"",
		Grade:           "SS304",
		Process:         "CNC TURNING",
		Machine:         "CNC-01",
		Operator:        "RAVI",
		Shift:           "A",
		Qty:             3,
		Defect:          "UNDERSIZE BORE",
		PreparedBy:      "QA-1",
		DefectImagePath: "data/defect_images/" + ncNo + ".jpg",
		OKImagePath:     &okPath,
		AlertImagePath:  "data/alerts/" + ncNo + ".png",
	}
}

func TestCSVNCRecordRepoCreatesEmptyRegister(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register", "nc_database.csv")

	repo, err := NewCSVNCRecordRepo(path)
	if err != nil {
		t.Fatalf("NewCSVNCRecordRepo() error: %v", err)
	}

	recs, err := repo.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("new register has %d records, want 0", len(recs))
	}

	// the file itself must exist with the full header row
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("register file not created: %v", err)
	}
	header := strings.SplitN(string(raw), "\n", 2)[0]
	for _, col := range model.RegisterColumns {
		if !strings.Contains(header, col) {
			t.Errorf("header missing column %q", col)
		}
	}
}

func TestCSVNCRecordRepoAppendLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nc_database.csv")
	repo, err := NewCSVNCRecordRepo(path)
	if err != nil {
		t.Fatalf("NewCSVNCRecordRepo() error: %v", err)
	}
	ctx := context.Background()

	want := testRecord("NC-2024-0001")
	if err := repo.Append(ctx, want); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	recs, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("LoadAll() returned %d records, want 1", len(recs))
	}

	got := recs[0]
	if got.NCNo != want.NCNo || got.BarcodeNo != want.BarcodeNo || got.Date != want.Date {
		t.Errorf("identity fields = (%q, %q, %q), want (%q, %q, %q)",
			got.NCNo, got.BarcodeNo, got.Date, want.NCNo, want.BarcodeNo, want.Date)
	}
	if got.Qty != want.Qty {
		t.Errorf("Qty = %d, want %d", got.Qty, want.Qty)
	}
	if got.OKImagePath == nil || *got.OKImagePath != *want.OKImagePath {
		t.Errorf("OKImagePath = %v, want %q", got.OKImagePath, *want.OKImagePath)
	}
	if got.AlertImagePath != want.AlertImagePath {
		t.Errorf("AlertImagePath = %q, want %q", got.AlertImagePath, want.AlertImagePath)
	}
}

func TestCSVNCRecordRepoSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nc_database.csv")
	ctx := context.Background()

	repo, err := NewCSVNCRecordRepo(path)
	if err != nil {
		t.Fatalf("NewCSVNCRecordRepo() error: %v", err)
	}
	for _, ncNo := range []string{"NC-2024-0001", "NC-2024-0002", "NC-2024-0003"} {
		if err := repo.Append(ctx, testRecord(ncNo)); err != nil {
			t.Fatalf("Append(%s) error: %v", ncNo, err)
		}
	}

	// a new repo over the same file sees everything, in insertion order
	reopened, err := NewCSVNCRecordRepo(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	recs, err := reopened.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll() after reopen error: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("LoadAll() returned %d records, want 3", len(recs))
	}
	for i, want := range []string{"NC-2024-0001", "NC-2024-0002", "NC-2024-0003"} {
		if recs[i].NCNo != want {
			t.Errorf("recs[%d].NCNo = %q, want %q", i, recs[i].NCNo, want)
		}
	}
}

func TestCSVNCRecordRepoRejectsDuplicateNCNo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nc_database.csv")
	repo, err := NewCSVNCRecordRepo(path)
	if err != nil {
		t.Fatalf("NewCSVNCRecordRepo() error: %v", err)
	}
	ctx := context.Background()

	if err := repo.Append(ctx, testRecord("NC-2024-0001")); err != nil {
		t.Fatalf("first Append() error: %v", err)
	}
	err = repo.Append(ctx, testRecord("NC-2024-0001"))
	if !errors.Is(err, ErrDuplicateNCNo) {
		t.Fatalf("second Append() error = %v, want ErrDuplicateNCNo", err)
	}

	// the rejected append must not have touched the register
	recs, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("register has %d records after rejected append, want 1", len(recs))
	}
}

func TestCSVNCRecordRepoNoOKImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nc_database.csv")
	repo, err := NewCSVNCRecordRepo(path)
	if err != nil {
		t.Fatalf("NewCSVNCRecordRepo() error: %v", err)
	}
	ctx := context.Background()

	rec := testRecord("NC-2024-0001")
	rec.OKImagePath = nil
	if err := repo.Append(ctx, rec); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	recs, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if recs[0].OKImagePath != nil {
		t.Errorf("OKImagePath = %q, want nil", *recs[0].OKImagePath)
	}
}
