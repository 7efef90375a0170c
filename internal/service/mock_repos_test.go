package service

import (
	"context"
	"image"
	"path/filepath"

	"github.com/varun-k1411/gipl-quality-alert/internal/model"
	"github.com/varun-k1411/gipl-quality-alert/internal/repository"
)

// ── hand-rolled mocks ──

type mockNCRepo struct {
	recs    []model.NCRecord
	loadErr error
	// appendHook runs before the in-memory append; a non-nil return is
	// surfaced instead of appending
	appendHook func(rec *model.NCRecord) error
}

func (m *mockNCRepo) Append(_ context.Context, rec *model.NCRecord) error {
	if m.appendHook != nil {
		if err := m.appendHook(rec); err != nil {
			return err
		}
	}
	for i := range m.recs {
		if m.recs[i].NCNo == rec.NCNo {
			return repository.ErrDuplicateNCNo
		}
	}
	m.recs = append(m.recs, *rec)
	return nil
}

func (m *mockNCRepo) LoadAll(_ context.Context) ([]model.NCRecord, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]model.NCRecord, len(m.recs))
	copy(out, m.recs)
	return out, nil
}

type mockMasterRepo struct {
	parts     map[string]repository.Part
	processes map[string][]string
}

func (m *mockMasterRepo) Customers() []string { return []string{"ACME FORGE"} }
func (m *mockMasterRepo) Machines() []string  { return []string{"CNC-01"} }
func (m *mockMasterRepo) Operators() []string { return []string{"RAVI"} }
func (m *mockMasterRepo) Shifts() []string    { return []string{"A", "B"} }

func (m *mockMasterRepo) Parts() []repository.Part {
	out := make([]repository.Part, 0, len(m.parts))
	for _, p := range m.parts {
		out = append(out, p)
	}
	return out
}

func (m *mockMasterRepo) PartByNo(partNo string) (repository.Part, bool) {
	p, ok := m.parts[partNo]
	return p, ok
}

func (m *mockMasterRepo) ProcessSteps(partNo string) []string {
	return m.processes[partNo]
}

type mockImageStore struct {
	defectSaves int
	okSaves     int
	saveErr     error
}

func (m *mockImageStore) SaveDefect(ncNo string, _ []byte) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	m.defectSaves++
	return filepath.Join("defect_images", ncNo+".jpg"), nil
}

func (m *mockImageStore) SaveOK(ncNo string, _ []byte) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	m.okSaves++
	return filepath.Join("ok_images", ncNo+".jpg"), nil
}

func (m *mockImageStore) AlertPath(ncNo string) string {
	return filepath.Join("alerts", ncNo+".png")
}

func (m *mockImageStore) AlertDir() string { return "alerts" }

type mockRenderer struct {
	calls     int
	renderErr error
	lastRec   *model.NCRecord
}

func (m *mockRenderer) RenderToFile(rec *model.NCRecord, _, _ image.Image, _ string) error {
	if m.renderErr != nil {
		return m.renderErr
	}
	m.calls++
	m.lastRec = rec
	return nil
}
