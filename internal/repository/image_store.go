package repository

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/varun-k1411/gipl-quality-alert/config"
)

// ImageStore persists photo evidence and rendered alert documents, one file
// per NC number in three buckets: defect photos, OK photos, alert documents.
type ImageStore interface {
	// SaveDefect writes the NOT OK photo and returns its path.
	SaveDefect(ncNo string, data []byte) (string, error)
	// SaveOK writes the OK reference photo and returns its path.
	SaveOK(ncNo string, data []byte) (string, error)
	// AlertPath returns the deterministic path the rendered alert document
	// for ncNo is written to.
	AlertPath(ncNo string) string
	// AlertDir returns the alert bucket directory.
	AlertDir() string
}

type fsImageStore struct {
	defectDir string
	okDir     string
	alertDir  string
}

// NewFSImageStore creates the on-disk buckets, making the directories on
// first use.
func NewFSImageStore(cfg *config.DataConfig) (ImageStore, error) {
	s := &fsImageStore{
		defectDir: cfg.DefectDir(),
		okDir:     cfg.OKDir(),
		alertDir:  cfg.AlertDir(),
	}
	for _, dir := range []string{s.defectDir, s.okDir, s.alertDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create image bucket %s: %w", dir, err)
		}
	}
	return s, nil
}

func (s *fsImageStore) SaveDefect(ncNo string, data []byte) (string, error) {
	return save(filepath.Join(s.defectDir, ncNo+".jpg"), data)
}

func (s *fsImageStore) SaveOK(ncNo string, data []byte) (string, error) {
	return save(filepath.Join(s.okDir, ncNo+".jpg"), data)
}

func (s *fsImageStore) AlertPath(ncNo string) string {
	return filepath.Join(s.alertDir, ncNo+".png")
}

func (s *fsImageStore) AlertDir() string { return s.alertDir }

func save(path string, data []byte) (string, error) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write image %s: %w", path, err)
	}
	return path, nil
}
