package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/varun-k1411/gipl-quality-alert/internal/model"
)

// NCRecordRepository is the append-only NC register.
//
// Append makes the record visible to every subsequent LoadAll and survives a
// process restart. There is no update or delete. LoadAll returns records in
// insertion order; the id allocator depends on that.
type NCRecordRepository interface {
	Append(ctx context.Context, rec *model.NCRecord) error
	LoadAll(ctx context.Context) ([]model.NCRecord, error)
}

// ── gorm implementation (store.backend: postgres) ──
//
// The unique primary key on nc_no makes the append a single insert
// transaction: concurrent submissions cannot silently overwrite each other,
// the loser gets ErrDuplicateNCNo.

type gormNCRecordRepo struct {
	db *gorm.DB
}

// NewGormNCRecordRepo creates the postgres-backed register.
func NewGormNCRecordRepo(db *gorm.DB) NCRecordRepository {
	return &gormNCRecordRepo{db: db}
}

func (r *gormNCRecordRepo) Append(ctx context.Context, rec *model.NCRecord) error {
	err := r.db.WithContext(ctx).Create(rec).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateNCNo
	}
	return err
}

func (r *gormNCRecordRepo) LoadAll(ctx context.Context) ([]model.NCRecord, error) {
	var recs []model.NCRecord
	err := r.db.WithContext(ctx).
		Order("seq ASC").
		Find(&recs).Error
	return recs, err
}
