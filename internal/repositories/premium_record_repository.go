package repositories

import (
	"context"

	"gorm.io/gorm"
	"premiumcalc/internal/models/db_models"
)

type PremiumRecordRepositoryInterface interface {
	Append(ctx context.Context, record *db_models.PremiumRecord) error
	ListRecords(ctx context.Context, page int, pageSize int) ([]db_models.PremiumRecord, error)
}

func NewPremiumRecordRepository(db *gorm.DB) PremiumRecordRepositoryInterface {
	return &PremiumRecordRepository{db: db}
}

type PremiumRecordRepository struct {
	db *gorm.DB
}

func (r *PremiumRecordRepository) Append(ctx context.Context, record *db_models.PremiumRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// ListRecords returns one page, newest first.
func (r *PremiumRecordRepository) ListRecords(ctx context.Context, page int, pageSize int) ([]db_models.PremiumRecord, error) {
	var records []db_models.PremiumRecord
	err := r.db.WithContext(ctx).Scopes(func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}).Order("created_at DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
