package repository

import (
	"context"

	"golang-market-screener/internal/entity"

	"gorm.io/gorm"
)

// ScanJobRepository defines the interface for scan job history operations.
type ScanJobRepository interface {
	Create(ctx context.Context, job *entity.ScanJob) error
	FindByLocalID(ctx context.Context, localID string) (*entity.ScanJob, error)
	FindRecent(ctx context.Context, limit int) ([]entity.ScanJob, error)
}

// NewScanJobRepository creates a new GORM-based scan job repository.
func NewScanJobRepository(db *gorm.DB) ScanJobRepository {
	return &scanJobRepository{db: db}
}

type scanJobRepository struct {
	db *gorm.DB
}

// Create records a finished scan job.
func (r *scanJobRepository) Create(ctx context.Context, job *entity.ScanJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// FindByLocalID retrieves a scan job by the controller's local handle.
func (r *scanJobRepository) FindByLocalID(ctx context.Context, localID string) (*entity.ScanJob, error) {
	var job entity.ScanJob
	if err := r.db.WithContext(ctx).Where("local_id = ?", localID).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// FindRecent retrieves the most recently submitted scan jobs.
func (r *scanJobRepository) FindRecent(ctx context.Context, limit int) ([]entity.ScanJob, error) {
	var jobs []entity.ScanJob
	if err := r.db.WithContext(ctx).Order("submitted_at DESC").Limit(limit).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}
