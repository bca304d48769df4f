package contact

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Repository handles submission data access
type Repository struct {
	db *gorm.DB
}

// NewRepository creates submission repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the submissions table.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&Submission{})
}

func (r *Repository) Create(ctx context.Context, s *Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *Repository) GetByReference(ctx context.Context, ref string) (*Submission, error) {
	var s Submission
	err := r.db.WithContext(ctx).Where("reference = ?", ref).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns submissions newest first with the total count.
func (r *Repository) List(ctx context.Context, limit, offset int) ([]Submission, int64, error) {
	var total int64
	q := r.db.WithContext(ctx).Model(&Submission{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []Submission
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// DeleteOlderThan removes submissions created before cutoff.
func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&Submission{})
	return res.RowsAffected, res.Error
}
