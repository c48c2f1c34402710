package history

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/telemetry-codec/pkg/model"
)

// RunRepository defines the interface for encoding-run persistence.
type RunRepository interface {
	// SaveRun records a generated report as a new run.
	SaveRun(ctx context.Context, rep *model.Report, reportFile string) (*EncodingRun, error)

	// ListRecent retrieves the most recent runs, newest first. An empty
	// setName matches all command sets.
	ListRecent(ctx context.Context, setName string, limit int) ([]*EncodingRun, error)

	// GetByID retrieves a single run.
	GetByID(ctx context.Context, id int64) (*EncodingRun, error)
}

// GormRunRepository implements RunRepository using GORM.
type GormRunRepository struct {
	db *gorm.DB
}

// NewGormRunRepository creates a GormRunRepository.
func NewGormRunRepository(db *gorm.DB) *GormRunRepository {
	return &GormRunRepository{db: db}
}

// SaveRun records a generated report as a new run.
func (r *GormRunRepository) SaveRun(ctx context.Context, rep *model.Report, reportFile string) (*EncodingRun, error) {
	run, err := NewEncodingRun(rep, reportFile)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize report: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return nil, fmt.Errorf("failed to save run: %w", err)
	}
	return run, nil
}

// ListRecent retrieves the most recent runs, newest first.
func (r *GormRunRepository) ListRecent(ctx context.Context, setName string, limit int) ([]*EncodingRun, error) {
	if limit <= 0 {
		limit = 20
	}

	q := r.db.WithContext(ctx).Order("id DESC").Limit(limit)
	if setName != "" {
		q = q.Where("set_name = ?", setName)
	}

	var runs []*EncodingRun
	if err := q.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	return runs, nil
}

// GetByID retrieves a single run.
func (r *GormRunRepository) GetByID(ctx context.Context, id int64) (*EncodingRun, error) {
	var run EncodingRun

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("run not found: %d", id)
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}
