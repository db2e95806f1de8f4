package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
)

// jobRepository implements the JobRepository interface
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *gorm.DB) repositories.JobRepository {
	return &jobRepository{db: db}
}

// Create enqueues a new job
func (r *jobRepository) Create(ctx context.Context, job *entities.Job) error {
	if job == nil {
		return errors.New("job cannot be nil")
	}
	return r.db.WithContext(ctx).Create(job).Error
}

// FindByID retrieves a job by ID
func (r *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Job, error) {
	var job entities.Job
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// ClaimNextPending atomically claims the oldest pending or retrying job.
// The conditional update guards against two workers taking the same job:
// whoever flips the status first wins, the loser sees zero rows affected.
func (r *jobRepository) ClaimNextPending(ctx context.Context, types []entities.JobType) (*entities.Job, error) {
	var job entities.Job
	query := r.db.WithContext(ctx).
		Where("status IN ?", []entities.JobStatus{entities.JobStatusPending, entities.JobStatusRetrying})
	if len(types) > 0 {
		query = query.Where("job_type IN ?", types)
	}

	err := query.Order("created_at ASC").First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&entities.Job{}).
		Where("id = ? AND status = ?", job.ID, job.Status).
		Updates(map[string]interface{}{
			"status":     entities.JobStatusProcessing,
			"started_at": now,
			"updated_at": now,
		})

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Another worker claimed it first
		return nil, nil
	}

	job.Status = entities.JobStatusProcessing
	job.StartedAt = &now
	job.UpdatedAt = now
	return &job, nil
}

// Update persists job state changes
func (r *jobRepository) Update(ctx context.Context, job *entities.Job) error {
	if job == nil {
		return errors.New("job cannot be nil")
	}
	return r.db.WithContext(ctx).Save(job).Error
}

// CountPending returns the number of jobs waiting to be claimed
func (r *jobRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Job{}).
		Where("status IN ?", []entities.JobStatus{entities.JobStatusPending, entities.JobStatusRetrying}).
		Count(&count).Error
	return count, err
}

// RequeueZombies resets jobs stuck in processing back to pending
func (r *jobRepository) RequeueZombies(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	result := r.db.WithContext(ctx).
		Model(&entities.Job{}).
		Where("status = ? AND started_at < ?", entities.JobStatusProcessing, cutoff).
		Updates(map[string]interface{}{
			"status":     entities.JobStatusPending,
			"last_error": "requeued after worker stall",
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// ListRecent retrieves the most recently updated jobs
func (r *jobRepository) ListRecent(ctx context.Context, limit int) ([]*entities.Job, error) {
	if limit <= 0 {
		limit = 20
	}
	var jobs []*entities.Job
	err := r.db.WithContext(ctx).
		Order("updated_at DESC").
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}
