package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// JobRepository defines the interface for background job data access
type JobRepository interface {
	// Create enqueues a new job
	Create(ctx context.Context, job *entities.Job) error

	// FindByID retrieves a job by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Job, error)

	// ClaimNextPending atomically claims the oldest pending or retrying
	// job of the given types. Returns nil when the queue is empty.
	ClaimNextPending(ctx context.Context, types []entities.JobType) (*entities.Job, error)

	// Update persists job state changes
	Update(ctx context.Context, job *entities.Job) error

	// CountPending returns the number of jobs waiting to be claimed
	CountPending(ctx context.Context) (int64, error)

	// RequeueZombies resets jobs stuck in processing longer than the
	// given age back to pending. Returns the number of jobs rescued.
	RequeueZombies(ctx context.Context, olderThan time.Duration) (int64, error)

	// ListRecent retrieves the most recently updated jobs
	ListRecent(ctx context.Context, limit int) ([]*entities.Job, error)
}
