package jobs

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// Service manages the background job queue and its worker pool
type Service interface {
	// Enqueue creates a pending job for the workers to pick up
	Enqueue(ctx context.Context, jobType entities.JobType, payload entities.JobPayload) (*entities.Job, error)

	// GetJob retrieves a job by ID
	GetJob(ctx context.Context, id uuid.UUID) (*entities.Job, error)

	// ListRecent retrieves the most recently updated jobs
	ListRecent(ctx context.Context, limit int) ([]*entities.Job, error)

	// CancelJob cancels a job that has not started processing
	CancelJob(ctx context.Context, id uuid.UUID) error

	// StartWorkerPool launches the worker goroutines
	StartWorkerPool(workerCount int) error

	// StopWorkerPool signals the workers to stop and waits for them
	StopWorkerPool()
}

// Ensure JobService implements Service interface
var _ Service = (*JobService)(nil)
