package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes/internal/usecase/analytics"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/internal/usecase/export"
	"github.com/johnquangdev/meeting-notes/pkg/config"
	"github.com/johnquangdev/meeting-notes/pkg/jobcontext"
	"github.com/johnquangdev/meeting-notes/pkg/metrics"
)

// maxJobsPerTick bounds how many jobs one worker drains per poll so a
// burst does not starve the other workers
const maxJobsPerTick = 5

// zombieCheckInterval is how often stuck jobs are swept back to pending
const zombieCheckInterval = 5 * time.Minute

// gaugeInterval is how often the pending-jobs gauge is refreshed
const gaugeInterval = 30 * time.Second

// runnableTypes lists every job type the workers know how to run
var runnableTypes = []entities.JobType{
	entities.JobTypeGithubExport,
	entities.JobTypeProgressReport,
	entities.JobTypeTranscribeAudio,
}

// JobService runs the DB-backed job queue
type JobService struct {
	jobRepo     repositories.JobRepository
	exporter    export.Service
	reporter    analytics.Service
	transcriber *Transcriber
	cfg         *config.WorkerConfig
	metrics     *metrics.Metrics
	logger      *zap.Logger

	workerStopChan      chan struct{}
	workerWg            sync.WaitGroup
	isWorkerPoolRunning bool
	workerMutex         sync.Mutex
}

// NewJobService constructs the job queue service. The exporter, reporter
// and transcriber may be nil; jobs needing them fail with a clear error.
func NewJobService(
	jobRepo repositories.JobRepository,
	exporter export.Service,
	reporter analytics.Service,
	transcriber *Transcriber,
	cfg *config.WorkerConfig,
	m *metrics.Metrics,
	logger *zap.Logger,
) *JobService {
	return &JobService{
		jobRepo:        jobRepo,
		exporter:       exporter,
		reporter:       reporter,
		transcriber:    transcriber,
		cfg:            cfg,
		metrics:        m,
		logger:         logger,
		workerStopChan: make(chan struct{}),
	}
}

// Enqueue creates a pending job for the workers to pick up
func (s *JobService) Enqueue(ctx context.Context, jobType entities.JobType, payload entities.JobPayload) (*entities.Job, error) {
	if s.cfg != nil && !s.cfg.Enabled {
		return nil, usecaseErrors.ErrWorkersDisabled
	}

	switch jobType {
	case entities.JobTypeGithubExport, entities.JobTypeProgressReport, entities.JobTypeTranscribeAudio:
	default:
		return nil, fmt.Errorf("%w: unknown job type %q", usecaseErrors.ErrInvalidInput, jobType)
	}
	if jobType == entities.JobTypeTranscribeAudio && payload.AudioURL == "" {
		return nil, usecaseErrors.ErrMissingAudioURL
	}

	job := entities.NewJob(jobType, payload)
	if s.cfg != nil && s.cfg.MaxAttempts > 0 {
		job.MaxRetries = s.cfg.MaxAttempts
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to enqueue job: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("📥 Job enqueued",
			zap.String("job_id", job.ID.String()),
			zap.String("type", string(job.Type)),
		)
	}
	return job, nil
}

// GetJob retrieves a job by ID
func (s *JobService) GetJob(ctx context.Context, id uuid.UUID) (*entities.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrJobNotFound) {
			return nil, usecaseErrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListRecent retrieves the most recently updated jobs
func (s *JobService) ListRecent(ctx context.Context, limit int) ([]*entities.Job, error) {
	if limit <= 0 {
		limit = 20
	}
	jobs, err := s.jobRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// CancelJob cancels a job that has not started processing
func (s *JobService) CancelJob(ctx context.Context, id uuid.UUID) error {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrJobNotFound) {
			return usecaseErrors.ErrJobNotFound
		}
		return fmt.Errorf("failed to get job: %w", err)
	}

	if job.Status != entities.JobStatusPending && job.Status != entities.JobStatusRetrying {
		return usecaseErrors.ErrJobNotCancelable
	}

	job.MarkAsCancelled()
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return fmt.Errorf("failed to cancel job: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("🛑 Job cancelled", zap.String("job_id", job.ID.String()))
	}
	return nil
}

// StartWorkerPool launches the worker goroutines
func (s *JobService) StartWorkerPool(workerCount int) error {
	s.workerMutex.Lock()
	defer s.workerMutex.Unlock()

	if s.isWorkerPoolRunning {
		return fmt.Errorf("worker pool already running")
	}
	if workerCount <= 0 {
		workerCount = 2
	}

	s.workerStopChan = make(chan struct{})
	s.isWorkerPoolRunning = true

	if s.logger != nil {
		s.logger.Info("🚀 Starting job worker pool", zap.Int("worker_count", workerCount))
	}

	for i := 0; i < workerCount; i++ {
		s.workerWg.Add(1)
		go s.jobWorker(i)
	}

	s.workerWg.Add(1)
	go s.zombieWorker()

	if s.metrics != nil {
		s.workerWg.Add(1)
		go s.gaugeWorker()
	}

	return nil
}

// StopWorkerPool signals the workers to stop and waits for them
func (s *JobService) StopWorkerPool() {
	s.workerMutex.Lock()
	defer s.workerMutex.Unlock()

	if !s.isWorkerPoolRunning {
		return
	}

	if s.logger != nil {
		s.logger.Info("🛑 Stopping job worker pool...")
	}

	close(s.workerStopChan)
	s.workerWg.Wait()
	s.isWorkerPoolRunning = false

	if s.logger != nil {
		s.logger.Info("✅ Job worker pool stopped")
	}
}

// jobWorker polls the queue until the pool stops
func (s *JobService) jobWorker(workerID int) {
	defer s.workerWg.Done()

	if s.logger != nil {
		s.logger.Info("👷 Worker started", zap.Int("worker_id", workerID))
	}

	ticker := time.NewTicker(s.pollInterval())
	defer ticker.Stop()

	for {
		select {
		case <-s.workerStopChan:
			if s.logger != nil {
				s.logger.Info("👷 Worker stopping", zap.Int("worker_id", workerID))
			}
			return
		case <-ticker.C:
			s.drainQueue(workerID)
		}
	}
}

// drainQueue claims and runs up to maxJobsPerTick jobs
func (s *JobService) drainQueue(workerID int) {
	for i := 0; i < maxJobsPerTick; i++ {
		select {
		case <-s.workerStopChan:
			return
		default:
		}

		job, err := s.jobRepo.ClaimNextPending(context.Background(), runnableTypes)
		if err != nil {
			if s.logger != nil {
				s.logger.Error("❌ Failed to claim job",
					zap.Int("worker_id", workerID),
					zap.Error(err),
				)
			}
			return
		}
		if job == nil {
			return
		}

		if s.logger != nil {
			s.logger.Info("👷 Worker claimed job",
				zap.Int("worker_id", workerID),
				zap.String("job_id", job.ID.String()),
				zap.String("type", string(job.Type)),
			)
		}
		s.runJob(workerID, job)
	}
}

// runJob executes one claimed job inside a bounded job context
func (s *JobService) runJob(workerID int, job *entities.Job) {
	start := time.Now()

	ctx, cancel := jobcontext.JobBegin(context.Background(), job.ID, string(job.Type), workerID, s.jobTimeout())
	defer cancel()

	var result entities.JobResult
	err := jobcontext.JobEnd(ctx, func(ctx context.Context) error {
		r, runErr := s.dispatch(ctx, job)
		if runErr != nil {
			return runErr
		}
		result = r
		return nil
	})

	elapsed := time.Since(start)

	if err != nil {
		s.failJob(job, err, elapsed)
		return
	}

	result.ProcessingTimeMs = elapsed.Milliseconds()
	job.MarkAsCompleted(result)
	if err := s.jobRepo.Update(context.Background(), job); err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Failed to persist job result",
				zap.String("job_id", job.ID.String()),
				zap.Error(err),
			)
		}
		return
	}

	if s.metrics != nil {
		s.metrics.RecordJob(string(job.Type), "completed", elapsed.Seconds())
	}
	if s.logger != nil {
		s.logger.Info("✅ Job completed successfully",
			zap.String("job_id", job.ID.String()),
			zap.String("type", string(job.Type)),
			zap.Duration("duration", elapsed),
		)
	}
}

// failJob schedules a retry through the queue or fails the job for good
func (s *JobService) failJob(job *entities.Job, jobErr error, elapsed time.Duration) {
	msg := jobErr.Error()

	if jobcontext.IsRetryableError(jobErr) && job.RetryCount < job.MaxRetries {
		job.IncrementRetry(msg)
		if err := s.jobRepo.Update(context.Background(), job); err != nil {
			if s.logger != nil {
				s.logger.Error("❌ Failed to persist job retry",
					zap.String("job_id", job.ID.String()),
					zap.Error(err),
				)
			}
			return
		}
		if s.metrics != nil {
			s.metrics.RecordJob(string(job.Type), "retrying", elapsed.Seconds())
		}
		if s.logger != nil {
			s.logger.Warn("🔄 Job scheduled for retry",
				zap.String("job_id", job.ID.String()),
				zap.Int("retry_count", job.RetryCount),
				zap.Int("max_retries", job.MaxRetries),
				zap.Error(jobErr),
			)
		}
		return
	}

	job.MarkAsFailed(msg)
	if err := s.jobRepo.Update(context.Background(), job); err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Failed to persist job failure",
				zap.String("job_id", job.ID.String()),
				zap.Error(err),
			)
		}
		return
	}

	if s.metrics != nil {
		s.metrics.RecordJob(string(job.Type), "failed", elapsed.Seconds())
	}
	if s.logger != nil {
		s.logger.Error("💀 Job failed permanently",
			zap.String("job_id", job.ID.String()),
			zap.String("type", string(job.Type)),
			zap.Int("retry_count", job.RetryCount),
			zap.Error(jobErr),
		)
	}
}

// dispatch routes a job to its handler
func (s *JobService) dispatch(ctx context.Context, job *entities.Job) (entities.JobResult, error) {
	switch job.Type {
	case entities.JobTypeGithubExport:
		return s.runExport(ctx, job.Payload)
	case entities.JobTypeProgressReport:
		return s.runReport(ctx, job.Payload)
	case entities.JobTypeTranscribeAudio:
		return s.runTranscribe(ctx, job.Payload)
	default:
		return entities.JobResult{}, fmt.Errorf("unknown job type %q", job.Type)
	}
}

func (s *JobService) runExport(ctx context.Context, payload entities.JobPayload) (entities.JobResult, error) {
	if s.exporter == nil || !s.exporter.IsConfigured() {
		return entities.JobResult{}, usecaseErrors.ErrExportNotConfigured
	}

	var (
		res *export.Result
		err error
	)
	if payload.MeetingID != nil {
		res, err = s.exporter.ExportMeeting(ctx, *payload.MeetingID)
	} else {
		res, err = s.exporter.ExportPending(ctx)
	}
	if err != nil {
		if errors.Is(err, usecaseErrors.ErrNothingToExport) {
			// A retried job whose first run already exported everything.
			return entities.JobResult{MeetingID: payload.MeetingID}, nil
		}
		return entities.JobResult{}, err
	}

	result := entities.JobResult{
		MeetingID:     payload.MeetingID,
		IssuesCreated: len(res.Exported),
		IssuesSkipped: res.Skipped,
	}
	for _, issue := range res.Exported {
		result.IssueURLs = append(result.IssueURLs, issue.IssueURL)
	}
	return result, nil
}

func (s *JobService) runReport(ctx context.Context, payload entities.JobPayload) (entities.JobResult, error) {
	if s.reporter == nil {
		return entities.JobResult{}, fmt.Errorf("progress reports not configured")
	}

	report, err := s.reporter.ProgressReport(ctx, analytics.ReportInput{
		Days:   payload.Days,
		Person: payload.Person,
	})
	if err != nil {
		return entities.JobResult{}, err
	}
	return entities.JobResult{ReportKey: report.ArchiveKey}, nil
}

func (s *JobService) runTranscribe(ctx context.Context, payload entities.JobPayload) (entities.JobResult, error) {
	if s.transcriber == nil {
		return entities.JobResult{}, usecaseErrors.ErrTranscriberNotConfig
	}
	return s.transcriber.Run(ctx, payload)
}

// zombieWorker sweeps jobs stuck in processing back to pending
func (s *JobService) zombieWorker() {
	defer s.workerWg.Done()

	ticker := time.NewTicker(zombieCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.workerStopChan:
			return
		case <-ticker.C:
			rescued, err := s.jobRepo.RequeueZombies(context.Background(), s.zombieTimeout())
			if err != nil {
				if s.logger != nil {
					s.logger.Error("❌ Failed to requeue zombie jobs", zap.Error(err))
				}
				continue
			}
			if rescued > 0 && s.logger != nil {
				s.logger.Warn("🧹 Requeued zombie jobs", zap.Int64("count", rescued))
			}
		}
	}
}

// gaugeWorker keeps the pending-jobs gauge current
func (s *JobService) gaugeWorker() {
	defer s.workerWg.Done()

	ticker := time.NewTicker(gaugeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.workerStopChan:
			return
		case <-ticker.C:
			pending, err := s.jobRepo.CountPending(context.Background())
			if err != nil {
				continue
			}
			s.metrics.SetJobsPending(pending)
		}
	}
}

func (s *JobService) pollInterval() time.Duration {
	if s.cfg != nil && s.cfg.PollInterval > 0 {
		return s.cfg.PollInterval
	}
	return 5 * time.Second
}

func (s *JobService) jobTimeout() time.Duration {
	if s.cfg != nil && s.cfg.JobTimeout > 0 {
		return s.cfg.JobTimeout
	}
	return 5 * time.Minute
}

func (s *JobService) zombieTimeout() time.Duration {
	if s.cfg != nil && s.cfg.ZombieTimeout > 0 {
		return s.cfg.ZombieTimeout
	}
	return 10 * time.Minute
}
