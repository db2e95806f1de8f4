package jobs

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes/internal/usecase/analytics"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/internal/usecase/export"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

type fakeJobRepo struct {
	mu         sync.Mutex
	jobs       map[uuid.UUID]*entities.Job
	claimCalls int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uuid.UUID]*entities.Job)}
}

func (f *fakeJobRepo) Create(ctx context.Context, job *entities.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[id]
	if !ok {
		return nil, entities.ErrJobNotFound
	}
	return job, nil
}

func (f *fakeJobRepo) ClaimNextPending(ctx context.Context, types []entities.JobType) (*entities.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.claimCalls++
	for _, job := range f.jobs {
		if job.Status == entities.JobStatusPending || job.Status == entities.JobStatusRetrying {
			job.MarkAsProcessing()
			return job, nil
		}
	}
	return nil, nil
}

func (f *fakeJobRepo) Update(ctx context.Context, job *entities.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) CountPending(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, job := range f.jobs {
		if job.Status == entities.JobStatusPending {
			n++
		}
	}
	return n, nil
}

func (f *fakeJobRepo) RequeueZombies(ctx context.Context, olderThan time.Duration) (int64, error) {
	return 0, nil
}

func (f *fakeJobRepo) ListRecent(ctx context.Context, limit int) ([]*entities.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entities.Job
	for _, job := range f.jobs {
		out = append(out, job)
	}
	return out, nil
}

func (f *fakeJobRepo) claims() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.claimCalls
}

type fakeExporter struct {
	configured bool
	result     *export.Result
	err        error
}

func (f *fakeExporter) ExportMeeting(ctx context.Context, meetingID uuid.UUID) (*export.Result, error) {
	return f.result, f.err
}

func (f *fakeExporter) ExportPending(ctx context.Context) (*export.Result, error) {
	return f.result, f.err
}

func (f *fakeExporter) ExportAction(ctx context.Context, id uuid.UUID) (*export.ExportedIssue, error) {
	return nil, f.err
}

func (f *fakeExporter) IsConfigured() bool { return f.configured }
func (f *fakeExporter) Target() string     { return "acme/tracker" }

type fakeReporter struct {
	report   *analytics.Report
	err      error
	lastDays int
}

func (f *fakeReporter) Overview(ctx context.Context, days int) (*analytics.Overview, error) {
	return nil, nil
}

func (f *fakeReporter) ActionStats(ctx context.Context, days int) (*repositories.ActionStats, error) {
	return nil, nil
}

func (f *fakeReporter) PeopleLoad(ctx context.Context, days int) ([]repositories.PersonActionCount, error) {
	return nil, nil
}

func (f *fakeReporter) TopicTrends(ctx context.Context, days, limit int) ([]repositories.TopicCount, error) {
	return nil, nil
}

func (f *fakeReporter) Attendance(ctx context.Context, days int) ([]repositories.PersonMeetingCount, error) {
	return nil, nil
}

func (f *fakeReporter) CoAttendance(ctx context.Context, days, minMeetings int) ([]repositories.PersonPair, error) {
	return nil, nil
}

func (f *fakeReporter) MeetingCadence(ctx context.Context, days int) ([]repositories.TypeCount, error) {
	return nil, nil
}

func (f *fakeReporter) TopicCooccurrence(ctx context.Context, days, minMeetings int) ([]repositories.TopicPair, error) {
	return nil, nil
}

func (f *fakeReporter) Bottlenecks(ctx context.Context, days, minPending int) ([]repositories.PersonActionCount, error) {
	return nil, nil
}

func (f *fakeReporter) DecisionStatus(ctx context.Context, days, limit int) ([]repositories.DecisionImplementation, error) {
	return nil, nil
}

func (f *fakeReporter) Efficiency(ctx context.Context, days int) (*repositories.EfficiencyStats, error) {
	return nil, nil
}

func (f *fakeReporter) ProgressReport(ctx context.Context, input analytics.ReportInput) (*analytics.Report, error) {
	f.lastDays = input.Days
	return f.report, f.err
}

func testWorkerConfig() *config.WorkerConfig {
	return &config.WorkerConfig{
		Enabled:       true,
		Count:         1,
		PollInterval:  10 * time.Millisecond,
		JobTimeout:    time.Second,
		ZombieTimeout: time.Minute,
		MaxAttempts:   2,
	}
}

func newTestJobService(repo *fakeJobRepo, exporter export.Service) *JobService {
	return NewJobService(repo, exporter, nil, nil, testWorkerConfig(), nil, zap.NewNop())
}

func TestEnqueue_Validations(t *testing.T) {
	repo := newFakeJobRepo()
	svc := newTestJobService(repo, nil)

	if _, err := svc.Enqueue(context.Background(), "mystery", entities.JobPayload{}); !errors.Is(err, usecaseErrors.ErrInvalidInput) {
		t.Errorf("Enqueue(unknown type) error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Enqueue(context.Background(), entities.JobTypeTranscribeAudio, entities.JobPayload{}); !errors.Is(err, usecaseErrors.ErrMissingAudioURL) {
		t.Errorf("Enqueue(transcribe, no url) error = %v, want ErrMissingAudioURL", err)
	}

	job, err := svc.Enqueue(context.Background(), entities.JobTypeGithubExport, entities.JobPayload{})
	if err != nil {
		t.Fatalf("Enqueue() error = %v", err)
	}
	if job.Status != entities.JobStatusPending {
		t.Errorf("Status = %q, want pending", job.Status)
	}
	if job.MaxRetries != 2 {
		t.Errorf("MaxRetries = %d, want 2 from worker config", job.MaxRetries)
	}
}

func TestEnqueue_WorkersDisabled(t *testing.T) {
	cfg := testWorkerConfig()
	cfg.Enabled = false
	svc := NewJobService(newFakeJobRepo(), nil, nil, nil, cfg, nil, zap.NewNop())

	if _, err := svc.Enqueue(context.Background(), entities.JobTypeGithubExport, entities.JobPayload{}); !errors.Is(err, usecaseErrors.ErrWorkersDisabled) {
		t.Errorf("Enqueue() error = %v, want ErrWorkersDisabled", err)
	}
}

func TestCancelJob(t *testing.T) {
	repo := newFakeJobRepo()
	svc := newTestJobService(repo, nil)

	job, err := svc.Enqueue(context.Background(), entities.JobTypeGithubExport, entities.JobPayload{})
	if err != nil {
		t.Fatalf("Enqueue() error = %v", err)
	}

	if err := svc.CancelJob(context.Background(), job.ID); err != nil {
		t.Fatalf("CancelJob() error = %v", err)
	}
	got, _ := svc.GetJob(context.Background(), job.ID)
	if got.Status != entities.JobStatusCancelled {
		t.Errorf("Status = %q, want cancelled", got.Status)
	}

	// A finished job cannot be cancelled again.
	if err := svc.CancelJob(context.Background(), job.ID); !errors.Is(err, usecaseErrors.ErrJobNotCancelable) {
		t.Errorf("CancelJob(cancelled) error = %v, want ErrJobNotCancelable", err)
	}
}

func TestRunJob_CompletesExport(t *testing.T) {
	repo := newFakeJobRepo()
	exporter := &fakeExporter{
		configured: true,
		result: &export.Result{
			Exported: []export.ExportedIssue{{IssueNumber: 7, IssueURL: "https://github.com/acme/tracker/issues/7"}},
			Skipped:  1,
		},
	}
	svc := newTestJobService(repo, exporter)

	job := entities.NewJob(entities.JobTypeGithubExport, entities.JobPayload{})
	repo.Create(context.Background(), job)

	svc.runJob(0, job)

	got, _ := repo.FindByID(context.Background(), job.ID)
	if got.Status != entities.JobStatusCompleted {
		t.Fatalf("Status = %q, want completed (last error: %v)", got.Status, got.LastError)
	}
	if got.Result.IssuesCreated != 1 || got.Result.IssuesSkipped != 1 {
		t.Errorf("Result = %+v, want 1 created and 1 skipped", got.Result)
	}
	if len(got.Result.IssueURLs) != 1 {
		t.Errorf("IssueURLs = %v, want one url", got.Result.IssueURLs)
	}
	if got.CompletedAt == nil {
		t.Error("CompletedAt = nil, want set")
	}
}

func TestRunJob_CompletesReport(t *testing.T) {
	repo := newFakeJobRepo()
	reporter := &fakeReporter{report: &analytics.Report{
		WindowDays: 14,
		Markdown:   "# Progress report",
		ArchiveKey: "reports/progress_20260301_090000.md",
	}}
	svc := NewJobService(repo, nil, reporter, nil, testWorkerConfig(), nil, zap.NewNop())

	job := entities.NewJob(entities.JobTypeProgressReport, entities.JobPayload{Days: 14, Person: "Alice Johnson"})
	repo.Create(context.Background(), job)

	svc.runJob(0, job)

	got, _ := repo.FindByID(context.Background(), job.ID)
	if got.Status != entities.JobStatusCompleted {
		t.Fatalf("Status = %q, want completed (last error: %v)", got.Status, got.LastError)
	}
	if got.Result.ReportKey != reporter.report.ArchiveKey {
		t.Errorf("Result.ReportKey = %q, want %q", got.Result.ReportKey, reporter.report.ArchiveKey)
	}
	if reporter.lastDays != 14 {
		t.Errorf("reporter saw days = %d, want 14", reporter.lastDays)
	}
}

func TestRunJob_NonRetryableFailsPermanently(t *testing.T) {
	repo := newFakeJobRepo()
	exporter := &fakeExporter{configured: true, err: errors.New("repository archived")}
	svc := newTestJobService(repo, exporter)

	job := entities.NewJob(entities.JobTypeGithubExport, entities.JobPayload{})
	repo.Create(context.Background(), job)

	svc.runJob(0, job)

	got, _ := repo.FindByID(context.Background(), job.ID)
	if got.Status != entities.JobStatusFailed {
		t.Fatalf("Status = %q, want failed", got.Status)
	}
	if got.LastError == nil || !strings.Contains(*got.LastError, "repository archived") {
		t.Errorf("LastError = %v, want the cause recorded", got.LastError)
	}
}

func TestRunJob_UnknownTypeFails(t *testing.T) {
	repo := newFakeJobRepo()
	svc := newTestJobService(repo, nil)

	job := entities.NewJob("mystery", entities.JobPayload{})
	repo.Create(context.Background(), job)

	svc.runJob(0, job)

	got, _ := repo.FindByID(context.Background(), job.ID)
	if got.Status != entities.JobStatusFailed {
		t.Errorf("Status = %q, want failed", got.Status)
	}
}

func TestFailJob_RetryableGoesBackToQueue(t *testing.T) {
	repo := newFakeJobRepo()
	svc := newTestJobService(repo, nil)

	job := entities.NewJob(entities.JobTypeGithubExport, entities.JobPayload{})
	job.MaxRetries = 3
	repo.Create(context.Background(), job)

	svc.failJob(job, errors.New("connection refused"), time.Second)

	got, _ := repo.FindByID(context.Background(), job.ID)
	if got.Status != entities.JobStatusRetrying {
		t.Errorf("Status = %q, want retrying", got.Status)
	}
	if got.RetryCount != 1 {
		t.Errorf("RetryCount = %d, want 1", got.RetryCount)
	}
}

func TestFailJob_ExhaustedRetriesFail(t *testing.T) {
	repo := newFakeJobRepo()
	svc := newTestJobService(repo, nil)

	job := entities.NewJob(entities.JobTypeGithubExport, entities.JobPayload{})
	job.MaxRetries = 3
	job.RetryCount = 3
	repo.Create(context.Background(), job)

	svc.failJob(job, errors.New("connection refused"), time.Second)

	got, _ := repo.FindByID(context.Background(), job.ID)
	if got.Status != entities.JobStatusFailed {
		t.Errorf("Status = %q, want failed after exhausting retries", got.Status)
	}
}

func TestWorkerPool_StartStop(t *testing.T) {
	repo := newFakeJobRepo()
	svc := newTestJobService(repo, nil)

	if err := svc.StartWorkerPool(2); err != nil {
		t.Fatalf("StartWorkerPool() error = %v", err)
	}
	if err := svc.StartWorkerPool(2); err == nil {
		t.Error("second StartWorkerPool() error = nil, want already running")
	}

	// Give the workers a few poll ticks.
	time.Sleep(50 * time.Millisecond)
	svc.StopWorkerPool()

	if repo.claims() == 0 {
		t.Error("workers never polled the queue")
	}

	// A stopped pool can be started again.
	if err := svc.StartWorkerPool(1); err != nil {
		t.Fatalf("restart StartWorkerPool() error = %v", err)
	}
	svc.StopWorkerPool()
}

func TestWorkerPool_RunsEnqueuedJob(t *testing.T) {
	repo := newFakeJobRepo()
	exporter := &fakeExporter{configured: true, result: &export.Result{Skipped: 2}}
	svc := newTestJobService(repo, exporter)

	job, err := svc.Enqueue(context.Background(), entities.JobTypeGithubExport, entities.JobPayload{})
	if err != nil {
		t.Fatalf("Enqueue() error = %v", err)
	}

	if err := svc.StartWorkerPool(1); err != nil {
		t.Fatalf("StartWorkerPool() error = %v", err)
	}
	defer svc.StopWorkerPool()

	deadline := time.After(2 * time.Second)
	for {
		got, _ := repo.FindByID(context.Background(), job.ID)
		if got.Status == entities.JobStatusCompleted {
			if got.Result.IssuesSkipped != 2 {
				t.Errorf("Result.IssuesSkipped = %d, want 2", got.Result.IssuesSkipped)
			}
			return
		}
		select {
		case <-deadline:
			t.Fatalf("job never completed, status %q", got.Status)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestWrapTranscript(t *testing.T) {
	got := wrapTranscript("Alice: we shipped it.\n\nBob: great work.")
	want := "Transcribed Meeting\n\nDiscussion:\nTranscript\n- Alice: we shipped it.\n- Bob: great work.\n"
	if got != want {
		t.Errorf("wrapTranscript() = %q, want %q", got, want)
	}
}

func TestTranscriber_Guards(t *testing.T) {
	tr := NewTranscriber(nil, nil, nil, nil, zap.NewNop())
	if _, err := tr.Run(context.Background(), entities.JobPayload{AudioURL: "https://x/audio.mp3"}); !errors.Is(err, usecaseErrors.ErrTranscriberNotConfig) {
		t.Errorf("Run(nil client) error = %v, want ErrTranscriberNotConfig", err)
	}
}
