package entities

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the status of a background job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"    // Waiting to be claimed by a worker
	JobStatusProcessing JobStatus = "processing" // Being worked on
	JobStatusCompleted  JobStatus = "completed"  // All processing done
	JobStatusFailed     JobStatus = "failed"     // Processing failed
	JobStatusRetrying   JobStatus = "retrying"   // Retrying after failure
	JobStatusCancelled  JobStatus = "cancelled"  // Job was cancelled
)

// JobType represents the type of background job
type JobType string

const (
	JobTypeGithubExport    JobType = "github_export"    // Create GitHub issues from action items
	JobTypeProgressReport  JobType = "progress_report"  // Generate a narrative progress report
	JobTypeTranscribeAudio JobType = "transcribe_audio" // Transcribe a recording and ingest it
)

// Job represents a background processing job
type Job struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Type   JobType   `json:"type" gorm:"column:job_type;type:varchar(50);not null;index"`
	Status JobStatus `json:"status" gorm:"type:varchar(50);not null;index;default:'pending'"`

	Payload JobPayload `json:"payload,omitempty" gorm:"type:jsonb;serializer:json"`
	Result  JobResult  `json:"result,omitempty" gorm:"type:jsonb;serializer:json"`

	// Processing details
	StartedAt   *time.Time `json:"started_at,omitempty" gorm:"type:timestamp"`
	CompletedAt *time.Time `json:"completed_at,omitempty" gorm:"type:timestamp"`
	RetryCount  int        `json:"retry_count" gorm:"type:integer;default:0"`
	MaxRetries  int        `json:"max_retries" gorm:"type:integer;default:3"`
	LastError   *string    `json:"last_error,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// JobPayload stores the input parameters for a job
type JobPayload struct {
	MeetingID     *uuid.UUID  `json:"meeting_id,omitempty"`
	ActionItemIDs []uuid.UUID `json:"action_item_ids,omitempty"`
	AudioURL      string      `json:"audio_url,omitempty"`
	MeetingType   string      `json:"meeting_type,omitempty"`
	Days          int         `json:"days,omitempty"`
	Person        string      `json:"person,omitempty"`
}

// Scan implements sql.Scanner interface for GORM
func (p *JobPayload) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, &p)
}

// Value implements driver.Valuer interface for GORM
func (p JobPayload) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// JobResult stores the output of a completed job
type JobResult struct {
	MeetingID        *uuid.UUID `json:"meeting_id,omitempty"`
	IssuesCreated    int        `json:"issues_created,omitempty"`
	IssuesSkipped    int        `json:"issues_skipped,omitempty"`
	IssueURLs        []string   `json:"issue_urls,omitempty"`
	ReportKey        string     `json:"report_key,omitempty"`
	TranscriptID     string     `json:"transcript_id,omitempty"`
	ProcessingTimeMs int64      `json:"processing_time_ms,omitempty"`
}

// Scan implements sql.Scanner interface for GORM
func (r *JobResult) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, &r)
}

// Value implements driver.Valuer interface for GORM
func (r JobResult) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// NewJob creates a new pending job
func NewJob(jobType JobType, payload JobPayload) *Job {
	return &Job{
		ID:         uuid.New(),
		Type:       jobType,
		Status:     JobStatusPending,
		Payload:    payload,
		RetryCount: 0,
		MaxRetries: 3,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

// IsRetryable checks if job can be retried
func (j *Job) IsRetryable() bool {
	return j.RetryCount < j.MaxRetries && j.Status == JobStatusFailed
}

// IsTerminal checks if the job reached a final state
func (j *Job) IsTerminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusCancelled ||
		(j.Status == JobStatusFailed && !j.IsRetryable())
}

// MarkAsProcessing marks job as being worked on
func (j *Job) MarkAsProcessing() {
	j.Status = JobStatusProcessing
	now := time.Now()
	j.StartedAt = &now
	j.UpdatedAt = now
}

// MarkAsCompleted marks job as completed successfully
func (j *Job) MarkAsCompleted(result JobResult) {
	j.Status = JobStatusCompleted
	j.Result = result
	now := time.Now()
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// MarkAsFailed marks job as failed with error message
func (j *Job) MarkAsFailed(errMsg string) {
	j.Status = JobStatusFailed
	j.LastError = &errMsg
	j.UpdatedAt = time.Now()
}

// IncrementRetry increments retry count and marks for retry
func (j *Job) IncrementRetry(errMsg string) {
	j.RetryCount++
	j.Status = JobStatusRetrying
	j.LastError = &errMsg
	j.UpdatedAt = time.Now()
}

// MarkAsCancelled marks job as cancelled
func (j *Job) MarkAsCancelled() {
	j.Status = JobStatusCancelled
	now := time.Now()
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// TableName specifies the table name for GORM
func (Job) TableName() string {
	return "jobs"
}
