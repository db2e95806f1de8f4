package notes

import (
	"time"
)

// MeetingResponse represents a meeting with its full extracted record
type MeetingResponse struct {
	ID              string                `json:"id"`
	Title           string                `json:"title"`
	MeetingType     *string               `json:"meeting_type,omitempty"`
	MeetingDate     *time.Time            `json:"meeting_date,omitempty"`
	StartTime       *string               `json:"start_time,omitempty"`
	EndTime         *string               `json:"end_time,omitempty"`
	DurationMin     *int                  `json:"duration_minutes,omitempty"`
	Location        *string               `json:"location,omitempty"`
	SourcePath      string                `json:"source_path"`
	NextMeetingDate *time.Time            `json:"next_meeting_date,omitempty"`
	NextMeetingTime *string               `json:"next_meeting_time,omitempty"`
	Agenda          []string              `json:"agenda,omitempty"`
	Warnings        []string              `json:"warnings,omitempty"`
	Attendees       []*AttendeeResponse   `json:"attendees,omitempty"`
	Topics          []*TopicResponse      `json:"topics,omitempty"`
	ActionItems     []*ActionItemResponse `json:"action_items,omitempty"`
	Decisions       []*DecisionResponse   `json:"decisions,omitempty"`
	Blockers        []*BlockerResponse    `json:"blockers,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// MeetingSummaryResponse represents a meeting in list views
type MeetingSummaryResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	MeetingType *string    `json:"meeting_type,omitempty"`
	MeetingDate *time.Time `json:"meeting_date,omitempty"`
	Attendees   int        `json:"attendees"`
	Topics      int        `json:"topics"`
	ActionItems int        `json:"action_items"`
	Decisions   int        `json:"decisions"`
	HasWarnings bool       `json:"has_warnings"`
	CreatedAt   time.Time  `json:"created_at"`
}

// MeetingListResponse represents a paginated meeting list
type MeetingListResponse struct {
	Meetings   []*MeetingSummaryResponse `json:"meetings"`
	Total      int64                     `json:"total"`
	Page       int                       `json:"page"`
	PageSize   int                       `json:"page_size"`
	TotalPages int                       `json:"total_pages"`
}

// AttendeeResponse represents one person on a meeting roster
type AttendeeResponse struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
	Role  *string `json:"role,omitempty"`
}

// TopicResponse represents one discussion topic with its bullets
type TopicResponse struct {
	Heading string   `json:"heading"`
	Bullets []string `json:"bullets,omitempty"`
}

// ActionItemResponse represents one extracted action item
type ActionItemResponse struct {
	ID          string     `json:"id"`
	MeetingID   string     `json:"meeting_id"`
	Owner       *string    `json:"owner,omitempty"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      string     `json:"status"`

	GithubIssueNumber *int    `json:"github_issue_number,omitempty"`
	GithubIssueURL    *string `json:"github_issue_url,omitempty"`

	MeetingTitle string    `json:"meeting_title,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// DecisionResponse represents one recorded decision
type DecisionResponse struct {
	Text string `json:"text"`
}

// BlockerResponse represents one recorded blocker
type BlockerResponse struct {
	ID         string     `json:"id"`
	MeetingID  string     `json:"meeting_id"`
	Text       string     `json:"text"`
	Resolved   bool       `json:"resolved"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// ActionListResponse represents a flat action item listing
type ActionListResponse struct {
	Actions []*ActionItemResponse `json:"actions"`
	Total   int64                 `json:"total"`
}

// BlockerListResponse represents a flat blocker listing
type BlockerListResponse struct {
	Blockers []*BlockerResponse `json:"blockers"`
	Total    int                `json:"total"`
}

// PersonResponse represents one deduplicated person
type PersonResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Role      *string   `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PersonListResponse represents the known-people roster
type PersonListResponse struct {
	People []*PersonResponse `json:"people"`
	Total  int64             `json:"total"`
}

// DocumentResponse represents one archived source document
type DocumentResponse struct {
	ID         string    `json:"id"`
	SourcePath *string   `json:"source_path,omitempty"`
	Filename   string    `json:"filename"`
	Origin     string    `json:"origin"`
	SizeBytes  int64     `json:"size_bytes"`
	MeetingID  *string   `json:"meeting_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// DocumentListResponse represents the archived-document listing
type DocumentListResponse struct {
	Documents []*DocumentResponse `json:"documents"`
	Total     int64               `json:"total"`
}

// IngestResponse represents the result of ingesting one document
type IngestResponse struct {
	Meeting   *MeetingResponse `json:"meeting"`
	Created   bool             `json:"created"`
	Updated   bool             `json:"updated"`
	Unchanged bool             `json:"unchanged"`
	Warnings  []string         `json:"warnings,omitempty"`
}

// AskResponse represents the answer to a natural-language question
type AskResponse struct {
	Question string      `json:"question"`
	Answer   string      `json:"answer"`
	Query    string      `json:"query,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Fallback bool        `json:"fallback"`
}

// JobResponse represents a background job
type JobResponse struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Status      string      `json:"status"`
	Result      interface{} `json:"result,omitempty"`
	RetryCount  int         `json:"retry_count"`
	MaxRetries  int         `json:"max_retries"`
	LastError   *string     `json:"last_error,omitempty"`
	StartedAt   *time.Time  `json:"started_at,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// JobListResponse represents recent background jobs
type JobListResponse struct {
	Jobs  []*JobResponse `json:"jobs"`
	Total int            `json:"total"`
}

// DocumentLinkResponse represents a presigned URL for an archived source
type DocumentLinkResponse struct {
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
