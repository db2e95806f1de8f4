package notes

// IngestTextRequest represents the request to ingest raw meeting notes
type IngestTextRequest struct {
	Content string `json:"content" validate:"required,min=1"`

	// SourcePath identifies the document for re-ingest; a synthetic
	// path is generated when omitted
	SourcePath string `json:"source_path,omitempty" validate:"omitempty,max=1024"`
}

// IngestAudioRequest represents the request to ingest a meeting recording
type IngestAudioRequest struct {
	AudioURL    string `json:"audio_url" validate:"required,url"`
	MeetingType string `json:"meeting_type,omitempty" validate:"omitempty,max=100"`
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	Type      *string `query:"type" validate:"omitempty,max=100"`
	Person    *string `query:"person" validate:"omitempty,max=255"`
	DateFrom  string  `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo    string  `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
	Search    string  `query:"search"`
	Page      int     `query:"page" validate:"min=0"`
	PageSize  int     `query:"page_size" validate:"min=0,max=100"`
	SortBy    string  `query:"sort_by" validate:"omitempty,oneof=meeting_date created_at title"`
	SortOrder string  `query:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// ListActionsRequest represents query parameters for listing action items
type ListActionsRequest struct {
	Status   *string `query:"status" validate:"omitempty,actionstatus"`
	Priority *string `query:"priority" validate:"omitempty,priority"`
	Person   *string `query:"person" validate:"omitempty,max=255"`
	Exported *bool   `query:"exported"`
	Search   string  `query:"search"`
	Limit    int     `query:"limit" validate:"min=0,max=500"`
	Offset   int     `query:"offset" validate:"min=0"`
}

// UpdateActionStatusRequest represents the request to move an action item
// through its lifecycle
type UpdateActionStatusRequest struct {
	Status string `json:"status" validate:"required,actionstatus"`
}

// AskRequest represents a natural-language question about the archive
type AskRequest struct {
	Question string `json:"question" validate:"required,min=3,max=2000"`
}

// ExportRequest represents the request to enqueue a GitHub export job
type ExportRequest struct {
	// MeetingID limits the export to one meeting's action items;
	// everything pending is exported when omitted
	MeetingID *string `json:"meeting_id,omitempty" validate:"omitempty,uuid"`

	// Repo is a safety check, not a target override: when set it must
	// match the owner/repo the server is configured to export to
	Repo *string `json:"repo,omitempty" validate:"omitempty,max=200"`
}

// EnqueueJobRequest represents the request to enqueue a background job
type EnqueueJobRequest struct {
	Type string `json:"type" validate:"required,oneof=github_export progress_report transcribe_audio"`

	MeetingID   *string `json:"meeting_id,omitempty" validate:"omitempty,uuid"`
	AudioURL    string  `json:"audio_url,omitempty" validate:"omitempty,url"`
	MeetingType string  `json:"meeting_type,omitempty" validate:"omitempty,max=100"`
	Days        int     `json:"days,omitempty" validate:"omitempty,min=1,max=3650"`
	Person      string  `json:"person,omitempty" validate:"omitempty,max=255"`
}
