package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden access")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrConflict      = errors.New("resource conflict")
	ErrInternalError = errors.New("internal server error")
)

// Ingest errors
var (
	ErrEmptyDocument     = errors.New("document is empty")
	ErrUnreadableSource  = errors.New("source could not be read")
	ErrExtractionFailed  = errors.New("extraction failed")
	ErrDocumentUnchanged = errors.New("document content unchanged")
)

// Query errors
var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrPersonNotFound  = errors.New("person not found")
	ErrUnknownTopic    = errors.New("topic never discussed")
	ErrInvalidWindow   = errors.New("invalid time window")
)

// NL query engine errors
var (
	ErrLLMUnavailable = errors.New("language model not configured")
	ErrPlanRejected   = errors.New("query plan not in catalog")
	ErrPlanUnparsable = errors.New("query plan could not be parsed")
)

// Export errors
var (
	ErrExportNotConfigured = errors.New("github export not configured")
	ErrNothingToExport     = errors.New("no pending action items to export")
	ErrAlreadyExported     = errors.New("action item already exported")
)

// Job errors
var (
	ErrJobNotFound      = errors.New("job not found")
	ErrJobNotCancelable = errors.New("job cannot be cancelled")
	ErrWorkersDisabled  = errors.New("background workers are disabled")
)

// Transcription errors
var (
	ErrTranscriptionFailed  = errors.New("transcription failed")
	ErrMissingAudioURL      = errors.New("audio url is required")
	ErrTranscriberNotConfig = errors.New("transcription service not configured")
)
