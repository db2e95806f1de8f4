package export

import (
	"context"

	"github.com/google/uuid"
)

// Service exports action items to GitHub issues
type Service interface {
	// ExportMeeting exports a meeting's open, not yet exported action items
	ExportMeeting(ctx context.Context, meetingID uuid.UUID) (*Result, error)

	// ExportPending exports every open, not yet exported action item
	ExportPending(ctx context.Context) (*Result, error)

	// ExportAction exports a single action item
	ExportAction(ctx context.Context, id uuid.UUID) (*ExportedIssue, error)

	// IsConfigured reports whether a GitHub client is wired
	IsConfigured() bool

	// Target returns the owner/repo issues are created in
	Target() string
}

// Result summarizes one export run
type Result struct {
	Exported []ExportedIssue `json:"exported"`
	Skipped  int             `json:"skipped"`
	Failed   int             `json:"failed"`
}

// ExportedIssue is one created GitHub issue
type ExportedIssue struct {
	ActionID    uuid.UUID `json:"action_id"`
	Description string    `json:"description"`
	IssueNumber int       `json:"issue_number"`
	IssueURL    string    `json:"issue_url"`
}

// Ensure ExportService implements Service interface
var _ Service = (*ExportService)(nil)
