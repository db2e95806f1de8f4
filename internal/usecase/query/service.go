package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
)

// Service defines read and lifecycle operations over the meeting archive
type Service interface {
	// GetMeeting retrieves a meeting with all extracted children
	GetMeeting(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// ListMeetings retrieves meetings with filters
	ListMeetings(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error)

	// SearchMeetings runs a free-text search across titles, topics,
	// decisions and action items
	SearchMeetings(ctx context.Context, query string, limit int) ([]*entities.Meeting, error)

	// MeetingsAbout retrieves meetings that discussed the given topic
	MeetingsAbout(ctx context.Context, topic string, limit int) ([]*entities.Meeting, error)

	// DeleteMeeting removes a meeting and everything extracted from it
	DeleteMeeting(ctx context.Context, id uuid.UUID) error

	// ListActions retrieves action items with filters
	ListActions(ctx context.Context, filters repositories.ActionFilters) ([]*entities.ActionItem, int64, error)

	// PendingActions retrieves open action items, highest priority first
	PendingActions(ctx context.Context) ([]*entities.ActionItem, error)

	// ActionsForPerson retrieves action items owned by the named person
	ActionsForPerson(ctx context.Context, name string, includeCompleted bool) ([]*entities.ActionItem, error)

	// UpdateActionStatus transitions an action item's lifecycle status
	UpdateActionStatus(ctx context.Context, id uuid.UUID, status string) error

	// OpenBlockers retrieves unresolved blockers across all meetings
	OpenBlockers(ctx context.Context) ([]*entities.Blocker, error)

	// ResolveBlocker marks a blocker as cleared
	ResolveBlocker(ctx context.Context, id uuid.UUID) error

	// ListPeople retrieves known people ordered by name
	ListPeople(ctx context.Context, limit, offset int) ([]*entities.Person, int64, error)

	// ListDocuments retrieves ingested documents, newest first
	ListDocuments(ctx context.Context, limit, offset int) ([]*entities.Document, int64, error)
}

// Ensure QueryService implements Service interface
var _ Service = (*QueryService)(nil)
