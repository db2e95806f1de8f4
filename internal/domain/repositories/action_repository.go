package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// ActionItemRepository defines the interface for action item data access
type ActionItemRepository interface {
	// FindByID retrieves an action item with its person and meeting context
	FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error)

	// List retrieves action items with filters and pagination
	List(ctx context.Context, filters ActionFilters) ([]*entities.ActionItem, int64, error)

	// ListPending retrieves open action items across all meetings,
	// highest priority first
	ListPending(ctx context.Context) ([]*entities.ActionItem, error)

	// ListByPerson retrieves action items owned by the named person
	ListByPerson(ctx context.Context, name string, includeCompleted bool) ([]*entities.ActionItem, error)

	// ListByMeeting retrieves action items for one meeting in document order
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error)

	// UpdateStatus transitions an action item's lifecycle status
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	// MarkExported records the GitHub issue created for an action item
	MarkExported(ctx context.Context, id uuid.UUID, issueNumber int, issueURL string) error

	// ListOpenBlockers retrieves unresolved blockers, oldest first
	ListOpenBlockers(ctx context.Context) ([]*entities.Blocker, error)

	// ResolveBlocker marks a blocker as cleared
	ResolveBlocker(ctx context.Context, id uuid.UUID) error
}

// ActionFilters represents filter options for listing action items
type ActionFilters struct {
	Status    *string
	Priority  *string
	Person    *string
	MeetingID *uuid.UUID
	Exported  *bool // filter on whether a GitHub issue exists
	Search    string
	Limit     int
	Offset    int
	SortBy    string // "created_at", "priority", "due_date"
	SortOrder string // "asc", "desc"
}
