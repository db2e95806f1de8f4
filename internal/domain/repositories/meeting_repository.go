package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a new meeting with all its children
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting with attendees, topics, actions,
	// decisions and blockers preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// FindBySourcePath retrieves a meeting by its source document path
	FindBySourcePath(ctx context.Context, sourcePath string) (*entities.Meeting, error)

	// Replace updates a meeting in place and swaps out all its children.
	// Used on re-ingest of a changed source document.
	Replace(ctx context.Context, meeting *entities.Meeting) error

	// Delete removes a meeting and its children
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves meetings with filters and pagination
	List(ctx context.Context, filters MeetingFilters) ([]*entities.Meeting, int64, error)

	// FindByTopicHeading retrieves meetings that discussed the given
	// topic, newest first
	FindByTopicHeading(ctx context.Context, heading string, limit int) ([]*entities.Meeting, error)

	// Search runs a case-insensitive match across titles, topic headings,
	// decision and action texts
	Search(ctx context.Context, query string, limit int) ([]*entities.Meeting, error)
}

// MeetingFilters represents filter options for listing meetings
type MeetingFilters struct {
	Type      *string
	Person    *string // attendee name
	DateFrom  *time.Time
	DateTo    *time.Time
	Search    string // Search in title
	Limit     int
	Offset    int
	SortBy    string // "meeting_date", "created_at", "title"
	SortOrder string // "asc", "desc"
}
