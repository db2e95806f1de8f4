package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// DocumentRepository defines the interface for raw document data access
type DocumentRepository interface {
	// Create records an ingested artifact
	Create(ctx context.Context, doc *entities.Document) error

	// Update persists document changes
	Update(ctx context.Context, doc *entities.Document) error

	// FindByID retrieves a document by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Document, error)

	// FindBySourcePath retrieves the latest document ingested from a path
	FindBySourcePath(ctx context.Context, sourcePath string) (*entities.Document, error)

	// FindByMeetingID retrieves the document behind a meeting
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.Document, error)

	// List retrieves documents newest first
	List(ctx context.Context, limit, offset int) ([]*entities.Document, int64, error)
}
