package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// PersonRepository defines the interface for person data access
type PersonRepository interface {
	// FindOrCreate resolves a name to its deduplicated person,
	// creating the record on first sighting
	FindOrCreate(ctx context.Context, name string) (*entities.Person, error)

	// FindByID retrieves a person by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Person, error)

	// FindByName retrieves a person by normalized name
	FindByName(ctx context.Context, name string) (*entities.Person, error)

	// Update updates an existing person
	Update(ctx context.Context, person *entities.Person) error

	// List retrieves all known people ordered by name
	List(ctx context.Context, limit, offset int) ([]*entities.Person, int64, error)
}
