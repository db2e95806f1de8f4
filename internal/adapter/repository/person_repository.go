package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
)

// personRepository implements the PersonRepository interface
type personRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *gorm.DB) repositories.PersonRepository {
	return &personRepository{db: db}
}

// FindOrCreate resolves a name to its deduplicated person
func (r *personRepository) FindOrCreate(ctx context.Context, name string) (*entities.Person, error) {
	norm := entities.NormalizePersonName(name)
	if norm == "" {
		return nil, entities.ErrInvalidName
	}

	var person entities.Person
	err := r.db.WithContext(ctx).Where("normalized_name = ?", norm).First(&person).Error
	if err == nil {
		return &person, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := entities.NewPerson(name)
	if err := r.db.WithContext(ctx).Create(created).Error; err != nil {
		// A concurrent ingest may have inserted the same name
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			if err2 := r.db.WithContext(ctx).Where("normalized_name = ?", norm).First(&person).Error; err2 == nil {
				return &person, nil
			}
		}
		return nil, err
	}
	return created, nil
}

// FindByID retrieves a person by ID
func (r *personRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Person, error) {
	var person entities.Person
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrPersonNotFound
		}
		return nil, err
	}
	return &person, nil
}

// FindByName retrieves a person by normalized name
func (r *personRepository) FindByName(ctx context.Context, name string) (*entities.Person, error) {
	var person entities.Person
	err := r.db.WithContext(ctx).
		Where("normalized_name = ?", entities.NormalizePersonName(name)).
		First(&person).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrPersonNotFound
		}
		return nil, err
	}
	return &person, nil
}

// Update updates an existing person
func (r *personRepository) Update(ctx context.Context, person *entities.Person) error {
	return r.db.WithContext(ctx).Save(person).Error
}

// List retrieves all known people ordered by name
func (r *personRepository) List(ctx context.Context, limit, offset int) ([]*entities.Person, int64, error) {
	var people []*entities.Person
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Person{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&people).Error
	return people, total, err
}
