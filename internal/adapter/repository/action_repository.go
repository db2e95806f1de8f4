package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
)

// priorityOrderExpr sorts high before medium before low
const priorityOrderExpr = "CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END"

// actionItemRepository implements the ActionItemRepository interface
type actionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) repositories.ActionItemRepository {
	return &actionItemRepository{db: db}
}

// FindByID retrieves an action item with its person preloaded
func (r *actionItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	var item entities.ActionItem
	err := r.db.WithContext(ctx).
		Preload("Person").
		Where("id = ?", id).
		First(&item).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrActionItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// List retrieves action items with filters and pagination
func (r *actionItemRepository) List(ctx context.Context, filters repositories.ActionFilters) ([]*entities.ActionItem, int64, error) {
	var items []*entities.ActionItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.ActionItem{})

	// Apply filters
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Priority != nil {
		query = query.Where("priority = ?", *filters.Priority)
	}
	if filters.MeetingID != nil {
		query = query.Where("meeting_id = ?", *filters.MeetingID)
	}
	if filters.Person != nil {
		norm := entities.NormalizePersonName(*filters.Person)
		query = query.Where(`person_id IN (SELECT id FROM people WHERE normalized_name = ?)
			OR LOWER(owner) = ?`, norm, norm)
	}
	if filters.Exported != nil {
		if *filters.Exported {
			query = query.Where("github_issue_url IS NOT NULL")
		} else {
			query = query.Where("github_issue_url IS NULL")
		}
	}
	if filters.Search != "" {
		query = query.Where("description ILIKE ?", fmt.Sprintf("%%%s%%", filters.Search))
	}

	// Count total
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Apply sorting
	switch filters.SortBy {
	case "priority":
		query = query.Order(priorityOrderExpr)
	case "due_date":
		order := "ASC"
		if filters.SortOrder == "desc" || filters.SortOrder == "DESC" {
			order = "DESC"
		}
		query = query.Order("due_date " + order + " NULLS LAST")
	default:
		order := "DESC"
		if filters.SortOrder == "asc" || filters.SortOrder == "ASC" {
			order = "ASC"
		}
		query = query.Order("created_at " + order)
	}
	query = query.Order("position ASC")

	// Apply pagination
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Preload("Person").Find(&items).Error
	return items, total, err
}

// ListPending retrieves open action items, highest priority first
func (r *actionItemRepository) ListPending(ctx context.Context) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	err := r.db.WithContext(ctx).
		Preload("Person").
		Preload("Meeting").
		Where("status IN ?", []string{entities.ActionItemStatusPending, entities.ActionItemStatusInProgress}).
		Order(priorityOrderExpr).
		Order("created_at ASC").
		Order("position ASC").
		Find(&items).Error
	return items, err
}

// ListByPerson retrieves action items owned by the named person
func (r *actionItemRepository) ListByPerson(ctx context.Context, name string, includeCompleted bool) ([]*entities.ActionItem, error) {
	norm := entities.NormalizePersonName(name)

	query := r.db.WithContext(ctx).
		Preload("Person").
		Preload("Meeting").
		Where(`person_id IN (SELECT id FROM people WHERE normalized_name = ?)
			OR LOWER(owner) = ?`, norm, norm)

	if !includeCompleted {
		query = query.Where("status IN ?", []string{entities.ActionItemStatusPending, entities.ActionItemStatusInProgress})
	}

	var items []*entities.ActionItem
	err := query.
		Order(priorityOrderExpr).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// ListByMeeting retrieves action items for one meeting in document order
func (r *actionItemRepository) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	err := r.db.WithContext(ctx).
		Preload("Person").
		Where("meeting_id = ?", meetingID).
		Order("position ASC").
		Find(&items).Error
	return items, err
}

// UpdateStatus transitions an action item's lifecycle status
func (r *actionItemRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.ActionItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entities.ErrActionItemNotFound
	}
	return nil
}

// MarkExported records the GitHub issue created for an action item
func (r *actionItemRepository) MarkExported(ctx context.Context, id uuid.UUID, issueNumber int, issueURL string) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&entities.ActionItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"github_issue_number": issueNumber,
			"github_issue_url":    issueURL,
			"exported_at":         now,
			"updated_at":          now,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entities.ErrActionItemNotFound
	}
	return nil
}

// ListOpenBlockers retrieves unresolved blockers, oldest first
func (r *actionItemRepository) ListOpenBlockers(ctx context.Context) ([]*entities.Blocker, error) {
	var blockers []*entities.Blocker
	err := r.db.WithContext(ctx).
		Where("resolved = ?", false).
		Order("created_at ASC").
		Find(&blockers).Error
	return blockers, err
}

// ResolveBlocker marks a blocker as cleared
func (r *actionItemRepository) ResolveBlocker(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Blocker{}).
		Where("id = ? AND resolved = ?", id, false).
		Updates(map[string]interface{}{
			"resolved":    true,
			"resolved_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entities.ErrBlockerNotFound
	}
	return nil
}
