package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// meetingPreloads are the child associations loaded with a full meeting
var meetingPreloads = []string{"Attendees", "Attendees.Person", "Topics", "ActionItems", "ActionItems.Person", "Decisions", "Blockers"}

func withMeetingPreloads(query *gorm.DB) *gorm.DB {
	for _, p := range meetingPreloads {
		query = query.Preload(p)
	}
	return query
}

// Create creates a new meeting with all its children
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

// FindByID retrieves a meeting with all children preloaded
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := withMeetingPreloads(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

// FindBySourcePath retrieves a meeting by its source document path
func (r *meetingRepository) FindBySourcePath(ctx context.Context, sourcePath string) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := withMeetingPreloads(r.db.WithContext(ctx)).
		Where("source_path = ?", sourcePath).
		First(&meeting).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

// Replace updates a meeting in place and swaps out all its children
func (r *meetingRepository) Replace(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		childModels := []interface{}{
			&entities.MeetingAttendee{},
			&entities.Topic{},
			&entities.ActionItem{},
			&entities.Decision{},
			&entities.Blocker{},
		}
		for _, model := range childModels {
			if err := tx.Where("meeting_id = ?", meeting.ID).Delete(model).Error; err != nil {
				return err
			}
		}

		if err := tx.Omit("Attendees", "Topics", "ActionItems", "Decisions", "Blockers").
			Save(meeting).Error; err != nil {
			return err
		}

		if len(meeting.Attendees) > 0 {
			if err := tx.Create(&meeting.Attendees).Error; err != nil {
				return err
			}
		}
		if len(meeting.Topics) > 0 {
			if err := tx.Create(&meeting.Topics).Error; err != nil {
				return err
			}
		}
		if len(meeting.ActionItems) > 0 {
			if err := tx.Create(&meeting.ActionItems).Error; err != nil {
				return err
			}
		}
		if len(meeting.Decisions) > 0 {
			if err := tx.Create(&meeting.Decisions).Error; err != nil {
				return err
			}
		}
		if len(meeting.Blockers) > 0 {
			if err := tx.Create(&meeting.Blockers).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a meeting and its children
func (r *meetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		childModels := []interface{}{
			&entities.MeetingAttendee{},
			&entities.Topic{},
			&entities.ActionItem{},
			&entities.Decision{},
			&entities.Blocker{},
		}
		for _, model := range childModels {
			if err := tx.Where("meeting_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&entities.Meeting{}, id).Error
	})
}

// List retrieves meetings with filters and pagination
func (r *meetingRepository) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	var meetings []*entities.Meeting
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Meeting{})

	// Apply filters
	if filters.Type != nil {
		query = query.Where("meeting_type = ?", *filters.Type)
	}
	if filters.Person != nil {
		norm := entities.NormalizePersonName(*filters.Person)
		query = query.Where(`EXISTS (
			SELECT 1 FROM meeting_attendees ma
			JOIN people p ON p.id = ma.person_id
			WHERE ma.meeting_id = meetings.id AND p.normalized_name = ?)`, norm)
	}
	if filters.DateFrom != nil {
		query = query.Where("meeting_date >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("meeting_date <= ?", *filters.DateTo)
	}
	if filters.Search != "" {
		searchPattern := fmt.Sprintf("%%%s%%", filters.Search)
		query = query.Where("title ILIKE ?", searchPattern)
	}

	// Count total
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Apply sorting. Column names are whitelisted, the values come from
	// query parameters.
	sortBy := "meeting_date"
	switch filters.SortBy {
	case "created_at", "title", "meeting_date":
		sortBy = filters.SortBy
	}
	sortOrder := "DESC"
	if filters.SortOrder == "asc" || filters.SortOrder == "ASC" {
		sortOrder = "ASC"
	}
	query = query.Order(fmt.Sprintf("%s %s NULLS LAST", sortBy, sortOrder)).Order("created_at DESC")

	// Apply pagination
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := withMeetingPreloads(query).Find(&meetings).Error
	return meetings, total, err
}

// FindByTopicHeading retrieves meetings that discussed the given topic
func (r *meetingRepository) FindByTopicHeading(ctx context.Context, heading string, limit int) ([]*entities.Meeting, error) {
	if limit <= 0 {
		limit = 20
	}
	var meetings []*entities.Meeting
	err := withMeetingPreloads(r.db.WithContext(ctx)).
		Where(`EXISTS (
			SELECT 1 FROM topics t
			WHERE t.meeting_id = meetings.id AND LOWER(t.heading) = LOWER(?))`, heading).
		Order("meeting_date DESC NULLS LAST").
		Order("created_at DESC").
		Limit(limit).
		Find(&meetings).Error
	return meetings, err
}

// Search runs a case-insensitive match across titles, topic headings,
// decision and action texts
func (r *meetingRepository) Search(ctx context.Context, query string, limit int) ([]*entities.Meeting, error) {
	if limit <= 0 {
		limit = 20
	}
	pattern := fmt.Sprintf("%%%s%%", query)

	var meetings []*entities.Meeting
	err := withMeetingPreloads(r.db.WithContext(ctx)).
		Where(`title ILIKE ?
			OR EXISTS (SELECT 1 FROM topics t WHERE t.meeting_id = meetings.id AND t.heading ILIKE ?)
			OR EXISTS (SELECT 1 FROM decisions d WHERE d.meeting_id = meetings.id AND d.text ILIKE ?)
			OR EXISTS (SELECT 1 FROM action_items a WHERE a.meeting_id = meetings.id AND a.description ILIKE ?)`,
			pattern, pattern, pattern, pattern).
		Order("meeting_date DESC NULLS LAST").
		Order("created_at DESC").
		Limit(limit).
		Find(&meetings).Error
	return meetings, err
}
