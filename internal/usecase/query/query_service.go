package query

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/pkg/metrics"
)

// queryCacheTTL bounds staleness for cached read results. Ingest and
// status changes invalidate the whole prefix anyway.
const queryCacheTTL = 5 * time.Minute

// QueryService handles archive reads and action item lifecycle changes
type QueryService struct {
	meetingRepo repositories.MeetingRepository
	actionRepo  repositories.ActionItemRepository
	personRepo  repositories.PersonRepository
	docRepo     repositories.DocumentRepository
	cache       cache.Store
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewQueryService creates a new query service. The cache is optional.
func NewQueryService(
	meetingRepo repositories.MeetingRepository,
	actionRepo repositories.ActionItemRepository,
	personRepo repositories.PersonRepository,
	docRepo repositories.DocumentRepository,
	cacheStore cache.Store,
	m *metrics.Metrics,
	logger *zap.Logger,
) *QueryService {
	return &QueryService{
		meetingRepo: meetingRepo,
		actionRepo:  actionRepo,
		personRepo:  personRepo,
		docRepo:     docRepo,
		cache:       cacheStore,
		metrics:     m,
		logger:      logger,
	}
}

// GetMeeting retrieves a meeting with all extracted children
func (s *QueryService) GetMeeting(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting, nil
}

// ListMeetings retrieves meetings with filters
func (s *QueryService) ListMeetings(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	meetings, total, err := s.meetingRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, total, nil
}

// SearchMeetings runs a free-text search across titles, topics, decisions
// and action items
func (s *QueryService) SearchMeetings(ctx context.Context, query string, limit int) ([]*entities.Meeting, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is empty", usecaseErrors.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = 20
	}

	var meetings []*entities.Meeting
	key := fmt.Sprintf("query:search:%s:%d", strings.ToLower(query), limit)
	err := s.cached(ctx, key, &meetings, func() (interface{}, error) {
		return s.meetingRepo.Search(ctx, query, limit)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search meetings: %w", err)
	}
	return meetings, nil
}

// MeetingsAbout retrieves meetings that discussed the given topic
func (s *QueryService) MeetingsAbout(ctx context.Context, topic string, limit int) ([]*entities.Meeting, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, fmt.Errorf("%w: topic is empty", usecaseErrors.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = 20
	}

	var meetings []*entities.Meeting
	key := fmt.Sprintf("query:topic:%s:%d", strings.ToLower(topic), limit)
	err := s.cached(ctx, key, &meetings, func() (interface{}, error) {
		return s.meetingRepo.FindByTopicHeading(ctx, topic, limit)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find meetings by topic: %w", err)
	}
	if len(meetings) == 0 {
		return nil, usecaseErrors.ErrUnknownTopic
	}
	return meetings, nil
}

// DeleteMeeting removes a meeting and everything extracted from it
func (s *QueryService) DeleteMeeting(ctx context.Context, id uuid.UUID) error {
	if err := s.meetingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return usecaseErrors.ErrMeetingNotFound
		}
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

// ListActions retrieves action items with filters
func (s *QueryService) ListActions(ctx context.Context, filters repositories.ActionFilters) ([]*entities.ActionItem, int64, error) {
	if filters.Status != nil && !entities.ValidStatus(*filters.Status) {
		return nil, 0, fmt.Errorf("%w: invalid status %q", usecaseErrors.ErrInvalidInput, *filters.Status)
	}
	actions, total, err := s.actionRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list action items: %w", err)
	}
	return actions, total, nil
}

// PendingActions retrieves open action items, highest priority first
func (s *QueryService) PendingActions(ctx context.Context) ([]*entities.ActionItem, error) {
	var actions []*entities.ActionItem
	err := s.cached(ctx, "query:actions:pending", &actions, func() (interface{}, error) {
		return s.actionRepo.ListPending(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending actions: %w", err)
	}
	return actions, nil
}

// ActionsForPerson retrieves action items owned by the named person.
// Items whose owner never resolved to a person still match by raw name.
func (s *QueryService) ActionsForPerson(ctx context.Context, name string, includeCompleted bool) ([]*entities.ActionItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: person name is empty", usecaseErrors.ErrInvalidInput)
	}

	actions, err := s.actionRepo.ListByPerson(ctx, name, includeCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions for person: %w", err)
	}
	if len(actions) == 0 {
		if _, err := s.personRepo.FindByName(ctx, name); errors.Is(err, entities.ErrPersonNotFound) {
			return nil, usecaseErrors.ErrPersonNotFound
		}
	}
	return actions, nil
}

// UpdateActionStatus transitions an action item's lifecycle status
func (s *QueryService) UpdateActionStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !entities.ValidStatus(status) {
		return fmt.Errorf("%w: invalid status %q", usecaseErrors.ErrInvalidInput, status)
	}
	if err := s.actionRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, entities.ErrActionItemNotFound) {
			return usecaseErrors.ErrNotFound
		}
		return fmt.Errorf("failed to update action status: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

// OpenBlockers retrieves unresolved blockers across all meetings
func (s *QueryService) OpenBlockers(ctx context.Context) ([]*entities.Blocker, error) {
	blockers, err := s.actionRepo.ListOpenBlockers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open blockers: %w", err)
	}
	return blockers, nil
}

// ResolveBlocker marks a blocker as cleared
func (s *QueryService) ResolveBlocker(ctx context.Context, id uuid.UUID) error {
	if err := s.actionRepo.ResolveBlocker(ctx, id); err != nil {
		if errors.Is(err, entities.ErrBlockerNotFound) {
			return usecaseErrors.ErrNotFound
		}
		return fmt.Errorf("failed to resolve blocker: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

// ListPeople retrieves known people ordered by name
func (s *QueryService) ListPeople(ctx context.Context, limit, offset int) ([]*entities.Person, int64, error) {
	people, total, err := s.personRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list people: %w", err)
	}
	return people, total, nil
}

// ListDocuments retrieves ingested documents, newest first
func (s *QueryService) ListDocuments(ctx context.Context, limit, offset int) ([]*entities.Document, int64, error) {
	docs, total, err := s.docRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, total, nil
}

// cached fills out from the cache when possible, otherwise runs fill and
// stores the result. Cache failures fall through to the repository.
func (s *QueryService) cached(ctx context.Context, key string, out interface{}, fill func() (interface{}, error)) error {
	if s.cache != nil {
		if raw, hit, err := s.cache.Get(ctx, key); err == nil && hit {
			if err := json.Unmarshal([]byte(raw), out); err == nil {
				if s.metrics != nil {
					s.metrics.RecordCacheHit()
				}
				return nil
			}
		}
		if s.metrics != nil {
			s.metrics.RecordCacheMiss()
		}
	}

	value, err := fill()
	if err != nil {
		return err
	}

	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, string(b), queryCacheTTL); err != nil && s.logger != nil {
			s.logger.Warn("⚠️ Failed to cache result", zap.String("key", key), zap.Error(err))
		}
	}
	return nil
}

// invalidate drops derived results after a write
func (s *QueryService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	for _, prefix := range []string{"query:", "analytics:"} {
		if err := s.cache.DeletePrefix(ctx, prefix); err != nil && s.logger != nil {
			s.logger.Warn("⚠️ Failed to invalidate cache",
				zap.String("prefix", prefix),
				zap.Error(err),
			)
		}
	}
}
