package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/storage"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/pkg/extract"
	"github.com/johnquangdev/meeting-notes/pkg/metrics"
)

// Service defines document ingestion methods
type Service interface {
	// IngestText ingests raw meeting-note content
	IngestText(ctx context.Context, input Input) (*Result, error)

	// IngestFile ingests a meeting-note file from disk
	IngestFile(ctx context.Context, path string) (*Result, error)

	// IngestReader ingests meeting-note content from a stream
	IngestReader(ctx context.Context, source string, r io.Reader, origin entities.DocumentOrigin) (*Result, error)

	// Preview extracts a record without persisting anything
	Preview(source, content string) (*extract.Record, error)
}

// Input carries one document into the ingestion pipeline
type Input struct {
	Content    string
	SourcePath string
	Origin     entities.DocumentOrigin

	// Set when the document came out of an audio transcription
	AudioURL     string
	TranscriptID string
}

// Result reports what ingestion did with the document
type Result struct {
	Meeting  *entities.Meeting  `json:"meeting"`
	Document *entities.Document `json:"document,omitempty"`
	Record   *extract.Record    `json:"record,omitempty"`

	Created   bool `json:"created"`
	Updated   bool `json:"updated"`
	Unchanged bool `json:"unchanged"`
}

type ingestService struct {
	meetingRepo repositories.MeetingRepository
	personRepo  repositories.PersonRepository
	docRepo     repositories.DocumentRepository
	store       *storage.MinIOClient
	cache       cache.Store
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewIngestService constructs the ingestion service. Object storage and
// cache are optional; pass nil to skip archiving and invalidation.
func NewIngestService(
	meetingRepo repositories.MeetingRepository,
	personRepo repositories.PersonRepository,
	docRepo repositories.DocumentRepository,
	store *storage.MinIOClient,
	cacheStore cache.Store,
	m *metrics.Metrics,
	logger *zap.Logger,
) Service {
	return &ingestService{
		meetingRepo: meetingRepo,
		personRepo:  personRepo,
		docRepo:     docRepo,
		store:       store,
		cache:       cacheStore,
		metrics:     m,
		logger:      logger,
	}
}

// IngestText ingests raw meeting-note content
func (s *ingestService) IngestText(ctx context.Context, input Input) (*Result, error) {
	if input.Origin == "" {
		input.Origin = entities.DocumentOriginAPI
	}
	doc, err := extract.Load(input.SourcePath, input.Content)
	if err != nil {
		return nil, mapLoadError(err)
	}
	return s.ingest(ctx, doc, input)
}

// IngestFile ingests a meeting-note file from disk
func (s *ingestService) IngestFile(ctx context.Context, path string) (*Result, error) {
	doc, err := extract.LoadFile(path)
	if err != nil {
		return nil, mapLoadError(err)
	}
	return s.ingest(ctx, doc, Input{SourcePath: path, Origin: entities.DocumentOriginFile})
}

// IngestReader ingests meeting-note content from a stream
func (s *ingestService) IngestReader(ctx context.Context, source string, r io.Reader, origin entities.DocumentOrigin) (*Result, error) {
	doc, err := extract.LoadReader(source, r)
	if err != nil {
		return nil, mapLoadError(err)
	}
	if origin == "" {
		origin = entities.DocumentOriginAPI
	}
	return s.ingest(ctx, doc, Input{SourcePath: source, Origin: origin})
}

// Preview extracts a record without persisting anything
func (s *ingestService) Preview(source, content string) (*extract.Record, error) {
	rec, err := extract.ExtractText(source, content)
	if err != nil {
		return nil, mapLoadError(err)
	}
	return rec, nil
}

// ingest runs the shared pipeline: extract, dedupe by source path and
// content hash, persist the meeting with its children, archive the raw
// document, invalidate derived caches.
func (s *ingestService) ingest(ctx context.Context, doc *extract.Document, input Input) (*Result, error) {
	start := time.Now()

	rec := extract.Extract(doc)
	hash := contentHash(doc.Content)

	existing, err := s.meetingRepo.FindBySourcePath(ctx, doc.Source)
	if err != nil && !errors.Is(err, entities.ErrMeetingNotFound) {
		return nil, fmt.Errorf("failed to look up source path: %w", err)
	}

	if existing != nil && existing.IsSameContent(hash) {
		if s.logger != nil {
			s.logger.Info("⏭️ Document unchanged, skipping",
				zap.String("source", doc.Source),
				zap.String("meeting_id", existing.ID.String()),
			)
		}
		return &Result{Meeting: existing, Record: rec, Unchanged: true}, nil
	}

	// Re-ingest keeps the meeting's identity stable.
	meetingID := uuid.New()
	var createdAt time.Time
	if existing != nil {
		meetingID = existing.ID
		createdAt = existing.CreatedAt
	}

	meeting, err := s.buildMeeting(ctx, rec, meetingID, doc.Source, hash)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		meeting.CreatedAt = createdAt
	}

	res := &Result{Meeting: meeting, Record: rec}
	if existing == nil {
		if err := s.meetingRepo.Create(ctx, meeting); err != nil {
			return nil, fmt.Errorf("failed to create meeting: %w", err)
		}
		res.Created = true
	} else {
		if err := s.meetingRepo.Replace(ctx, meeting); err != nil {
			return nil, fmt.Errorf("failed to replace meeting: %w", err)
		}
		res.Updated = true
	}

	res.Document = s.recordDocument(ctx, doc, meeting, hash, input)

	s.invalidateCaches(ctx)

	if s.metrics != nil {
		s.metrics.RecordIngest(string(input.Origin), time.Since(start).Seconds(), len(rec.Warnings))
	}

	if s.logger != nil {
		s.logger.Info("✅ Meeting ingested",
			zap.String("source", doc.Source),
			zap.String("meeting_id", meeting.ID.String()),
			zap.String("title", meeting.Title),
			zap.Bool("created", res.Created),
			zap.Int("attendees", len(meeting.Attendees)),
			zap.Int("topics", len(meeting.Topics)),
			zap.Int("action_items", len(meeting.ActionItems)),
			zap.Int("warnings", len(rec.Warnings)),
		)
	}

	return res, nil
}

// buildMeeting maps an extracted record onto the meeting entity tree.
// Attendees and action owners resolve through the shared people table.
func (s *ingestService) buildMeeting(ctx context.Context, rec *extract.Record, id uuid.UUID, sourcePath, hash string) (*entities.Meeting, error) {
	meeting := entities.NewMeeting(rec.Title, sourcePath, hash)
	meeting.ID = id
	if rec.MeetingType != "" {
		meeting.MeetingType = &rec.MeetingType
	}
	meeting.MeetingDate = rec.Date
	if rec.StartTime != "" {
		meeting.StartTime = &rec.StartTime
	}
	if rec.EndTime != "" {
		meeting.EndTime = &rec.EndTime
	}
	if d := rec.DurationMinutes(); d > 0 {
		meeting.DurationMin = &d
	}
	if rec.Location != "" {
		meeting.Location = &rec.Location
	}
	meeting.NextMeetingDate = rec.NextMeetingDate
	if rec.NextMeetingTime != "" {
		meeting.NextMeetingTime = &rec.NextMeetingTime
	}
	meeting.Agenda = asJSON(rec.Agenda)
	meeting.Warnings = asJSON(rec.Warnings)

	for i, a := range rec.Attendees {
		person, err := s.personRepo.FindOrCreate(ctx, a.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve attendee %q: %w", a.Name, err)
		}
		var email, role *string
		if a.Email != "" {
			e := a.Email
			email = &e
		}
		if a.Role != "" {
			r := a.Role
			role = &r
		}
		if person.EnrichFrom(email, role) {
			if err := s.personRepo.Update(ctx, person); err != nil && s.logger != nil {
				s.logger.Warn("⚠️ Failed to enrich person",
					zap.String("name", person.Name),
					zap.Error(err),
				)
			}
		}
		att := entities.NewMeetingAttendee(id, person.ID, a.Name, i)
		att.Email = email
		att.Role = role
		meeting.Attendees = append(meeting.Attendees, *att)
	}

	pos := 0
	for _, t := range rec.Discussion {
		meeting.Topics = append(meeting.Topics, buildTopic(id, entities.TopicKindDiscussion, t, pos))
		pos++
	}
	for _, t := range rec.Other {
		meeting.Topics = append(meeting.Topics, buildTopic(id, entities.TopicKindOther, t, pos))
		pos++
	}

	for i, a := range rec.Actions {
		item := entities.NewActionItem(id, a.Description, i)
		item.Priority = string(extract.NormalizePriority(a.Priority))
		if a.Priority != "" {
			tag := a.Priority
			item.PriorityTag = &tag
		}
		item.DueDate = a.DueDate
		if a.Owner != "" {
			owner := a.Owner
			item.Owner = &owner
			person, err := s.personRepo.FindOrCreate(ctx, a.Owner)
			if err != nil {
				// The verbatim owner still renders; only dedup is lost.
				if s.logger != nil {
					s.logger.Warn("⚠️ Failed to resolve action owner",
						zap.String("owner", a.Owner),
						zap.Error(err),
					)
				}
			} else {
				item.PersonID = &person.ID
			}
		}
		meeting.ActionItems = append(meeting.ActionItems, *item)
	}

	for i, text := range rec.Decisions {
		meeting.Decisions = append(meeting.Decisions, entities.Decision{
			ID:        uuid.New(),
			MeetingID: id,
			Text:      text,
			Position:  i,
		})
	}
	for i, text := range rec.Blockers {
		meeting.Blockers = append(meeting.Blockers, entities.Blocker{
			ID:        uuid.New(),
			MeetingID: id,
			Text:      text,
			Position:  i,
		})
	}

	return meeting, nil
}

// recordDocument archives the raw content and writes the document row.
// Failures here degrade to warnings; the meeting itself is already stored.
func (s *ingestService) recordDocument(ctx context.Context, doc *extract.Document, meeting *entities.Meeting, hash string, input Input) *entities.Document {
	docRec := entities.NewDocument(filepath.Base(doc.Source), hash, int64(len(doc.Content)), input.Origin)
	src := doc.Source
	docRec.SourcePath = &src
	docRec.MeetingID = &meeting.ID
	if input.AudioURL != "" {
		docRec.AudioURL = &input.AudioURL
	}
	if input.TranscriptID != "" {
		docRec.TranscriptID = &input.TranscriptID
	}

	if s.store != nil {
		key := fmt.Sprintf("documents/%s/%s", meeting.ID.String(), docRec.Filename)
		if err := s.store.UploadText(ctx, key, doc.Content); err != nil {
			if s.logger != nil {
				s.logger.Warn("⚠️ Failed to archive document",
					zap.String("key", key),
					zap.Error(err),
				)
			}
		} else {
			docRec.ArchiveKey = &key
		}
	}

	if err := s.docRepo.Create(ctx, docRec); err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Failed to record document", zap.Error(err))
		}
		return nil
	}
	return docRec
}

func (s *ingestService) invalidateCaches(ctx context.Context) {
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

func buildTopic(meetingID uuid.UUID, kind entities.TopicKind, t extract.DiscussionTopic, pos int) entities.Topic {
	return entities.Topic{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Kind:      kind,
		Heading:   t.Heading,
		Bullets:   asJSON(t.Bullets),
		Position:  pos,
	}
}

func mapLoadError(err error) error {
	switch {
	case errors.Is(err, extract.ErrEmptyDocument):
		return usecaseErrors.ErrEmptyDocument
	case errors.Is(err, extract.ErrUnreadable):
		return usecaseErrors.ErrUnreadableSource
	default:
		return fmt.Errorf("failed to load document: %w", err)
	}
}

func contentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// asJSON marshals for a jsonb column, normalizing nil slices to [].
func asJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}
