package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
)

type fakeMeetingRepo struct {
	bySource     map[string]*entities.Meeting
	createCalls  int
	replaceCalls int
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{bySource: make(map[string]*entities.Meeting)}
}

func (f *fakeMeetingRepo) Create(ctx context.Context, m *entities.Meeting) error {
	f.createCalls++
	f.bySource[m.SourcePath] = m
	return nil
}

func (f *fakeMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	for _, m := range f.bySource {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, entities.ErrMeetingNotFound
}

func (f *fakeMeetingRepo) FindBySourcePath(ctx context.Context, sourcePath string) (*entities.Meeting, error) {
	if m, ok := f.bySource[sourcePath]; ok {
		return m, nil
	}
	return nil, entities.ErrMeetingNotFound
}

func (f *fakeMeetingRepo) Replace(ctx context.Context, m *entities.Meeting) error {
	f.replaceCalls++
	f.bySource[m.SourcePath] = m
	return nil
}

func (f *fakeMeetingRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeMeetingRepo) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	return nil, 0, nil
}

func (f *fakeMeetingRepo) FindByTopicHeading(ctx context.Context, heading string, limit int) ([]*entities.Meeting, error) {
	return nil, nil
}

func (f *fakeMeetingRepo) Search(ctx context.Context, query string, limit int) ([]*entities.Meeting, error) {
	return nil, nil
}

type fakePersonRepo struct {
	byNormalized map[string]*entities.Person
}

func newFakePersonRepo() *fakePersonRepo {
	return &fakePersonRepo{byNormalized: make(map[string]*entities.Person)}
}

func (f *fakePersonRepo) FindOrCreate(ctx context.Context, name string) (*entities.Person, error) {
	key := entities.NormalizePersonName(name)
	if p, ok := f.byNormalized[key]; ok {
		return p, nil
	}
	p := entities.NewPerson(name)
	f.byNormalized[key] = p
	return p, nil
}

func (f *fakePersonRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Person, error) {
	for _, p := range f.byNormalized {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, entities.ErrPersonNotFound
}

func (f *fakePersonRepo) FindByName(ctx context.Context, name string) (*entities.Person, error) {
	if p, ok := f.byNormalized[entities.NormalizePersonName(name)]; ok {
		return p, nil
	}
	return nil, entities.ErrPersonNotFound
}

func (f *fakePersonRepo) Update(ctx context.Context, person *entities.Person) error { return nil }

func (f *fakePersonRepo) List(ctx context.Context, limit, offset int) ([]*entities.Person, int64, error) {
	return nil, 0, nil
}

type fakeDocRepo struct {
	docs []*entities.Document
}

func (f *fakeDocRepo) Create(ctx context.Context, doc *entities.Document) error {
	f.docs = append(f.docs, doc)
	return nil
}

func (f *fakeDocRepo) Update(ctx context.Context, doc *entities.Document) error { return nil }

func (f *fakeDocRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Document, error) {
	return nil, entities.ErrDocumentNotFound
}

func (f *fakeDocRepo) FindBySourcePath(ctx context.Context, sourcePath string) (*entities.Document, error) {
	return nil, entities.ErrDocumentNotFound
}

func (f *fakeDocRepo) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.Document, error) {
	return nil, entities.ErrDocumentNotFound
}

func (f *fakeDocRepo) List(ctx context.Context, limit, offset int) ([]*entities.Document, int64, error) {
	return nil, 0, nil
}

func newTestService() (Service, *fakeMeetingRepo, *fakePersonRepo, *fakeDocRepo) {
	meetings := newFakeMeetingRepo()
	people := newFakePersonRepo()
	docs := &fakeDocRepo{}
	svc := NewIngestService(meetings, people, docs, nil, nil, nil, zap.NewNop())
	return svc, meetings, people, docs
}

const sampleNotes = `Sprint Planning Meeting
Date: March 3, 2024
Time: 10:00 AM - 11:00 AM
Attendees: Sarah Chen - Engineering Lead, Mike Torres, Lisa Park

Agenda:
1. Review sprint goals
2. Assign tasks

Discussion:
Velocity review
- Last sprint closed 34 points

Action Items:
- Sarah Chen to update the roadmap (HIGH PRIORITY)
- Mike to fix the login bug, Due: March 5, 2024
- Review all dashboards

Decisions:
- Decision: Adopt trunk-based development

Blockers:
- Waiting on security review for the API gateway
`

func TestIngestText_CreatesMeeting(t *testing.T) {
	svc, meetings, people, docs := newTestService()

	res, err := svc.IngestText(context.Background(), Input{
		Content:    sampleNotes,
		SourcePath: "notes/sprint_planning_2024_03_03.txt",
	})
	if err != nil {
		t.Fatalf("IngestText: %v", err)
	}
	if !res.Created || res.Updated || res.Unchanged {
		t.Fatalf("flags = created:%v updated:%v unchanged:%v, want created only", res.Created, res.Updated, res.Unchanged)
	}
	if meetings.createCalls != 1 {
		t.Fatalf("createCalls = %d, want 1", meetings.createCalls)
	}

	m := res.Meeting
	if m.Title != "Sprint Planning Meeting" {
		t.Errorf("Title = %q", m.Title)
	}
	if m.MeetingType == nil || *m.MeetingType != "sprint_planning" {
		t.Errorf("MeetingType = %v, want sprint_planning", m.MeetingType)
	}
	if m.MeetingDate == nil || m.MeetingDate.Format("2006-01-02") != "2024-03-03" {
		t.Errorf("MeetingDate = %v", m.MeetingDate)
	}
	if m.DurationMin == nil || *m.DurationMin != 60 {
		t.Errorf("DurationMin = %v, want 60", m.DurationMin)
	}

	if len(m.Attendees) != 3 {
		t.Fatalf("attendees = %d, want 3", len(m.Attendees))
	}
	if m.Attendees[0].RawName != "Sarah Chen" || m.Attendees[0].Position != 0 {
		t.Errorf("first attendee = %+v", m.Attendees[0])
	}
	if m.Attendees[0].Role == nil || *m.Attendees[0].Role != "Engineering Lead" {
		t.Errorf("first attendee role = %v", m.Attendees[0].Role)
	}

	if len(m.ActionItems) != 3 {
		t.Fatalf("action items = %d, want 3", len(m.ActionItems))
	}
	first := m.ActionItems[0]
	if first.Owner == nil || *first.Owner != "Sarah Chen" {
		t.Errorf("first action owner = %v", first.Owner)
	}
	if first.Priority != entities.ActionItemPriorityHigh {
		t.Errorf("first action priority = %q, want high", first.Priority)
	}
	if first.PriorityTag == nil || *first.PriorityTag != "HIGH PRIORITY" {
		t.Errorf("first action priority tag = %v", first.PriorityTag)
	}
	second := m.ActionItems[1]
	if second.DueDate == nil || second.DueDate.Format("2006-01-02") != "2024-03-05" {
		t.Errorf("second action due date = %v", second.DueDate)
	}
	third := m.ActionItems[2]
	if third.Owner != nil {
		t.Errorf("third action owner = %v, want nil", third.Owner)
	}
	if third.Priority != entities.ActionItemPriorityMedium {
		t.Errorf("third action priority = %q, want medium default", third.Priority)
	}

	// The attendee and the action owner are the same person.
	sarah, err := people.FindByName(context.Background(), "sarah chen")
	if err != nil {
		t.Fatalf("person not created: %v", err)
	}
	if first.PersonID == nil || *first.PersonID != sarah.ID {
		t.Errorf("action owner not linked to attendee person")
	}
	if m.Attendees[0].PersonID != sarah.ID {
		t.Errorf("attendee not linked to person")
	}

	if len(m.Decisions) != 1 || m.Decisions[0].Text != "Adopt trunk-based development" {
		t.Errorf("decisions = %+v", m.Decisions)
	}
	if len(m.Blockers) != 1 {
		t.Errorf("blockers = %d, want 1", len(m.Blockers))
	}

	if len(docs.docs) != 1 {
		t.Fatalf("documents recorded = %d, want 1", len(docs.docs))
	}
	doc := docs.docs[0]
	if doc.Origin != entities.DocumentOriginAPI {
		t.Errorf("document origin = %q", doc.Origin)
	}
	if doc.MeetingID == nil || *doc.MeetingID != m.ID {
		t.Errorf("document not linked to meeting")
	}
}

func TestIngestText_UnchangedContentSkips(t *testing.T) {
	svc, meetings, _, _ := newTestService()

	input := Input{Content: sampleNotes, SourcePath: "notes/standup_2024_03_04.txt"}
	if _, err := svc.IngestText(context.Background(), input); err != nil {
		t.Fatalf("first ingest: %v", err)
	}

	res, err := svc.IngestText(context.Background(), input)
	if err != nil {
		t.Fatalf("second ingest: %v", err)
	}
	if !res.Unchanged {
		t.Fatal("second ingest of identical content should report unchanged")
	}
	if meetings.replaceCalls != 0 {
		t.Fatalf("replaceCalls = %d, want 0", meetings.replaceCalls)
	}
}

func TestIngestText_ChangedContentReplaces(t *testing.T) {
	svc, meetings, _, _ := newTestService()

	input := Input{Content: sampleNotes, SourcePath: "notes/retro_2024_03_07.txt"}
	first, err := svc.IngestText(context.Background(), input)
	if err != nil {
		t.Fatalf("first ingest: %v", err)
	}

	input.Content = strings.Replace(sampleNotes, "34 points", "38 points", 1)
	second, err := svc.IngestText(context.Background(), input)
	if err != nil {
		t.Fatalf("second ingest: %v", err)
	}
	if !second.Updated {
		t.Fatal("changed content should report updated")
	}
	if second.Meeting.ID != first.Meeting.ID {
		t.Fatalf("meeting identity changed on re-ingest: %s != %s", second.Meeting.ID, first.Meeting.ID)
	}
	if meetings.replaceCalls != 1 {
		t.Fatalf("replaceCalls = %d, want 1", meetings.replaceCalls)
	}
}

func TestIngestText_EmptyDocument(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.IngestText(context.Background(), Input{Content: "   \n\t  ", SourcePath: "notes/empty.txt"})
	if !errors.Is(err, usecaseErrors.ErrEmptyDocument) {
		t.Fatalf("err = %v, want ErrEmptyDocument", err)
	}
}

func TestPreview_DoesNotPersist(t *testing.T) {
	svc, meetings, _, docs := newTestService()

	rec, err := svc.Preview("standup_2024_03_04.txt", sampleNotes)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if rec.Title != "Sprint Planning Meeting" {
		t.Errorf("Title = %q", rec.Title)
	}
	if meetings.createCalls != 0 || len(docs.docs) != 0 {
		t.Fatal("preview must not write anything")
	}
}

func TestIngestFile_MissingFile(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.IngestFile(context.Background(), "/nonexistent/standup_2024_01_01.txt")
	if !errors.Is(err, usecaseErrors.ErrUnreadableSource) {
		t.Fatalf("err = %v, want ErrUnreadableSource", err)
	}
}
