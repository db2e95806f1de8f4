package export

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/external/github"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

type fakeActionRepo struct {
	items   map[uuid.UUID]*entities.ActionItem
	pending []*entities.ActionItem
	marked  map[uuid.UUID]string
}

func newFakeActionRepo() *fakeActionRepo {
	return &fakeActionRepo{
		items:  make(map[uuid.UUID]*entities.ActionItem),
		marked: make(map[uuid.UUID]string),
	}
}

func (f *fakeActionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, entities.ErrActionItemNotFound
	}
	return item, nil
}

func (f *fakeActionRepo) List(ctx context.Context, filters repositories.ActionFilters) ([]*entities.ActionItem, int64, error) {
	return nil, 0, nil
}

func (f *fakeActionRepo) ListPending(ctx context.Context) ([]*entities.ActionItem, error) {
	return f.pending, nil
}

func (f *fakeActionRepo) ListByPerson(ctx context.Context, name string, includeCompleted bool) ([]*entities.ActionItem, error) {
	return nil, nil
}

func (f *fakeActionRepo) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	return nil, nil
}

func (f *fakeActionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return nil
}

func (f *fakeActionRepo) MarkExported(ctx context.Context, id uuid.UUID, issueNumber int, issueURL string) error {
	f.marked[id] = issueURL
	return nil
}

func (f *fakeActionRepo) ListOpenBlockers(ctx context.Context) ([]*entities.Blocker, error) {
	return nil, nil
}

func (f *fakeActionRepo) ResolveBlocker(ctx context.Context, id uuid.UUID) error { return nil }

type fakeMeetingRepo struct {
	meetings map[uuid.UUID]*entities.Meeting
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: make(map[uuid.UUID]*entities.Meeting)}
}

func (f *fakeMeetingRepo) Create(ctx context.Context, m *entities.Meeting) error  { return nil }
func (f *fakeMeetingRepo) Replace(ctx context.Context, m *entities.Meeting) error { return nil }
func (f *fakeMeetingRepo) Delete(ctx context.Context, id uuid.UUID) error         { return nil }

func (f *fakeMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	m, ok := f.meetings[id]
	if !ok {
		return nil, entities.ErrMeetingNotFound
	}
	return m, nil
}

func (f *fakeMeetingRepo) FindBySourcePath(ctx context.Context, sourcePath string) (*entities.Meeting, error) {
	return nil, entities.ErrMeetingNotFound
}

func (f *fakeMeetingRepo) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	return nil, 0, nil
}

func (f *fakeMeetingRepo) FindByTopicHeading(ctx context.Context, heading string, limit int) ([]*entities.Meeting, error) {
	return nil, nil
}

func (f *fakeMeetingRepo) Search(ctx context.Context, query string, limit int) ([]*entities.Meeting, error) {
	return nil, nil
}

func newTestGitHub(t *testing.T, handler http.Handler) *github.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := github.NewClient(&config.GitHubConfig{Token: "test-token", Owner: "acme", Repo: "tracker"})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if err := client.SetBaseURL(ts.URL); err != nil {
		t.Fatalf("failed to set base URL: %v", err)
	}
	return client
}

func issueCreated(w http.ResponseWriter, number int) {
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"number":   number,
		"html_url": "https://github.com/acme/tracker/issues/7",
	})
}

func TestExportMeeting_CreatesIssues(t *testing.T) {
	var body struct {
		Title  string   `json:"title"`
		Body   string   `json:"body"`
		Labels []string `json:"labels"`
	}
	posts := 0
	gh := newTestGitHub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/acme/tracker/issues" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		posts++
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		issueCreated(w, 7)
	}))

	open := entities.NewActionItem(uuid.New(), "Fix the login bug", 0)
	open.Priority = entities.ActionItemPriorityHigh
	done := entities.NewActionItem(uuid.New(), "Old task", 1)
	done.Status = entities.ActionItemStatusCompleted

	meeting := entities.NewMeeting("Sprint Planning", "notes/sprint.txt", "hash")
	meeting.ActionItems = []entities.ActionItem{*open, *done}

	meetings := newFakeMeetingRepo()
	meetings.meetings[meeting.ID] = meeting
	actions := newFakeActionRepo()

	svc := NewExportService(actions, meetings, gh, nil, zap.NewNop())

	result, err := svc.ExportMeeting(context.Background(), meeting.ID)
	if err != nil {
		t.Fatalf("ExportMeeting() error = %v", err)
	}
	if len(result.Exported) != 1 || result.Skipped != 1 || result.Failed != 0 {
		t.Errorf("result = %+v, want 1 exported and 1 skipped", result)
	}
	if posts != 1 {
		t.Errorf("issue posts = %d, want 1", posts)
	}
	if result.Exported[0].IssueNumber != 7 {
		t.Errorf("IssueNumber = %d, want 7", result.Exported[0].IssueNumber)
	}
	if _, ok := actions.marked[open.ID]; !ok {
		t.Error("exported item was not marked in the repository")
	}

	if body.Title != "Action Item: Fix the login bug" {
		t.Errorf("issue title = %q", body.Title)
	}
	for _, want := range []string{
		"**Description:** Fix the login bug",
		"**Assignee:** Unassigned",
		"**Priority:** high",
		"**Meeting:** Sprint Planning",
		"Created automatically from meeting notes.",
	} {
		if !strings.Contains(body.Body, want) {
			t.Errorf("issue body missing %q:\n%s", want, body.Body)
		}
	}
	if len(body.Labels) != 2 || body.Labels[1] != "priority:high" {
		t.Errorf("labels = %v", body.Labels)
	}
}

func TestExportMeeting_NothingEligible(t *testing.T) {
	gh := newTestGitHub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no issue should be created")
	}))

	item := entities.NewActionItem(uuid.New(), "Already tracked", 0)
	item.MarkExported(3, "https://github.com/acme/tracker/issues/3")

	meeting := entities.NewMeeting("Retro", "notes/retro.txt", "hash")
	meeting.ActionItems = []entities.ActionItem{*item}

	meetings := newFakeMeetingRepo()
	meetings.meetings[meeting.ID] = meeting

	svc := NewExportService(newFakeActionRepo(), meetings, gh, nil, zap.NewNop())

	if _, err := svc.ExportMeeting(context.Background(), meeting.ID); !errors.Is(err, usecaseErrors.ErrNothingToExport) {
		t.Errorf("ExportMeeting() error = %v, want ErrNothingToExport", err)
	}
}

func TestExportPending_NotConfigured(t *testing.T) {
	svc := NewExportService(newFakeActionRepo(), newFakeMeetingRepo(), nil, nil, zap.NewNop())
	if _, err := svc.ExportPending(context.Background()); !errors.Is(err, usecaseErrors.ErrExportNotConfigured) {
		t.Errorf("ExportPending() error = %v, want ErrExportNotConfigured", err)
	}
}

func TestExportPending_PartialFailure(t *testing.T) {
	posts := 0
	gh := newTestGitHub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts++
		if posts == 1 {
			issueCreated(w, 7)
			return
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "Validation Failed"})
	}))

	actions := newFakeActionRepo()
	actions.pending = []*entities.ActionItem{
		entities.NewActionItem(uuid.New(), "First", 0),
		entities.NewActionItem(uuid.New(), "Second", 1),
	}

	svc := NewExportService(actions, newFakeMeetingRepo(), gh, nil, zap.NewNop())

	result, err := svc.ExportPending(context.Background())
	if err == nil {
		t.Fatal("ExportPending() error = nil, want partial failure error")
	}
	if result == nil || len(result.Exported) != 1 || result.Failed != 1 {
		t.Errorf("result = %+v, want 1 exported and 1 failed", result)
	}
}

func TestExportAction_AlreadyExported(t *testing.T) {
	gh := newTestGitHub(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no issue should be created")
	}))

	item := entities.NewActionItem(uuid.New(), "Tracked already", 0)
	item.MarkExported(3, "https://github.com/acme/tracker/issues/3")
	actions := newFakeActionRepo()
	actions.items[item.ID] = item

	svc := NewExportService(actions, newFakeMeetingRepo(), gh, nil, zap.NewNop())

	if _, err := svc.ExportAction(context.Background(), item.ID); !errors.Is(err, usecaseErrors.ErrAlreadyExported) {
		t.Errorf("ExportAction() error = %v, want ErrAlreadyExported", err)
	}
}

func TestBuildIssue_TruncatesLongTitles(t *testing.T) {
	desc := strings.Repeat("a", 60)
	item := entities.NewActionItem(uuid.New(), desc, 0)

	in := buildIssue(item, "")
	want := "Action Item: " + strings.Repeat("a", 50) + "..."
	if in.Title != want {
		t.Errorf("Title = %q, want %q", in.Title, want)
	}
}

func TestBuildIssue_OwnerAndDue(t *testing.T) {
	owner := "Sarah Chen"
	due := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	item := entities.NewActionItem(uuid.New(), "Update the roadmap", 0)
	item.Owner = &owner
	item.DueDate = &due

	in := buildIssue(item, "Sprint Planning")
	if !strings.Contains(in.Body, "**Assignee:** Sarah Chen") {
		t.Errorf("body missing assignee:\n%s", in.Body)
	}
	if !strings.Contains(in.Body, "**Due:** 2024-03-05") {
		t.Errorf("body missing due date:\n%s", in.Body)
	}
	if in.Assignee != "" {
		t.Errorf("Assignee = %q, spaced names are not GitHub logins", in.Assignee)
	}
}
