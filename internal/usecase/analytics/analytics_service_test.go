package analytics

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
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/pkg/ai"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

type fakeAnalyticsRepo struct {
	stats        *repositories.ActionStats
	people       []repositories.PersonActionCount
	topics       []repositories.TopicCount
	cadence      []repositories.TypeCount
	decisions    []repositories.MeetingDecisionCount
	topicPairs   []repositories.TopicPair
	decisionImpl []repositories.DecisionImplementation
	efficiency   *repositories.EfficiencyStats
	statsCalls   int
	sinceSeen    *time.Time
}

func (f *fakeAnalyticsRepo) ActionStats(ctx context.Context, since *time.Time) (*repositories.ActionStats, error) {
	f.statsCalls++
	f.sinceSeen = since
	if f.stats == nil {
		return &repositories.ActionStats{}, nil
	}
	return f.stats, nil
}

func (f *fakeAnalyticsRepo) ActionCountsByPerson(ctx context.Context, since *time.Time) ([]repositories.PersonActionCount, error) {
	return f.people, nil
}

func (f *fakeAnalyticsRepo) TopicFrequency(ctx context.Context, since *time.Time, limit int) ([]repositories.TopicCount, error) {
	return f.topics, nil
}

func (f *fakeAnalyticsRepo) AttendanceCounts(ctx context.Context, since *time.Time) ([]repositories.PersonMeetingCount, error) {
	return nil, nil
}

func (f *fakeAnalyticsRepo) CoAttendance(ctx context.Context, since *time.Time, minMeetings int) ([]repositories.PersonPair, error) {
	return nil, nil
}

func (f *fakeAnalyticsRepo) MeetingCadence(ctx context.Context, since *time.Time) ([]repositories.TypeCount, error) {
	return f.cadence, nil
}

func (f *fakeAnalyticsRepo) DecisionVolume(ctx context.Context, since *time.Time, limit int) ([]repositories.MeetingDecisionCount, error) {
	return f.decisions, nil
}

func (f *fakeAnalyticsRepo) TopicCooccurrence(ctx context.Context, since *time.Time, minMeetings int) ([]repositories.TopicPair, error) {
	return f.topicPairs, nil
}

func (f *fakeAnalyticsRepo) DecisionImplementation(ctx context.Context, since *time.Time, limit int) ([]repositories.DecisionImplementation, error) {
	return f.decisionImpl, nil
}

func (f *fakeAnalyticsRepo) Efficiency(ctx context.Context, since *time.Time) (*repositories.EfficiencyStats, error) {
	if f.efficiency == nil {
		return &repositories.EfficiencyStats{}, nil
	}
	return f.efficiency, nil
}

type fakeActionRepo struct {
	blockers []*entities.Blocker
	byPerson []*entities.ActionItem
}

func (f *fakeActionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	return nil, entities.ErrActionItemNotFound
}

func (f *fakeActionRepo) List(ctx context.Context, filters repositories.ActionFilters) ([]*entities.ActionItem, int64, error) {
	return nil, 0, nil
}

func (f *fakeActionRepo) ListPending(ctx context.Context) ([]*entities.ActionItem, error) {
	return nil, nil
}

func (f *fakeActionRepo) ListByPerson(ctx context.Context, name string, includeCompleted bool) ([]*entities.ActionItem, error) {
	return f.byPerson, nil
}

func (f *fakeActionRepo) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	return nil, nil
}

func (f *fakeActionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return nil
}

func (f *fakeActionRepo) MarkExported(ctx context.Context, id uuid.UUID, issueNumber int, issueURL string) error {
	return nil
}

func (f *fakeActionRepo) ListOpenBlockers(ctx context.Context) ([]*entities.Blocker, error) {
	return f.blockers, nil
}

func (f *fakeActionRepo) ResolveBlocker(ctx context.Context, id uuid.UUID) error { return nil }

func chatReply(t *testing.T, content string) string {
	t.Helper()
	b, err := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	})
	if err != nil {
		t.Fatalf("marshal chat reply: %v", err)
	}
	return string(b)
}

func TestOverview_CombinesAggregates(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		stats: &repositories.ActionStats{Total: 4, Pending: 2, Completed: 2},
		cadence: []repositories.TypeCount{
			{Type: "standup", Count: 3},
			{Type: "retro", Count: 1},
		},
		people: []repositories.PersonActionCount{
			{Person: "A"}, {Person: "B"}, {Person: "C"},
			{Person: "D"}, {Person: "E"}, {Person: "F"}, {Person: "G"},
		},
	}
	svc := NewAnalyticsService(repo, &fakeActionRepo{}, nil, nil, nil, nil, zap.NewNop())

	overview, err := svc.Overview(context.Background(), 30)
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}
	if overview.WindowDays != 30 {
		t.Errorf("WindowDays = %d, want 30", overview.WindowDays)
	}
	if overview.Meetings != 4 {
		t.Errorf("Meetings = %d, want 4 (sum of cadence)", overview.Meetings)
	}
	if overview.Actions.Total != 4 {
		t.Errorf("Actions.Total = %d, want 4", overview.Actions.Total)
	}
	if len(overview.TopPeople) != 5 {
		t.Errorf("len(TopPeople) = %d, want 5 (trimmed)", len(overview.TopPeople))
	}
}

func TestOverview_RejectsBadWindow(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsRepo{}, &fakeActionRepo{}, nil, nil, nil, nil, zap.NewNop())
	for _, days := range []int{-1, 99999} {
		if _, err := svc.Overview(context.Background(), days); !errors.Is(err, usecaseErrors.ErrInvalidWindow) {
			t.Errorf("Overview(%d) error = %v, want ErrInvalidWindow", days, err)
		}
	}
}

func TestOverview_SecondReadFromCache(t *testing.T) {
	store := cache.NewMemoryStore()
	defer store.Close()

	repo := &fakeAnalyticsRepo{stats: &repositories.ActionStats{Total: 1}}
	svc := NewAnalyticsService(repo, &fakeActionRepo{}, nil, nil, store, nil, zap.NewNop())

	for i := 0; i < 2; i++ {
		if _, err := svc.Overview(context.Background(), 7); err != nil {
			t.Fatalf("Overview() call %d error = %v", i+1, err)
		}
	}
	if repo.statsCalls != 1 {
		t.Errorf("repository calls = %d, want 1 (second read served from cache)", repo.statsCalls)
	}
}

func TestBottlenecks_FiltersByOpenLoad(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		people: []repositories.PersonActionCount{
			{Person: "Mike", Pending: 4, Total: 5},
			{Person: "Sarah", Pending: 2, InProgress: 1, Total: 3},
			{Person: "Lisa", Pending: 1, Total: 4},
		},
	}
	svc := NewAnalyticsService(repo, &fakeActionRepo{}, nil, nil, nil, nil, zap.NewNop())

	out, err := svc.Bottlenecks(context.Background(), 0, 3)
	if err != nil {
		t.Fatalf("Bottlenecks() error = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2 (Mike and Sarah)", len(out))
	}
	if out[0].Person != "Mike" || out[1].Person != "Sarah" {
		t.Errorf("people = %s, %s, want Mike, Sarah", out[0].Person, out[1].Person)
	}
}

func TestDecisionStatus_Passthrough(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		decisionImpl: []repositories.DecisionImplementation{
			{Decision: "Adopt PostgreSQL", Status: repositories.DecisionStatusImplemented},
			{Decision: "Hire two engineers", Status: repositories.DecisionStatusNoAction},
		},
	}
	svc := NewAnalyticsService(repo, &fakeActionRepo{}, nil, nil, nil, nil, zap.NewNop())

	out, err := svc.DecisionStatus(context.Background(), 30, 0)
	if err != nil {
		t.Fatalf("DecisionStatus() error = %v", err)
	}
	if len(out) != 2 || out[0].Status != "implemented" {
		t.Errorf("out = %+v, want two decisions with the first implemented", out)
	}
}

func TestEfficiency_RejectsBadWindow(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsRepo{}, &fakeActionRepo{}, nil, nil, nil, nil, zap.NewNop())
	if _, err := svc.Efficiency(context.Background(), -5); !errors.Is(err, usecaseErrors.ErrInvalidWindow) {
		t.Errorf("Efficiency(-5) error = %v, want ErrInvalidWindow", err)
	}
}

func TestProgressReport_RendersSections(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	repo := &fakeAnalyticsRepo{
		stats: &repositories.ActionStats{
			Total: 3, Pending: 1, Completed: 2,
			ByPriority: []repositories.PriorityCount{{Priority: "high", Count: 1}},
		},
		people:    []repositories.PersonActionCount{{Person: "Sarah Chen", Pending: 1, Completed: 2, Total: 3}},
		topics:    []repositories.TopicCount{{Heading: "Velocity review", Count: 2}},
		decisions: []repositories.MeetingDecisionCount{{Title: "Sprint Planning", Decisions: 1}},
	}
	item := entities.NewActionItem(uuid.New(), "Update the roadmap", 0)
	actions := &fakeActionRepo{
		blockers: []*entities.Blocker{{ID: uuid.New(), Text: "Waiting on security review"}},
		byPerson: []*entities.ActionItem{item},
	}
	svc := NewAnalyticsService(repo, actions, nil, nil, nil, nil, zap.NewNop())

	report, err := svc.ProgressReport(context.Background(), ReportInput{Person: "Sarah Chen"})
	if err != nil {
		t.Fatalf("ProgressReport() error = %v", err)
	}
	if report.WindowDays != 7 {
		t.Errorf("WindowDays = %d, want default 7", report.WindowDays)
	}
	if report.ArchiveKey != "" {
		t.Errorf("ArchiveKey = %q, want empty without object storage", report.ArchiveKey)
	}

	md := report.Markdown
	for _, want := range []string{
		"# Progress report",
		"Completion rate: 67%",
		"high priority: 1",
		"Sarah Chen: 1 open, 2 done",
		"Velocity review (2 meetings)",
		"Sprint Planning: 1 decisions",
		"Waiting on security review",
		"## Focus: Sarah Chen",
		"[pending] Update the roadmap",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "## Highlights") {
		t.Error("Markdown has a highlights section without a configured model")
	}
}

func TestProgressReport_WindowSetsCutoff(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsService(repo, &fakeActionRepo{}, nil, nil, nil, nil, zap.NewNop())

	if _, err := svc.ProgressReport(context.Background(), ReportInput{Days: 14}); err != nil {
		t.Fatalf("ProgressReport() error = %v", err)
	}
	if repo.sinceSeen == nil {
		t.Fatal("since = nil, want a 14 day cutoff")
	}
	want := time.Now().AddDate(0, 0, -14)
	if diff := repo.sinceSeen.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Errorf("since = %v, want about %v", repo.sinceSeen, want)
	}
}

func TestProgressReport_AddsHighlights(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply(t, "The team closed two of three items.")))
	}))
	defer srv.Close()

	groq := ai.NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: srv.URL})
	repo := &fakeAnalyticsRepo{stats: &repositories.ActionStats{Total: 3, Completed: 2}}
	svc := NewAnalyticsService(repo, &fakeActionRepo{}, groq, nil, nil, nil, zap.NewNop())

	report, err := svc.ProgressReport(context.Background(), ReportInput{})
	if err != nil {
		t.Fatalf("ProgressReport() error = %v", err)
	}
	if !strings.HasPrefix(report.Markdown, "## Highlights\n\nThe team closed two of three items.") {
		t.Errorf("Markdown = %q, want highlights first", report.Markdown)
	}
}
