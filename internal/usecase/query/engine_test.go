package query

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
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/pkg/ai"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

type stubMeetingRepo struct {
	meetings []*entities.Meeting
	byTopic  map[string][]*entities.Meeting
}

func (s *stubMeetingRepo) Create(ctx context.Context, m *entities.Meeting) error  { return nil }
func (s *stubMeetingRepo) Replace(ctx context.Context, m *entities.Meeting) error { return nil }
func (s *stubMeetingRepo) Delete(ctx context.Context, id uuid.UUID) error         { return nil }

func (s *stubMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return nil, entities.ErrMeetingNotFound
}

func (s *stubMeetingRepo) FindBySourcePath(ctx context.Context, sourcePath string) (*entities.Meeting, error) {
	return nil, entities.ErrMeetingNotFound
}

func (s *stubMeetingRepo) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	out := s.meetings
	if filters.Limit > 0 && len(out) > filters.Limit {
		out = out[:filters.Limit]
	}
	return out, int64(len(s.meetings)), nil
}

func (s *stubMeetingRepo) FindByTopicHeading(ctx context.Context, heading string, limit int) ([]*entities.Meeting, error) {
	return s.byTopic[strings.ToLower(heading)], nil
}

func (s *stubMeetingRepo) Search(ctx context.Context, query string, limit int) ([]*entities.Meeting, error) {
	return s.meetings, nil
}

type stubActionRepo struct {
	pending []*entities.ActionItem
}

func (s *stubActionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.ActionItem, error) {
	return nil, entities.ErrActionItemNotFound
}

func (s *stubActionRepo) List(ctx context.Context, filters repositories.ActionFilters) ([]*entities.ActionItem, int64, error) {
	return s.pending, int64(len(s.pending)), nil
}

func (s *stubActionRepo) ListPending(ctx context.Context) ([]*entities.ActionItem, error) {
	return s.pending, nil
}

func (s *stubActionRepo) ListByPerson(ctx context.Context, name string, includeCompleted bool) ([]*entities.ActionItem, error) {
	return nil, nil
}

func (s *stubActionRepo) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.ActionItem, error) {
	return nil, nil
}

func (s *stubActionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return nil
}

func (s *stubActionRepo) MarkExported(ctx context.Context, id uuid.UUID, issueNumber int, issueURL string) error {
	return nil
}

func (s *stubActionRepo) ListOpenBlockers(ctx context.Context) ([]*entities.Blocker, error) {
	return nil, nil
}

func (s *stubActionRepo) ResolveBlocker(ctx context.Context, id uuid.UUID) error { return nil }

type stubPersonRepo struct{}

func (s *stubPersonRepo) FindOrCreate(ctx context.Context, name string) (*entities.Person, error) {
	return entities.NewPerson(name), nil
}

func (s *stubPersonRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Person, error) {
	return nil, entities.ErrPersonNotFound
}

func (s *stubPersonRepo) FindByName(ctx context.Context, name string) (*entities.Person, error) {
	return nil, entities.ErrPersonNotFound
}

func (s *stubPersonRepo) Update(ctx context.Context, person *entities.Person) error { return nil }

func (s *stubPersonRepo) List(ctx context.Context, limit, offset int) ([]*entities.Person, int64, error) {
	return nil, 0, nil
}

type stubDocRepo struct{}

func (s *stubDocRepo) Create(ctx context.Context, doc *entities.Document) error { return nil }
func (s *stubDocRepo) Update(ctx context.Context, doc *entities.Document) error { return nil }

func (s *stubDocRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Document, error) {
	return nil, entities.ErrDocumentNotFound
}

func (s *stubDocRepo) FindBySourcePath(ctx context.Context, sourcePath string) (*entities.Document, error) {
	return nil, entities.ErrDocumentNotFound
}

func (s *stubDocRepo) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.Document, error) {
	return nil, entities.ErrDocumentNotFound
}

func (s *stubDocRepo) List(ctx context.Context, limit, offset int) ([]*entities.Document, int64, error) {
	return nil, 0, nil
}

type stubAnalyticsRepo struct{}

func (s *stubAnalyticsRepo) ActionStats(ctx context.Context, since *time.Time) (*repositories.ActionStats, error) {
	return &repositories.ActionStats{}, nil
}

func (s *stubAnalyticsRepo) ActionCountsByPerson(ctx context.Context, since *time.Time) ([]repositories.PersonActionCount, error) {
	return nil, nil
}

func (s *stubAnalyticsRepo) TopicFrequency(ctx context.Context, since *time.Time, limit int) ([]repositories.TopicCount, error) {
	return nil, nil
}

func (s *stubAnalyticsRepo) AttendanceCounts(ctx context.Context, since *time.Time) ([]repositories.PersonMeetingCount, error) {
	return nil, nil
}

func (s *stubAnalyticsRepo) CoAttendance(ctx context.Context, since *time.Time, minMeetings int) ([]repositories.PersonPair, error) {
	return nil, nil
}

func (s *stubAnalyticsRepo) MeetingCadence(ctx context.Context, since *time.Time) ([]repositories.TypeCount, error) {
	return nil, nil
}

func (s *stubAnalyticsRepo) DecisionVolume(ctx context.Context, since *time.Time, limit int) ([]repositories.MeetingDecisionCount, error) {
	return nil, nil
}

func (s *stubAnalyticsRepo) TopicCooccurrence(ctx context.Context, since *time.Time, minMeetings int) ([]repositories.TopicPair, error) {
	return nil, nil
}

func (s *stubAnalyticsRepo) DecisionImplementation(ctx context.Context, since *time.Time, limit int) ([]repositories.DecisionImplementation, error) {
	return nil, nil
}

func (s *stubAnalyticsRepo) Efficiency(ctx context.Context, since *time.Time) (*repositories.EfficiencyStats, error) {
	return &repositories.EfficiencyStats{}, nil
}

// chatReply wraps content in the chat completion response shape
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

func newTestEngine(baseURL string, meetings *stubMeetingRepo, actions *stubActionRepo) *Engine {
	groq := ai.NewGroqClient(&config.GroqConfig{APIKey: "test-key", BaseURL: baseURL})
	queries := NewQueryService(meetings, actions, &stubPersonRepo{}, &stubDocRepo{}, nil, nil, zap.NewNop())
	return NewEngine(groq, queries, &stubAnalyticsRepo{}, nil, zap.NewNop())
}

func testMeeting(title string, date time.Time) *entities.Meeting {
	m := entities.NewMeeting(title, "notes/"+strings.ToLower(title)+".txt", "hash")
	m.MeetingDate = &date
	return m
}

func TestAsk_AnswersFromPlan(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		switch requests {
		case 1:
			w.Write([]byte(chatReply(t, `{"query": "pending_actions"}`)))
		default:
			w.Write([]byte(chatReply(t, "Two items are open.")))
		}
	}))
	defer srv.Close()

	actions := &stubActionRepo{pending: []*entities.ActionItem{
		entities.NewActionItem(uuid.New(), "Update the roadmap", 0),
		entities.NewActionItem(uuid.New(), "Fix the login bug", 1),
	}}
	engine := newTestEngine(srv.URL, &stubMeetingRepo{}, actions)

	ans, err := engine.Ask(context.Background(), "what is still open?")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if ans.Query != "pending_actions" {
		t.Errorf("Query = %q, want pending_actions", ans.Query)
	}
	if ans.Answer != "Two items are open." {
		t.Errorf("Answer = %q", ans.Answer)
	}
	if ans.Fallback {
		t.Error("Fallback = true, want false")
	}
	data, ok := ans.Data.([]*entities.ActionItem)
	if !ok {
		t.Fatalf("Data type = %T, want []*entities.ActionItem", ans.Data)
	}
	if len(data) != 2 {
		t.Errorf("len(Data) = %d, want 2", len(data))
	}
	if requests != 2 {
		t.Errorf("model requests = %d, want 2 (plan + answer)", requests)
	}
}

func TestAsk_UnconfiguredUsesFallback(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	meetings := &stubMeetingRepo{meetings: []*entities.Meeting{
		testMeeting("Sprint Planning", time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)),
		testMeeting("Retro", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
	}}
	groq := ai.NewGroqClient(&config.GroqConfig{})
	queries := NewQueryService(meetings, &stubActionRepo{}, &stubPersonRepo{}, &stubDocRepo{}, nil, nil, zap.NewNop())
	engine := NewEngine(groq, queries, &stubAnalyticsRepo{}, nil, zap.NewNop())

	ans, err := engine.Ask(context.Background(), "what happened recently?")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if !ans.Fallback {
		t.Error("Fallback = false, want true")
	}
	if !strings.Contains(ans.Answer, "Sprint Planning") {
		t.Errorf("Answer = %q, want recent meeting titles", ans.Answer)
	}
	if !strings.Contains(ans.Answer, "2024-03-03") {
		t.Errorf("Answer = %q, want meeting dates", ans.Answer)
	}
}

func TestAsk_GarbagePlanFallsBack(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(chatReply(t, "the answer is obviously everything")))
	}))
	defer srv.Close()

	engine := newTestEngine(srv.URL, &stubMeetingRepo{}, &stubActionRepo{})

	ans, err := engine.Ask(context.Background(), "???")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if !ans.Fallback {
		t.Error("Fallback = false, want true")
	}
	if !strings.Contains(ans.Answer, "no meetings yet") {
		t.Errorf("Answer = %q", ans.Answer)
	}
	if requests != 1 {
		t.Errorf("model requests = %d, want 1 (no answer call after bad plan)", requests)
	}
}

func TestAsk_UnknownTopicGetsGracefulAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply(t, `{"query": "meetings_about", "topic": "kubernetes"}`)))
	}))
	defer srv.Close()

	engine := newTestEngine(srv.URL, &stubMeetingRepo{byTopic: map[string][]*entities.Meeting{}}, &stubActionRepo{})

	ans, err := engine.Ask(context.Background(), "when did we discuss kubernetes?")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if ans.Fallback {
		t.Error("Fallback = true, want false")
	}
	if !strings.Contains(ans.Answer, "kubernetes") {
		t.Errorf("Answer = %q, want the topic named", ans.Answer)
	}
}

func TestAsk_AnswerModelFailureDegrades(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			w.Write([]byte(chatReply(t, `{"query": "pending_actions"}`)))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	actions := &stubActionRepo{pending: []*entities.ActionItem{
		entities.NewActionItem(uuid.New(), "Update the roadmap", 0),
	}}
	engine := newTestEngine(srv.URL, &stubMeetingRepo{}, actions)

	ans, err := engine.Ask(context.Background(), "what is still open?")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if !ans.Fallback {
		t.Error("Fallback = false, want true")
	}
	if !strings.Contains(ans.Answer, "1 records") {
		t.Errorf("Answer = %q, want deterministic count summary", ans.Answer)
	}
	if ans.Data == nil {
		t.Error("Data = nil, want raw results attached")
	}
}

func TestAsk_EmptyQuestion(t *testing.T) {
	engine := newTestEngine("http://unused", &stubMeetingRepo{}, &stubActionRepo{})
	if _, err := engine.Ask(context.Background(), "  "); !errors.Is(err, usecaseErrors.ErrInvalidInput) {
		t.Errorf("Ask(empty) error = %v, want ErrInvalidInput", err)
	}
}

func TestValidatePlan(t *testing.T) {
	tests := []struct {
		name    string
		plan    queryPlan
		wantErr error
	}{
		{"unknown query", queryPlan{Query: "drop_tables"}, usecaseErrors.ErrPlanRejected},
		{"person required", queryPlan{Query: "actions_for_person"}, usecaseErrors.ErrPlanRejected},
		{"topic required", queryPlan{Query: "meetings_about"}, usecaseErrors.ErrPlanRejected},
		{"search required", queryPlan{Query: "search_meetings"}, usecaseErrors.ErrPlanRejected},
		{"negative window", queryPlan{Query: "pending_actions", TimeRangeDays: -1}, usecaseErrors.ErrInvalidWindow},
		{"absurd window", queryPlan{Query: "recent_meetings", TimeRangeDays: 20000}, usecaseErrors.ErrInvalidWindow},
		{"valid with person", queryPlan{Query: "actions_for_person", Person: "Sarah Chen"}, nil},
		{"valid without args", queryPlan{Query: "pending_actions"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePlan(&tt.plan)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("validatePlan() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validatePlan() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePlan_ClampsLimit(t *testing.T) {
	plan := queryPlan{Query: "recent_meetings", Limit: 500}
	if err := validatePlan(&plan); err != nil {
		t.Fatalf("validatePlan() error = %v", err)
	}
	if plan.Limit != 0 {
		t.Errorf("Limit = %d, want 0 after clamping", plan.Limit)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "json code block",
			input: "```json\n{\"query\": \"pending_actions\"}\n```",
			want:  `{"query": "pending_actions"}`,
		},
		{
			name:  "plain code block",
			input: "```\n{\"query\": \"attendance\"}\n```",
			want:  `{"query": "attendance"}`,
		},
		{
			name:  "bare object",
			input: `{"query": "topic_trends"}`,
			want:  `{"query": "topic_trends"}`,
		},
		{
			name:  "object wrapped in prose",
			input: `Here is the plan: {"query": "open_blockers"} hope that helps!`,
			want:  `{"query": "open_blockers"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.input); got != tt.want {
				t.Errorf("extractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}
