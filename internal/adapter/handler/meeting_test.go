package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	pkgvalidator "github.com/johnquangdev/meeting-notes/pkg/validator"
)

// stubQueryService lets each test wire only the calls it expects. Unwired
// calls panic, which surfaces as a test failure.
type stubQueryService struct {
	getMeeting       func(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)
	listMeetings     func(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error)
	searchMeetings   func(ctx context.Context, query string, limit int) ([]*entities.Meeting, error)
	meetingsAbout    func(ctx context.Context, topic string, limit int) ([]*entities.Meeting, error)
	deleteMeeting    func(ctx context.Context, id uuid.UUID) error
	listActions      func(ctx context.Context, filters repositories.ActionFilters) ([]*entities.ActionItem, int64, error)
	pendingActions   func(ctx context.Context) ([]*entities.ActionItem, error)
	actionsForPerson func(ctx context.Context, name string, includeCompleted bool) ([]*entities.ActionItem, error)
	updateStatus     func(ctx context.Context, id uuid.UUID, status string) error
	openBlockers     func(ctx context.Context) ([]*entities.Blocker, error)
	resolveBlocker   func(ctx context.Context, id uuid.UUID) error
	listPeople       func(ctx context.Context, limit, offset int) ([]*entities.Person, int64, error)
	listDocuments    func(ctx context.Context, limit, offset int) ([]*entities.Document, int64, error)
}

func (s *stubQueryService) GetMeeting(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return s.getMeeting(ctx, id)
}

func (s *stubQueryService) ListMeetings(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
	return s.listMeetings(ctx, filters)
}

func (s *stubQueryService) SearchMeetings(ctx context.Context, query string, limit int) ([]*entities.Meeting, error) {
	return s.searchMeetings(ctx, query, limit)
}

func (s *stubQueryService) MeetingsAbout(ctx context.Context, topic string, limit int) ([]*entities.Meeting, error) {
	return s.meetingsAbout(ctx, topic, limit)
}

func (s *stubQueryService) DeleteMeeting(ctx context.Context, id uuid.UUID) error {
	return s.deleteMeeting(ctx, id)
}

func (s *stubQueryService) ListActions(ctx context.Context, filters repositories.ActionFilters) ([]*entities.ActionItem, int64, error) {
	return s.listActions(ctx, filters)
}

func (s *stubQueryService) PendingActions(ctx context.Context) ([]*entities.ActionItem, error) {
	return s.pendingActions(ctx)
}

func (s *stubQueryService) ActionsForPerson(ctx context.Context, name string, includeCompleted bool) ([]*entities.ActionItem, error) {
	return s.actionsForPerson(ctx, name, includeCompleted)
}

func (s *stubQueryService) UpdateActionStatus(ctx context.Context, id uuid.UUID, status string) error {
	return s.updateStatus(ctx, id, status)
}

func (s *stubQueryService) OpenBlockers(ctx context.Context) ([]*entities.Blocker, error) {
	return s.openBlockers(ctx)
}

func (s *stubQueryService) ResolveBlocker(ctx context.Context, id uuid.UUID) error {
	return s.resolveBlocker(ctx, id)
}

func (s *stubQueryService) ListPeople(ctx context.Context, limit, offset int) ([]*entities.Person, int64, error) {
	return s.listPeople(ctx, limit, offset)
}

func (s *stubQueryService) ListDocuments(ctx context.Context, limit, offset int) ([]*entities.Document, int64, error) {
	return s.listDocuments(ctx, limit, offset)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = pkgvalidator.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return body
}

func TestGetMeeting_Success(t *testing.T) {
	meetingID := uuid.New()
	svc := &stubQueryService{
		getMeeting: func(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
			if id != meetingID {
				t.Fatalf("unexpected meeting id %s", id)
			}
			return &entities.Meeting{ID: meetingID, Title: "Sprint Planning - Payments Team", SourcePath: "notes/sprint_planning_2026_08_10.txt"}, nil
		},
	}
	h := NewMeetingHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/v1/meetings/"+meetingID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(meetingID.String())

	if err := h.GetMeeting(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["title"] != "Sprint Planning - Payments Team" {
		t.Fatalf("unexpected title %v", body["title"])
	}
	if body["id"] != meetingID.String() {
		t.Fatalf("unexpected id %v", body["id"])
	}
}

func TestGetMeeting_NotFound(t *testing.T) {
	svc := &stubQueryService{
		getMeeting: func(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
			return nil, usecaseErrors.ErrMeetingNotFound
		},
	}
	h := NewMeetingHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/v1/meetings/"+uuid.NewString(), "")
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	if err := h.GetMeeting(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "meeting_not_found" {
		t.Fatalf("unexpected error code %v", body["error"])
	}
}

func TestGetMeeting_InvalidID(t *testing.T) {
	h := NewMeetingHandler(&stubQueryService{})

	c, rec := newTestContext(t, http.MethodGet, "/v1/meetings/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	if err := h.GetMeeting(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "invalid_meeting_id" {
		t.Fatalf("unexpected error code %v", body["error"])
	}
}

func TestListMeetings_Defaults(t *testing.T) {
	svc := &stubQueryService{
		listMeetings: func(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
			if filters.Limit != 20 {
				t.Fatalf("expected default limit 20 got %d", filters.Limit)
			}
			if filters.Offset != 0 {
				t.Fatalf("expected offset 0 got %d", filters.Offset)
			}
			return []*entities.Meeting{{ID: uuid.New(), Title: "Standup"}}, 1, nil
		},
	}
	h := NewMeetingHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/v1/meetings", "")
	if err := h.ListMeetings(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["total"] != float64(1) {
		t.Fatalf("unexpected total %v", body["total"])
	}
	if body["page"] != float64(1) || body["page_size"] != float64(20) {
		t.Fatalf("unexpected paging %v/%v", body["page"], body["page_size"])
	}
	if body["total_pages"] != float64(1) {
		t.Fatalf("unexpected total_pages %v", body["total_pages"])
	}
}

func TestListMeetings_Pagination(t *testing.T) {
	svc := &stubQueryService{
		listMeetings: func(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, int64, error) {
			if filters.Limit != 10 {
				t.Fatalf("expected limit 10 got %d", filters.Limit)
			}
			if filters.Offset != 20 {
				t.Fatalf("expected offset 20 got %d", filters.Offset)
			}
			return nil, 25, nil
		},
	}
	h := NewMeetingHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/v1/meetings?page=3&page_size=10", "")
	if err := h.ListMeetings(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["total_pages"] != float64(3) {
		t.Fatalf("unexpected total_pages %v", body["total_pages"])
	}
}

func TestListMeetings_RejectsBadDate(t *testing.T) {
	h := NewMeetingHandler(&stubQueryService{})

	c, rec := newTestContext(t, http.MethodGet, "/v1/meetings?date_from=15-01-2026", "")
	if err := h.ListMeetings(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "validation_failed" {
		t.Fatalf("unexpected error code %v", body["error"])
	}
}

func TestSearchMeetings_MissingQuery(t *testing.T) {
	h := NewMeetingHandler(&stubQueryService{})

	c, rec := newTestContext(t, http.MethodGet, "/v1/search", "")
	if err := h.SearchMeetings(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "missing_query" {
		t.Fatalf("unexpected error code %v", body["error"])
	}
}

func TestSearchMeetings_Success(t *testing.T) {
	svc := &stubQueryService{
		searchMeetings: func(ctx context.Context, query string, limit int) ([]*entities.Meeting, error) {
			if query != "refund pipeline" {
				t.Fatalf("unexpected query %q", query)
			}
			return []*entities.Meeting{{ID: uuid.New(), Title: "Sprint Planning"}}, nil
		},
	}
	h := NewMeetingHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/v1/search?q=refund+pipeline", "")
	if err := h.SearchMeetings(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["total"] != float64(1) {
		t.Fatalf("unexpected total %v", body["total"])
	}
	meetings, ok := body["meetings"].([]interface{})
	if !ok || len(meetings) != 1 {
		t.Fatalf("unexpected meetings %v", body["meetings"])
	}
}
