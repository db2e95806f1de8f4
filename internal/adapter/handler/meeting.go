package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/notes"
	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	queryUsecase "github.com/johnquangdev/meeting-notes/internal/usecase/query"
)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	queryService queryUsecase.Service
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(queryService queryUsecase.Service) *Meeting {
	return &Meeting{
		queryService: queryService,
	}
}

// ListMeetings handles GET /meetings
// @Summary      List meetings
// @Description  Gets a paginated list of ingested meetings with optional filters
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        page       query     int     false  "Page number (default: 1)"
// @Param        page_size  query     int     false  "Items per page (default: 20)"
// @Param        type       query     string  false  "Meeting type filter (e.g. standup/planning)"
// @Param        person     query     string  false  "Only meetings this person attended"
// @Param        date_from  query     string  false  "Earliest meeting date (YYYY-MM-DD)"
// @Param        date_to    query     string  false  "Latest meeting date (YYYY-MM-DD)"
// @Param        search     query     string  false  "Search by meeting title"
// @Param        sort_by    query     string  false  "Sort field (meeting_date/created_at/title)"
// @Param        sort_order query     string  false  "Sort order (asc/desc)"
// @Success      200        {object}  notes.MeetingListResponse  "List of meetings"
// @Failure      400        {object}  map[string]interface{}  "Invalid request"
// @Failure      500        {object}  map[string]interface{}  "Failed to list meetings"
// @Router       /meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	var req notes.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_request",
			"message": err.Error(),
		})
	}

	// Validate request
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}

	// Set defaults
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	filters := buildMeetingFilters(&req)

	meetings, total, err := h.queryService.ListMeetings(c.Request().Context(), filters)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error":   "failed_to_list_meetings",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, presenter.ToMeetingListResponse(meetings, total, req.Page, req.PageSize))
}

// GetMeeting handles GET /meetings/:id
// @Summary      Get meeting details
// @Description  Gets one meeting with everything extracted from its notes
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  notes.MeetingResponse  "Meeting details"
// @Failure      400  {object}  map[string]interface{}  "Invalid meeting ID"
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_meeting_id",
			"message": "meeting ID must be a valid UUID",
		})
	}

	m, err := h.queryService.GetMeeting(c.Request().Context(), meetingID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorCode := "failed_to_get_meeting"

		if errors.Is(err, usecaseErrors.ErrMeetingNotFound) {
			statusCode = http.StatusNotFound
			errorCode = "meeting_not_found"
		}

		return c.JSON(statusCode, map[string]interface{}{
			"error":   errorCode,
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, presenter.ToMeetingResponse(m))
}

// DeleteMeeting handles DELETE /meetings/:id
// @Summary      Delete a meeting
// @Description  Removes a meeting and everything extracted from it
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  map[string]interface{}  "Meeting deleted"
// @Failure      400  {object}  map[string]interface{}  "Invalid meeting ID"
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id} [delete]
func (h *Meeting) DeleteMeeting(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_meeting_id",
			"message": "meeting ID must be a valid UUID",
		})
	}

	if err := h.queryService.DeleteMeeting(c.Request().Context(), meetingID); err != nil {
		statusCode := http.StatusInternalServerError
		errorCode := "failed_to_delete_meeting"

		if errors.Is(err, usecaseErrors.ErrMeetingNotFound) {
			statusCode = http.StatusNotFound
			errorCode = "meeting_not_found"
		}

		return c.JSON(statusCode, map[string]interface{}{
			"error":   errorCode,
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "deleted",
	})
}

// TopicHistory handles GET /topics/:heading/history
// @Summary      Topic history
// @Description  Lists meetings where the given topic heading was discussed
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        heading  path      string  true   "Topic heading"
// @Param        limit    query     int     false  "Max meetings to return (default: 20)"
// @Success      200      {object}  map[string]interface{}  "Meetings that discussed the topic"
// @Failure      404      {object}  map[string]interface{}  "Topic never discussed"
// @Failure      500      {object}  map[string]interface{}  "Failed to load topic history"
// @Router       /topics/{heading}/history [get]
func (h *Meeting) TopicHistory(c echo.Context) error {
	heading := c.Param("heading")
	limit := intQueryParam(c, "limit", 20)

	meetings, err := h.queryService.MeetingsAbout(c.Request().Context(), heading, limit)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorCode := "failed_to_load_topic_history"

		if errors.Is(err, usecaseErrors.ErrUnknownTopic) {
			statusCode = http.StatusNotFound
			errorCode = "topic_not_found"
		}

		return c.JSON(statusCode, map[string]interface{}{
			"error":   errorCode,
			"message": err.Error(),
		})
	}

	summaries := make([]*notes.MeetingSummaryResponse, len(meetings))
	for i, m := range meetings {
		summaries[i] = presenter.ToMeetingSummaryResponse(m)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"topic":    heading,
		"meetings": summaries,
		"total":    len(summaries),
	})
}

// SearchMeetings handles GET /search
// @Summary      Search the archive
// @Description  Free-text search across titles, topics, decisions and action items
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        q      query     string  true   "Search terms"
// @Param        limit  query     int     false  "Max meetings to return (default: 20)"
// @Success      200    {object}  map[string]interface{}  "Matching meetings"
// @Failure      400    {object}  map[string]interface{}  "Missing search terms"
// @Failure      500    {object}  map[string]interface{}  "Search failed"
// @Router       /search [get]
func (h *Meeting) SearchMeetings(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "missing_query",
			"message": "query parameter q is required",
		})
	}
	limit := intQueryParam(c, "limit", 20)

	meetings, err := h.queryService.SearchMeetings(c.Request().Context(), q, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error":   "search_failed",
			"message": err.Error(),
		})
	}

	summaries := make([]*notes.MeetingSummaryResponse, len(meetings))
	for i, m := range meetings {
		summaries[i] = presenter.ToMeetingSummaryResponse(m)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"query":    q,
		"meetings": summaries,
		"total":    len(summaries),
	})
}

// ListPeople handles GET /people
// @Summary      List known people
// @Description  Lists everyone seen in rosters or action items, deduplicated by name
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int  false  "Max people to return (default: 50)"
// @Param        offset  query     int  false  "Offset for paging"
// @Success      200     {object}  notes.PersonListResponse  "Known people"
// @Failure      500     {object}  map[string]interface{}  "Failed to list people"
// @Router       /people [get]
func (h *Meeting) ListPeople(c echo.Context) error {
	limit := intQueryParam(c, "limit", 50)
	offset := intQueryParam(c, "offset", 0)

	people, total, err := h.queryService.ListPeople(c.Request().Context(), limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error":   "failed_to_list_people",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, presenter.ToPersonListResponse(people, total))
}

// intQueryParam reads an integer query parameter, falling back on the
// default for missing or malformed values
func intQueryParam(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}
