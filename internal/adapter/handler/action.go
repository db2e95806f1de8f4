package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/notes"
	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	queryUsecase "github.com/johnquangdev/meeting-notes/internal/usecase/query"
)

// Action handles action item and blocker HTTP requests
type Action struct {
	queryService queryUsecase.Service
}

// NewActionHandler creates a new action handler
func NewActionHandler(queryService queryUsecase.Service) *Action {
	return &Action{
		queryService: queryService,
	}
}

// ListActions handles GET /actions
// @Summary      List action items
// @Description  Gets action items across all meetings with optional filters
// @Tags         Actions
// @Produce      json
// @Security     BearerAuth
// @Param        status    query     string  false  "Status filter (pending/in_progress/completed/cancelled)"
// @Param        priority  query     string  false  "Priority filter (low/medium/high)"
// @Param        person    query     string  false  "Owner name filter"
// @Param        exported  query     bool    false  "Filter on whether a GitHub issue exists"
// @Param        search    query     string  false  "Search in descriptions"
// @Param        limit     query     int     false  "Max items to return (default: 50)"
// @Param        offset    query     int     false  "Offset for paging"
// @Success      200       {object}  notes.ActionListResponse  "Action items"
// @Failure      400       {object}  map[string]interface{}  "Invalid request"
// @Failure      500       {object}  map[string]interface{}  "Failed to list actions"
// @Router       /actions [get]
func (h *Action) ListActions(c echo.Context) error {
	var req notes.ListActionsRequest
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
	if req.Limit == 0 {
		req.Limit = 50
	}

	filters := buildActionFilters(&req)

	items, total, err := h.queryService.ListActions(c.Request().Context(), filters)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error":   "failed_to_list_actions",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, presenter.ToActionListResponse(items, total))
}

// PendingActions handles GET /actions/pending
// @Summary      List pending action items
// @Description  Gets open action items across all meetings, highest priority first
// @Tags         Actions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  notes.ActionListResponse  "Open action items"
// @Failure      500  {object}  map[string]interface{}  "Failed to list pending actions"
// @Router       /actions/pending [get]
func (h *Action) PendingActions(c echo.Context) error {
	items, err := h.queryService.PendingActions(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error":   "failed_to_list_pending_actions",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, presenter.ToActionListResponse(items, int64(len(items))))
}

// ActionsForPerson handles GET /actions/person/:name
// @Summary      List a person's action items
// @Description  Gets action items owned by the named person, matched case-insensitively
// @Tags         Actions
// @Produce      json
// @Security     BearerAuth
// @Param        name               path      string  true   "Person name"
// @Param        include_completed  query     bool    false  "Include finished items (default: false)"
// @Success      200                {object}  notes.ActionListResponse  "The person's action items"
// @Failure      404                {object}  map[string]interface{}  "Person not found"
// @Failure      500                {object}  map[string]interface{}  "Failed to list actions"
// @Router       /actions/person/{name} [get]
func (h *Action) ActionsForPerson(c echo.Context) error {
	name := c.Param("name")
	includeCompleted := c.QueryParam("include_completed") == "true"

	items, err := h.queryService.ActionsForPerson(c.Request().Context(), name, includeCompleted)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorCode := "failed_to_list_actions"

		if errors.Is(err, usecaseErrors.ErrPersonNotFound) {
			statusCode = http.StatusNotFound
			errorCode = "person_not_found"
		}

		return c.JSON(statusCode, map[string]interface{}{
			"error":   errorCode,
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, presenter.ToActionListResponse(items, int64(len(items))))
}

// UpdateActionStatus handles PATCH /actions/:id/status
// @Summary      Update action item status
// @Description  Moves an action item through its lifecycle (pending/in_progress/completed/cancelled)
// @Tags         Actions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                           true  "Action item ID (UUID)"
// @Param        request  body      notes.UpdateActionStatusRequest  true  "New status"
// @Success      200      {object}  map[string]interface{}  "Status updated"
// @Failure      400      {object}  map[string]interface{}  "Invalid ID or status"
// @Failure      404      {object}  map[string]interface{}  "Action item not found"
// @Router       /actions/{id}/status [patch]
func (h *Action) UpdateActionStatus(c echo.Context) error {
	actionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_action_id",
			"message": "action item ID must be a valid UUID",
		})
	}

	var req notes.UpdateActionStatusRequest
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

	if err := h.queryService.UpdateActionStatus(c.Request().Context(), actionID, req.Status); err != nil {
		statusCode := http.StatusInternalServerError
		errorCode := "failed_to_update_status"

		switch {
		case errors.Is(err, usecaseErrors.ErrNotFound):
			statusCode = http.StatusNotFound
			errorCode = "action_not_found"
		case errors.Is(err, usecaseErrors.ErrInvalidInput):
			statusCode = http.StatusBadRequest
			errorCode = "invalid_status"
		}

		return c.JSON(statusCode, map[string]interface{}{
			"error":   errorCode,
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": req.Status,
	})
}

// OpenBlockers handles GET /blockers
// @Summary      List open blockers
// @Description  Gets unresolved blockers across all meetings, newest first
// @Tags         Actions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  notes.BlockerListResponse  "Open blockers"
// @Failure      500  {object}  map[string]interface{}  "Failed to list blockers"
// @Router       /blockers [get]
func (h *Action) OpenBlockers(c echo.Context) error {
	blockers, err := h.queryService.OpenBlockers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error":   "failed_to_list_blockers",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, presenter.ToBlockerListResponse(blockers))
}

// ResolveBlocker handles PATCH /blockers/:id/resolve
// @Summary      Resolve a blocker
// @Description  Marks a blocker as cleared
// @Tags         Actions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Blocker ID (UUID)"
// @Success      200  {object}  map[string]interface{}  "Blocker resolved"
// @Failure      400  {object}  map[string]interface{}  "Invalid blocker ID"
// @Failure      404  {object}  map[string]interface{}  "Blocker not found"
// @Router       /blockers/{id}/resolve [patch]
func (h *Action) ResolveBlocker(c echo.Context) error {
	blockerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_blocker_id",
			"message": "blocker ID must be a valid UUID",
		})
	}

	if err := h.queryService.ResolveBlocker(c.Request().Context(), blockerID); err != nil {
		statusCode := http.StatusInternalServerError
		errorCode := "failed_to_resolve_blocker"

		if errors.Is(err, usecaseErrors.ErrNotFound) {
			statusCode = http.StatusNotFound
			errorCode = "blocker_not_found"
		}

		return c.JSON(statusCode, map[string]interface{}{
			"error":   errorCode,
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "resolved",
	})
}
