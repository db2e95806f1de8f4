package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	analyticsUsecase "github.com/johnquangdev/meeting-notes/internal/usecase/analytics"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
)

// Analytics handles aggregate-view HTTP requests
type Analytics struct {
	analyticsService analyticsUsecase.Service
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService analyticsUsecase.Service) *Analytics {
	return &Analytics{
		analyticsService: analyticsService,
	}
}

// Overview handles GET /analytics/overview
// @Summary      Archive overview
// @Description  Combined dashboard numbers: meetings, action stats, busiest people, top topics and cadence
// @Tags         Analytics
// @Produce      json
// @Security     BearerAuth
// @Param        days  query     int  false  "Lookback window in days (default: all time)"
// @Success      200   {object}  analytics.Overview  "Dashboard numbers"
// @Failure      400   {object}  map[string]interface{}  "Invalid window"
// @Failure      500   {object}  map[string]interface{}  "Failed to build overview"
// @Router       /analytics/overview [get]
func (h *Analytics) Overview(c echo.Context) error {
	days := intQueryParam(c, "days", 0)

	overview, err := h.analyticsService.Overview(c.Request().Context(), days)
	if err != nil {
		return h.respondError(c, "failed_to_build_overview", err)
	}

	return c.JSON(http.StatusOK, overview)
}

// Cooccurrence handles GET /analytics/cooccurrence
// @Summary      Topic co-occurrence
// @Description  Pairs of topics that keep turning up in the same meetings
// @Tags         Analytics
// @Produce      json
// @Security     BearerAuth
// @Param        days          query     int  false  "Lookback window in days (default: all time)"
// @Param        min_meetings  query     int  false  "Minimum shared meetings for a pair (default: 2)"
// @Success      200           {object}  map[string]interface{}  "Topic pairs"
// @Failure      400           {object}  map[string]interface{}  "Invalid window"
// @Failure      500           {object}  map[string]interface{}  "Failed to load co-occurrence"
// @Router       /analytics/cooccurrence [get]
func (h *Analytics) Cooccurrence(c echo.Context) error {
	days := intQueryParam(c, "days", 0)
	minMeetings := intQueryParam(c, "min_meetings", 0)

	pairs, err := h.analyticsService.TopicCooccurrence(c.Request().Context(), days, minMeetings)
	if err != nil {
		return h.respondError(c, "failed_to_load_cooccurrence", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"pairs": pairs,
		"total": len(pairs),
	})
}

// Report handles GET /analytics/report
// @Summary      Progress report
// @Description  Builds a markdown progress report over the window, optionally focused on one person
// @Tags         Analytics
// @Produce      json
// @Security     BearerAuth
// @Param        days    query     int     false  "Lookback window in days (default: 7)"
// @Param        person  query     string  false  "Narrow the report to one person"
// @Success      200     {object}  analytics.Report  "Generated report"
// @Failure      400     {object}  map[string]interface{}  "Invalid window"
// @Failure      500     {object}  map[string]interface{}  "Report generation failed"
// @Router       /analytics/report [get]
func (h *Analytics) Report(c echo.Context) error {
	input := analyticsUsecase.ReportInput{
		Days:   intQueryParam(c, "days", 0),
		Person: c.QueryParam("person"),
	}

	report, err := h.analyticsService.ProgressReport(c.Request().Context(), input)
	if err != nil {
		return h.respondError(c, "report_generation_failed", err)
	}

	return c.JSON(http.StatusOK, report)
}

// Bottlenecks handles GET /analytics/bottlenecks
// @Summary      Workload bottlenecks
// @Description  People holding enough open action items to slow the team down
// @Tags         Analytics
// @Produce      json
// @Security     BearerAuth
// @Param        days      query     int  false  "Lookback window in days (default: all time)"
// @Param        min_open  query     int  false  "Minimum open items to flag a person (default: 3)"
// @Success      200       {object}  map[string]interface{}  "Overloaded people"
// @Failure      400       {object}  map[string]interface{}  "Invalid window"
// @Failure      500       {object}  map[string]interface{}  "Failed to load bottlenecks"
// @Router       /analytics/bottlenecks [get]
func (h *Analytics) Bottlenecks(c echo.Context) error {
	days := intQueryParam(c, "days", 0)
	minOpen := intQueryParam(c, "min_open", 0)

	people, err := h.analyticsService.Bottlenecks(c.Request().Context(), days, minOpen)
	if err != nil {
		return h.respondError(c, "failed_to_load_bottlenecks", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"people": people,
		"total":  len(people),
	})
}

// Decisions handles GET /analytics/decisions
// @Summary      Decision implementation status
// @Description  Recorded decisions with progress derived from their meeting's action items
// @Tags         Analytics
// @Produce      json
// @Security     BearerAuth
// @Param        days   query     int  false  "Lookback window in days (default: all time)"
// @Param        limit  query     int  false  "Max decisions to return (default: 20)"
// @Success      200    {object}  map[string]interface{}  "Decisions with status"
// @Failure      400    {object}  map[string]interface{}  "Invalid window"
// @Failure      500    {object}  map[string]interface{}  "Failed to load decisions"
// @Router       /analytics/decisions [get]
func (h *Analytics) Decisions(c echo.Context) error {
	days := intQueryParam(c, "days", 0)
	limit := intQueryParam(c, "limit", 0)

	decisions, err := h.analyticsService.DecisionStatus(c.Request().Context(), days, limit)
	if err != nil {
		return h.respondError(c, "failed_to_load_decisions", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"decisions": decisions,
		"total":     len(decisions),
	})
}

// Efficiency handles GET /analytics/efficiency
// @Summary      Meeting efficiency
// @Description  Aggregate productivity numbers: duration averages and outcomes per meeting
// @Tags         Analytics
// @Produce      json
// @Security     BearerAuth
// @Param        days  query     int  false  "Lookback window in days (default: all time)"
// @Success      200   {object}  repositories.EfficiencyStats  "Efficiency numbers"
// @Failure      400   {object}  map[string]interface{}  "Invalid window"
// @Failure      500   {object}  map[string]interface{}  "Failed to load efficiency stats"
// @Router       /analytics/efficiency [get]
func (h *Analytics) Efficiency(c echo.Context) error {
	days := intQueryParam(c, "days", 0)

	stats, err := h.analyticsService.Efficiency(c.Request().Context(), days)
	if err != nil {
		return h.respondError(c, "failed_to_load_efficiency", err)
	}

	return c.JSON(http.StatusOK, stats)
}

// respondError maps analytics failures onto HTTP status codes
func (h *Analytics) respondError(c echo.Context, errorCode string, err error) error {
	statusCode := http.StatusInternalServerError

	if errors.Is(err, usecaseErrors.ErrInvalidWindow) {
		statusCode = http.StatusBadRequest
		errorCode = "invalid_window"
	}

	return c.JSON(statusCode, map[string]interface{}{
		"error":   errorCode,
		"message": err.Error(),
	})
}
