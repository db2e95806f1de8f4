package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-notes/pkg/config"
	"github.com/johnquangdev/meeting-notes/pkg/jwt"
	"github.com/johnquangdev/meeting-notes/pkg/middleware"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	documentHandler  *Document
	meetingHandler   *Meeting
	actionHandler    *Action
	analyticsHandler *Analytics
	queryHandler     *Query
	jobHandler       *Job
	jwtManager       *jwt.Manager
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	documentHandler *Document,
	meetingHandler *Meeting,
	actionHandler *Action,
	analyticsHandler *Analytics,
	queryHandler *Query,
	jobHandler *Job,
	jwtManager *jwt.Manager,
) *Router {
	return &Router{
		cfg:              cfg,
		documentHandler:  documentHandler,
		meetingHandler:   meetingHandler,
		actionHandler:    actionHandler,
		analyticsHandler: analyticsHandler,
		queryHandler:     queryHandler,
		jobHandler:       jobHandler,
		jwtManager:       jwtManager,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", rt.healthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group. Reads stay open; everything that mutates the archive
	// requires a service token once auth is enabled.
	v1 := e.Group("/v1")
	requireAuth := middleware.RequireServiceAuth(rt.jwtManager, rt.cfg.Auth.Enabled)

	rt.setupDocumentRoutes(v1, requireAuth)
	rt.setupMeetingRoutes(v1, requireAuth)
	rt.setupActionRoutes(v1, requireAuth)
	rt.setupAnalyticsRoutes(v1)
	rt.setupQueryRoutes(v1)
	rt.setupJobRoutes(v1, requireAuth)
}

// setupDocumentRoutes configures ingestion routes
func (rt *Router) setupDocumentRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	documentGroup := g.Group("/documents")

	documentGroup.POST("", rt.documentHandler.Ingest, requireAuth)
	documentGroup.POST("/audio", rt.documentHandler.IngestAudio, requireAuth)
	documentGroup.GET("", rt.documentHandler.ListDocuments)
}

// setupMeetingRoutes configures meeting query routes
func (rt *Router) setupMeetingRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	meetingGroup := g.Group("/meetings")

	meetingGroup.GET("", rt.meetingHandler.ListMeetings)
	meetingGroup.GET("/:id", rt.meetingHandler.GetMeeting)
	meetingGroup.DELETE("/:id", rt.meetingHandler.DeleteMeeting, requireAuth)
	meetingGroup.GET("/:id/document", rt.documentHandler.GetMeetingDocument)

	g.GET("/topics/:heading/history", rt.meetingHandler.TopicHistory)
	g.GET("/search", rt.meetingHandler.SearchMeetings)
	g.GET("/people", rt.meetingHandler.ListPeople)
}

// setupActionRoutes configures action item and blocker routes
func (rt *Router) setupActionRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	actionGroup := g.Group("/actions")

	actionGroup.GET("", rt.actionHandler.ListActions)
	actionGroup.GET("/pending", rt.actionHandler.PendingActions)
	actionGroup.GET("/person/:name", rt.actionHandler.ActionsForPerson)
	actionGroup.PATCH("/:id/status", rt.actionHandler.UpdateActionStatus, requireAuth)

	blockerGroup := g.Group("/blockers")
	blockerGroup.GET("", rt.actionHandler.OpenBlockers)
	blockerGroup.PATCH("/:id/resolve", rt.actionHandler.ResolveBlocker, requireAuth)
}

// setupAnalyticsRoutes configures aggregate-view routes
func (rt *Router) setupAnalyticsRoutes(g *echo.Group) {
	analyticsGroup := g.Group("/analytics")

	analyticsGroup.GET("/overview", rt.analyticsHandler.Overview)
	analyticsGroup.GET("/cooccurrence", rt.analyticsHandler.Cooccurrence)
	analyticsGroup.GET("/report", rt.analyticsHandler.Report)
	analyticsGroup.GET("/bottlenecks", rt.analyticsHandler.Bottlenecks)
	analyticsGroup.GET("/decisions", rt.analyticsHandler.Decisions)
	analyticsGroup.GET("/efficiency", rt.analyticsHandler.Efficiency)
}

// setupQueryRoutes configures the natural-language query route
func (rt *Router) setupQueryRoutes(g *echo.Group) {
	g.POST("/query", rt.queryHandler.Ask)
}

// setupJobRoutes configures background job routes
func (rt *Router) setupJobRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	g.POST("/export/github", rt.jobHandler.ExportGithub, requireAuth)

	jobGroup := g.Group("/jobs")
	jobGroup.POST("", rt.jobHandler.EnqueueJob, requireAuth)
	jobGroup.GET("", rt.jobHandler.ListJobs)
	jobGroup.GET("/:id", rt.jobHandler.GetJob)
	jobGroup.DELETE("/:id", rt.jobHandler.CancelJob, requireAuth)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"time":        time.Now().Format(time.RFC3339),
		"environment": rt.cfg.Server.Environment,
	})
}
