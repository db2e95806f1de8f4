package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/notes"
	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	exportUsecase "github.com/johnquangdev/meeting-notes/internal/usecase/export"
	jobsUsecase "github.com/johnquangdev/meeting-notes/internal/usecase/jobs"
)

// Job handles background job HTTP requests
type Job struct {
	jobService jobsUsecase.Service
	exporter   exportUsecase.Service
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService jobsUsecase.Service, exporter exportUsecase.Service) *Job {
	return &Job{
		jobService: jobService,
		exporter:   exporter,
	}
}

// ExportGithub handles POST /export/github
// @Summary      Export action items to GitHub
// @Description  Enqueues a job that creates one GitHub issue per pending action item
// @Tags         Jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      notes.ExportRequest  false  "Optional meeting scope"
// @Success      202      {object}  notes.JobResponse  "Export job accepted"
// @Failure      400      {object}  map[string]interface{}  "Invalid request"
// @Failure      503      {object}  map[string]interface{}  "Background workers disabled"
// @Router       /export/github [post]
func (h *Job) ExportGithub(c echo.Context) error {
	var req notes.ExportRequest
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

	// A stated repo must match the configured target, so a client pointed
	// at the wrong server fails fast instead of filing issues elsewhere
	if req.Repo != nil && *req.Repo != "" && *req.Repo != h.exporter.Target() {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "repo_mismatch",
			"message": "requested repository does not match the configured export target",
		})
	}

	var payload entities.JobPayload
	if req.MeetingID != nil {
		meetingID, err := uuid.Parse(*req.MeetingID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error":   "invalid_meeting_id",
				"message": "meeting ID must be a valid UUID",
			})
		}
		payload.MeetingID = &meetingID
	}

	job, err := h.jobService.Enqueue(c.Request().Context(), entities.JobTypeGithubExport, payload)
	if err != nil {
		return h.respondEnqueueError(c, err)
	}

	return c.JSON(http.StatusAccepted, presenter.ToJobResponse(job))
}

// EnqueueJob handles POST /jobs
// @Summary      Enqueue a background job
// @Description  Creates a pending job (github_export, progress_report or transcribe_audio) for the worker pool
// @Tags         Jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      notes.EnqueueJobRequest  true  "Job type and parameters"
// @Success      202      {object}  notes.JobResponse  "Job accepted"
// @Failure      400      {object}  map[string]interface{}  "Unknown type or missing parameters"
// @Failure      503      {object}  map[string]interface{}  "Background workers disabled"
// @Router       /jobs [post]
func (h *Job) EnqueueJob(c echo.Context) error {
	var req notes.EnqueueJobRequest
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

	payload := entities.JobPayload{
		AudioURL:    req.AudioURL,
		MeetingType: req.MeetingType,
		Days:        req.Days,
		Person:      req.Person,
	}
	if req.MeetingID != nil {
		meetingID, err := uuid.Parse(*req.MeetingID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error":   "invalid_meeting_id",
				"message": "meeting ID must be a valid UUID",
			})
		}
		payload.MeetingID = &meetingID
	}

	job, err := h.jobService.Enqueue(c.Request().Context(), entities.JobType(req.Type), payload)
	if err != nil {
		return h.respondEnqueueError(c, err)
	}

	return c.JSON(http.StatusAccepted, presenter.ToJobResponse(job))
}

// GetJob handles GET /jobs/:id
// @Summary      Get job status
// @Description  Gets one background job with its result once completed
// @Tags         Jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID (UUID)"
// @Success      200  {object}  notes.JobResponse  "Job details"
// @Failure      400  {object}  map[string]interface{}  "Invalid job ID"
// @Failure      404  {object}  map[string]interface{}  "Job not found"
// @Router       /jobs/{id} [get]
func (h *Job) GetJob(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_job_id",
			"message": "job ID must be a valid UUID",
		})
	}

	job, err := h.jobService.GetJob(c.Request().Context(), jobID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorCode := "failed_to_get_job"

		if errors.Is(err, usecaseErrors.ErrJobNotFound) {
			statusCode = http.StatusNotFound
			errorCode = "job_not_found"
		}

		return c.JSON(statusCode, map[string]interface{}{
			"error":   errorCode,
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, presenter.ToJobResponse(job))
}

// ListJobs handles GET /jobs
// @Summary      List recent jobs
// @Description  Gets the most recently updated background jobs
// @Tags         Jobs
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max jobs to return (default: 20)"
// @Success      200    {object}  notes.JobListResponse  "Recent jobs"
// @Failure      500    {object}  map[string]interface{}  "Failed to list jobs"
// @Router       /jobs [get]
func (h *Job) ListJobs(c echo.Context) error {
	limit := intQueryParam(c, "limit", 20)

	jobs, err := h.jobService.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error":   "failed_to_list_jobs",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, presenter.ToJobListResponse(jobs))
}

// CancelJob handles DELETE /jobs/:id
// @Summary      Cancel a job
// @Description  Cancels a job that has not started processing yet
// @Tags         Jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID (UUID)"
// @Success      200  {object}  map[string]interface{}  "Job cancelled"
// @Failure      400  {object}  map[string]interface{}  "Invalid job ID"
// @Failure      404  {object}  map[string]interface{}  "Job not found"
// @Failure      409  {object}  map[string]interface{}  "Job already running or finished"
// @Router       /jobs/{id} [delete]
func (h *Job) CancelJob(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_job_id",
			"message": "job ID must be a valid UUID",
		})
	}

	if err := h.jobService.CancelJob(c.Request().Context(), jobID); err != nil {
		statusCode := http.StatusInternalServerError
		errorCode := "failed_to_cancel_job"

		switch {
		case errors.Is(err, usecaseErrors.ErrJobNotFound):
			statusCode = http.StatusNotFound
			errorCode = "job_not_found"
		case errors.Is(err, usecaseErrors.ErrJobNotCancelable):
			statusCode = http.StatusConflict
			errorCode = "job_not_cancelable"
		}

		return c.JSON(statusCode, map[string]interface{}{
			"error":   errorCode,
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "cancelled",
	})
}

// respondEnqueueError maps enqueue failures onto HTTP status codes
func (h *Job) respondEnqueueError(c echo.Context, err error) error {
	statusCode := http.StatusInternalServerError
	errorCode := "job_submit_failed"

	switch {
	case errors.Is(err, usecaseErrors.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		errorCode = "invalid_job"
	case errors.Is(err, usecaseErrors.ErrMissingAudioURL):
		statusCode = http.StatusBadRequest
		errorCode = "missing_audio_url"
	case errors.Is(err, usecaseErrors.ErrWorkersDisabled):
		statusCode = http.StatusServiceUnavailable
		errorCode = "workers_disabled"
	}

	return c.JSON(statusCode, map[string]interface{}{
		"error":   errorCode,
		"message": err.Error(),
	})
}
