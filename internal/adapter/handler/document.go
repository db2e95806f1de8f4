package handler

import (
	stdErrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/notes"
	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/storage"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	ingestUsecase "github.com/johnquangdev/meeting-notes/internal/usecase/ingest"
	jobsUsecase "github.com/johnquangdev/meeting-notes/internal/usecase/jobs"
)

// documentLinkTTL bounds how long a presigned source link stays valid
const documentLinkTTL = 15 * time.Minute

// Document handles document ingestion HTTP requests
type Document struct {
	ingestService ingestUsecase.Service
	jobService    jobsUsecase.Service
	documentRepo  repositories.DocumentRepository
	storage       *storage.MinIOClient
	logger        *zap.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(
	ingestService ingestUsecase.Service,
	jobService jobsUsecase.Service,
	documentRepo repositories.DocumentRepository,
	storage *storage.MinIOClient,
	logger *zap.Logger,
) *Document {
	return &Document{
		ingestService: ingestService,
		jobService:    jobService,
		documentRepo:  documentRepo,
		storage:       storage,
		logger:        logger,
	}
}

// Ingest handles POST /documents
// @Summary      Ingest meeting notes
// @Description  Runs extraction over raw meeting notes, sent as a JSON body or an uploaded file
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      notes.IngestTextRequest  false  "Raw note content (JSON mode)"
// @Param        file     formData  file                     false  "Note file (multipart mode)"
// @Success      200      {object}  map[string]interface{}  "Extracted meeting record"
// @Failure      400      {object}  map[string]interface{}  "Empty or malformed document"
// @Failure      422      {object}  map[string]interface{}  "Extraction failed"
// @Router       /documents [post]
func (h *Document) Ingest(c echo.Context) error {
	ctx := c.Request().Context()

	// Multipart upload wins when both are present
	if file, err := c.FormFile("file"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			return HandleError(h.logger, c, errors.ErrDocumentReadFailed(file.Filename, err))
		}
		defer src.Close()

		result, err := h.ingestService.IngestReader(ctx, file.Filename, src, entities.DocumentOriginAPI)
		return h.respondIngest(c, file.Filename, result, err)
	}

	var req notes.IngestTextRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	input := ingestUsecase.Input{
		Content:    req.Content,
		SourcePath: req.SourcePath,
		Origin:     entities.DocumentOriginAPI,
	}

	result, err := h.ingestService.IngestText(ctx, input)
	return h.respondIngest(c, input.SourcePath, result, err)
}

// IngestAudio handles POST /documents/audio
// @Summary      Ingest a meeting recording
// @Description  Submits an audio URL for transcription; the transcript is ingested like written notes once ready
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      notes.IngestAudioRequest  true  "Recording URL"
// @Success      200      {object}  map[string]interface{}  "Transcription job accepted"
// @Failure      400      {object}  map[string]interface{}  "Missing audio_url"
// @Failure      500      {object}  map[string]interface{}  "Failed to submit job"
// @Router       /documents/audio [post]
func (h *Document) IngestAudio(c echo.Context) error {
	var req notes.IngestAudioRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if req.AudioURL == "" {
		return HandleError(h.logger, c, errors.ErrMissingAudioURL())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	payload := entities.JobPayload{
		AudioURL:    req.AudioURL,
		MeetingType: req.MeetingType,
	}

	job, err := h.jobService.Enqueue(c.Request().Context(), entities.JobTypeTranscribeAudio, payload)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrMissingAudioURL) {
			return HandleError(h.logger, c, errors.ErrMissingAudioURL())
		}
		return HandleError(h.logger, c, errors.ErrJobSubmitFailed(string(entities.JobTypeTranscribeAudio), err))
	}

	return HandleSuccess(h.logger, c, presenter.ToJobResponse(job))
}

// GetMeetingDocument handles GET /meetings/:id/document
// @Summary      Get the archived source document
// @Description  Returns a short-lived presigned URL for the meeting's original notes in object storage
// @Tags         Documents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  map[string]interface{}  "Presigned document link"
// @Failure      404  {object}  map[string]interface{}  "No archived document for this meeting"
// @Failure      500  {object}  map[string]interface{}  "Failed to sign URL"
// @Router       /meetings/{id}/document [get]
func (h *Document) GetMeetingDocument(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("meeting ID must be a valid UUID"))
	}

	ctx := c.Request().Context()

	doc, err := h.documentRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		if stdErrors.Is(err, entities.ErrDocumentNotFound) {
			return HandleError(h.logger, c, errors.ErrNotFound("document"))
		}
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("find document", err))
	}
	if doc.ArchiveKey == nil {
		return HandleError(h.logger, c, errors.ErrNotFound("archived document"))
	}
	if h.storage == nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("presign", stdErrors.New("object storage not configured")))
	}

	url, err := h.storage.GetFileURL(ctx, *doc.ArchiveKey, documentLinkTTL)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("presign", err))
	}

	return HandleSuccess(h.logger, c, &notes.DocumentLinkResponse{
		Filename:  doc.Filename,
		URL:       url,
		ExpiresAt: time.Now().Add(documentLinkTTL),
	})
}

// ListDocuments handles GET /documents
// @Summary      List ingested documents
// @Description  Lists ingested source documents, newest first
// @Tags         Documents
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int  false  "Max documents to return (default: 50)"
// @Param        offset  query     int  false  "Offset for paging"
// @Success      200     {object}  map[string]interface{}  "Ingested documents"
// @Failure      500     {object}  map[string]interface{}  "Failed to list documents"
// @Router       /documents [get]
func (h *Document) ListDocuments(c echo.Context) error {
	limit := intQueryParam(c, "limit", 50)
	offset := intQueryParam(c, "offset", 0)

	docs, total, err := h.documentRepo.List(c.Request().Context(), limit, offset)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("list documents", err))
	}

	return HandleSuccess(h.logger, c, presenter.ToDocumentListResponse(docs, total))
}

// respondIngest maps ingestion results and failures onto the response shapes
func (h *Document) respondIngest(c echo.Context, source string, result *ingestUsecase.Result, err error) error {
	if err != nil {
		switch {
		case stdErrors.Is(err, usecaseErrors.ErrEmptyDocument):
			return HandleError(h.logger, c, errors.ErrDocumentEmpty(source))
		case stdErrors.Is(err, usecaseErrors.ErrExtractionFailed):
			return HandleError(h.logger, c, errors.ErrExtractionFailed(source, err))
		default:
			return HandleError(h.logger, c, errors.ErrIngestFailed(source, err))
		}
	}

	return HandleSuccess(h.logger, c, presenter.ToIngestResponse(result.Meeting, result.Created, result.Updated, result.Unchanged))
}
