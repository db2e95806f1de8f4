package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/notes"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	queryUsecase "github.com/johnquangdev/meeting-notes/internal/usecase/query"
)

// Query handles natural-language question HTTP requests
type Query struct {
	engine *queryUsecase.Engine
	logger *zap.Logger
}

// NewQueryHandler creates a new query handler
func NewQueryHandler(engine *queryUsecase.Engine, logger *zap.Logger) *Query {
	return &Query{
		engine: engine,
		logger: logger,
	}
}

// Ask handles POST /query
// @Summary      Ask about the archive
// @Description  Answers a natural-language question by planning a catalog query with the LLM and running it locally
// @Tags         Query
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      notes.AskRequest  true  "The question"
// @Success      200      {object}  map[string]interface{}  "Answer with the data behind it"
// @Failure      400      {object}  map[string]interface{}  "Empty or malformed question"
// @Failure      500      {object}  map[string]interface{}  "Query failed"
// @Router       /query [post]
func (h *Query) Ask(c echo.Context) error {
	var req notes.AskRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	answer, err := h.engine.Ask(c.Request().Context(), req.Question)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrInvalidInput) {
			return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
		}
		return HandleError(h.logger, c, errors.ErrProcessingFailed(err))
	}

	return HandleSuccess(h.logger, c, &notes.AskResponse{
		Question: answer.Question,
		Answer:   answer.Answer,
		Query:    answer.Query,
		Data:     answer.Data,
		Fallback: answer.Fallback,
	})
}
