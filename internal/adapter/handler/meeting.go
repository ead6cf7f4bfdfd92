package handler

import (
	"io"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ross7390/meeting-maestro/errors"
	meetingDto "github.com/ross7390/meeting-maestro/internal/adapter/dto/meeting"
	"github.com/ross7390/meeting-maestro/internal/domain/entities"
	extractUsecase "github.com/ross7390/meeting-maestro/internal/usecase/extract"
	meetingUsecase "github.com/ross7390/meeting-maestro/internal/usecase/meeting"
	"github.com/ross7390/meeting-maestro/internal/usecase/transcript"
)

// maxUploadBytes caps transcript uploads.
const maxUploadBytes = 10 << 20

// Meeting handles transcript upload and meeting record HTTP requests
type Meeting struct {
	normalizer *transcript.Normalizer
	extractor  *extractUsecase.Service
	meetings   *meetingUsecase.Service
	logger     *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(normalizer *transcript.Normalizer, extractor *extractUsecase.Service, meetings *meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		normalizer: normalizer,
		extractor:  extractor,
		meetings:   meetings,
		logger:     logger,
	}
}

// Upload handles POST /meetings. The multipart "file" field carries the
// transcript; the response is the extracted record with its session id.
func (h *Meeting) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("transcript file is required"))
	}
	if fileHeader.Size > maxUploadBytes {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("transcript file is too large"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	text, err := h.normalizer.Normalize(fileHeader.Filename, string(content))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	record, err := h.extractor.Extract(c.Request().Context(), text)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	sessionID, stored, err := h.meetings.Create(c.Request().Context(), record)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	h.logger.Info("transcript processed",
		zap.String("session_id", sessionID),
		zap.String("filename", fileHeader.Filename),
		zap.Int("participants", len(stored.Participants)),
		zap.Int("action_items", len(stored.ActionItems)),
	)

	return HandleSuccess(h.logger, c, meetingDto.MeetingResponse{
		SessionID: sessionID,
		Meeting:   stored,
	})
}

// Get handles GET /meetings/:id
func (h *Meeting) Get(c echo.Context) error {
	sessionID := c.Param("id")

	record, err := h.meetings.Get(c.Request().Context(), sessionID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingDto.MeetingResponse{
		SessionID: sessionID,
		Meeting:   record,
	})
}

// UpdateParticipantEmail handles PUT /meetings/:id/participants/:index/email
func (h *Meeting) UpdateParticipantEmail(c echo.Context) error {
	sessionID := c.Param("id")
	index, err := paramIndex(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDto.UpdateParticipantEmailRequest
	if err := BindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	record, err := h.meetings.UpdateParticipantEmail(c.Request().Context(), sessionID, index, req.Email)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingDto.MeetingResponse{
		SessionID: sessionID,
		Meeting:   record,
	})
}

// AddActionItem handles POST /meetings/:id/actions
func (h *Meeting) AddActionItem(c echo.Context) error {
	sessionID := c.Param("id")

	record, err := h.meetings.AddActionItem(c.Request().Context(), sessionID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingDto.MeetingResponse{
		SessionID: sessionID,
		Meeting:   record,
	})
}

// UpdateActionItem handles PUT /meetings/:id/actions/:index
func (h *Meeting) UpdateActionItem(c echo.Context) error {
	sessionID := c.Param("id")
	index, err := paramIndex(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDto.UpdateActionItemRequest
	if err := BindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	item := entities.ActionItem{
		Person:  req.Person,
		Task:    req.Task,
		DueDate: req.DueDate,
		Status:  entities.ActionItemStatus(req.Status),
	}

	record, err := h.meetings.UpsertActionItem(c.Request().Context(), sessionID, index, item)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingDto.MeetingResponse{
		SessionID: sessionID,
		Meeting:   record,
	})
}

// SetActionItemStatus handles PUT /meetings/:id/actions/:index/status
func (h *Meeting) SetActionItemStatus(c echo.Context) error {
	sessionID := c.Param("id")
	index, err := paramIndex(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingDto.SetStatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	record, err := h.meetings.SetActionItemStatus(c.Request().Context(), sessionID, index, entities.ActionItemStatus(req.Status))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingDto.MeetingResponse{
		SessionID: sessionID,
		Meeting:   record,
	})
}

func paramIndex(c echo.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return 0, errors.ErrInvalidArgument("index must be a non-negative integer")
	}
	return index, nil
}
