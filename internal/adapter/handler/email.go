package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	meetingDto "github.com/ross7390/meeting-maestro/internal/adapter/dto/meeting"
	"github.com/ross7390/meeting-maestro/internal/domain/entities"
	"github.com/ross7390/meeting-maestro/internal/usecase/compose"
	deliveryUsecase "github.com/ross7390/meeting-maestro/internal/usecase/delivery"
	meetingUsecase "github.com/ross7390/meeting-maestro/internal/usecase/meeting"
)

// Email handles composition and delivery HTTP requests
type Email struct {
	meetings *meetingUsecase.Service
	composer *compose.Composer
	delivery *deliveryUsecase.Service
	logger   *zap.Logger
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(meetings *meetingUsecase.Service, composer *compose.Composer, delivery *deliveryUsecase.Service, logger *zap.Logger) *Email {
	return &Email{
		meetings: meetings,
		composer: composer,
		delivery: delivery,
		logger:   logger,
	}
}

// Preview handles POST /meetings/:id/email/preview. The sender email is not
// required here; composing only uses the display name.
func (h *Email) Preview(c echo.Context) error {
	var req meetingDto.PreviewRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, err)
	}

	record, err := h.meetings.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	draft := h.composer.Compose(record, req.SelectedRecipients, toSender(req.Sender))

	return HandleSuccess(h.logger, c, meetingDto.PreviewResponse{
		Subject:            draft.Subject,
		Body:               draft.Body,
		SelectedRecipients: draft.SelectedRecipients,
	})
}

// Send handles POST /meetings/:id/email/send
func (h *Email) Send(c echo.Context) error {
	var req meetingDto.SendRequest
	if err := BindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	record, err := h.meetings.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	sender := toSender(req.Sender)
	draft := entities.EmailDraft{
		Subject:            req.Subject,
		Body:               req.Body,
		SelectedRecipients: req.SelectedRecipients,
	}
	if draft.Subject == "" && draft.Body == "" {
		draft = h.composer.Compose(record, req.SelectedRecipients, sender)
	}

	if err := h.delivery.Send(c.Request().Context(), record, req.SelectedRecipients, sender, draft); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingDto.SendResponse{
		Recipients: req.SelectedRecipients,
	})
}

// SendTest handles POST /meetings/:id/email/test
func (h *Email) SendTest(c echo.Context) error {
	var req meetingDto.TestSendRequest
	if err := BindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.delivery.SendTest(c.Request().Context(), toSender(req.Sender)); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingDto.SendResponse{
		Recipients: []string{req.Sender.Email},
	})
}

// Broadcast handles POST /meetings/:id/email/broadcast
func (h *Email) Broadcast(c echo.Context) error {
	var req meetingDto.BroadcastRequest
	if err := BindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	record, err := h.meetings.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	report, err := h.delivery.Broadcast(c.Request().Context(), record, toSender(req.Sender))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingDto.BroadcastResponse{
		SuccessCount: report.SuccessCount,
		Total:        report.Total,
		Failed:       report.Failed,
	})
}

func toSender(req meetingDto.SenderRequest) entities.Sender {
	return entities.Sender{Name: req.Name, Email: req.Email}
}
