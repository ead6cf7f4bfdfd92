package delivery

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/ross7390/meeting-maestro/errors"
	"github.com/ross7390/meeting-maestro/internal/domain/entities"
	"github.com/ross7390/meeting-maestro/internal/infrastructure/external/emailjs"
	"github.com/ross7390/meeting-maestro/internal/usecase/compose"
	pkgvalidator "github.com/ross7390/meeting-maestro/pkg/validator"
)

// Mailer is the delivery primitive all three send shapes share.
type Mailer interface {
	Send(ctx context.Context, params emailjs.TemplateParams) error
}

// Service submits composed email content to the delivery API: one call for a
// single/multi-recipient send, one self-test call, and one call per
// participant for a broadcast.
type Service struct {
	mailer    Mailer
	composer  *compose.Composer
	validator *pkgvalidator.CustomValidator
	logger    *zap.Logger

	now func() time.Time
}

// NewService creates a new delivery service
func NewService(mailer Mailer, composer *compose.Composer, v *pkgvalidator.CustomValidator, logger *zap.Logger) *Service {
	return &Service{
		mailer:    mailer,
		composer:  composer,
		validator: v,
		logger:    logger,
		now:       time.Now,
	}
}

// Send delivers one email to the selected recipients, comma-joining their
// validated addresses into a single call. Recipients whose participant entry
// is missing or carries an invalid address are dropped; if none remain the
// send fails.
func (s *Service) Send(ctx context.Context, record *entities.MeetingRecord, selectedRecipients []string, sender entities.Sender, draft entities.EmailDraft) error {
	if !s.validator.ValidEmail(sender.Email) {
		return apperrors.ErrInvalidEmail(sender.Email)
	}

	addresses := make([]string, 0, len(selectedRecipients))
	names := make([]string, 0, len(selectedRecipients))
	for _, name := range selectedRecipients {
		participant, ok := record.ParticipantByName(name)
		if !ok || !s.validator.ValidEmail(participant.Email) {
			s.logger.Warn("delivery.recipient.skipped", zap.String("name", name))
			continue
		}
		addresses = append(addresses, participant.Email)
		names = append(names, name)
	}
	if len(addresses) == 0 {
		return apperrors.ErrNoRecipients()
	}

	recipientName := "All"
	if len(names) == 1 {
		recipientName = names[0]
	}

	err := s.mailer.Send(ctx, emailjs.TemplateParams{
		ToEmail:       strings.Join(addresses, ","),
		ToName:        strings.Join(names, ", "),
		FromName:      sender.DisplayName(),
		FromEmail:     sender.Email,
		Subject:       draft.Subject,
		Message:       draft.Body,
		MeetingTitle:  record.Title,
		MeetingDate:   record.Date,
		RecipientName: recipientName,
	})
	if err != nil {
		return err
	}

	s.logger.Info("delivery.sent",
		zap.Int("recipients", len(addresses)),
		zap.String("subject", draft.Subject),
	)
	return nil
}

// SendTest delivers a fixed verification email to the sender's own address.
func (s *Service) SendTest(ctx context.Context, sender entities.Sender) error {
	if !s.validator.ValidEmail(sender.Email) {
		return apperrors.ErrInvalidEmail(sender.Email)
	}

	return s.mailer.Send(ctx, emailjs.TemplateParams{
		ToEmail:       sender.Email,
		ToName:        sender.DisplayName(),
		FromName:      sender.DisplayName(),
		FromEmail:     sender.Email,
		Subject:       "Meeting Maestro - Test Email",
		Message:       "This is a test email from Meeting Maestro to verify that email sending is working correctly.",
		MeetingTitle:  "Test Meeting",
		MeetingDate:   s.now().Format("01/02/2006"),
		RecipientName: senderOrFallback(sender),
	})
}

// Broadcast delivers a personalized email to every participant with a valid
// address, one call per participant, sequentially. Participants with
// missing or invalid addresses are skipped into the failure list; a failed
// send never cancels or rolls back the other sends.
func (s *Service) Broadcast(ctx context.Context, record *entities.MeetingRecord, sender entities.Sender) (entities.BroadcastReport, error) {
	report := entities.BroadcastReport{
		Total:  len(record.Participants),
		Failed: make([]string, 0),
	}

	if !s.validator.ValidEmail(sender.Email) {
		return report, apperrors.ErrInvalidEmail(sender.Email)
	}

	for _, participant := range record.Participants {
		if !s.validator.ValidEmail(participant.Email) {
			report.Failed = append(report.Failed, participant.Name+" (invalid email)")
			continue
		}

		draft := s.composer.ComposePersonal(record, participant.Name, sender)

		err := s.mailer.Send(ctx, emailjs.TemplateParams{
			ToEmail:       participant.Email,
			ToName:        participant.Name,
			FromName:      sender.DisplayName(),
			FromEmail:     sender.Email,
			Subject:       draft.Subject,
			Message:       draft.Body,
			MeetingTitle:  record.Title,
			MeetingDate:   record.Date,
			RecipientName: participant.Name,
		})
		if err != nil {
			s.logger.Warn("delivery.broadcast.failed",
				zap.String("participant", participant.Name),
				zap.Error(err),
			)
			report.Failed = append(report.Failed, participant.Name)
			continue
		}
		report.SuccessCount++
	}

	s.logger.Info("delivery.broadcast.done",
		zap.Int("success", report.SuccessCount),
		zap.Int("failed", len(report.Failed)),
	)
	return report, nil
}

func senderOrFallback(sender entities.Sender) string {
	if sender.Name != "" {
		return sender.Name
	}
	return "there"
}
