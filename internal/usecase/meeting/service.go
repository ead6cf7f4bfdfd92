package meeting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/ross7390/meeting-maestro/errors"
	"github.com/ross7390/meeting-maestro/internal/domain/entities"
	"github.com/ross7390/meeting-maestro/internal/infrastructure/cache"
	pkgvalidator "github.com/ross7390/meeting-maestro/pkg/validator"
)

// Service is the single source of truth for meeting records during a
// session. Every mutation read-modify-writes the whole record back to the
// session store before returning, so the in-flight copy and the persisted
// copy are always consistent after a successful call.
type Service struct {
	store     cache.SessionStore
	validator *pkgvalidator.CustomValidator
	logger    *zap.Logger

	// Serializes mutations so a persistence step always completes before a
	// dependent read observes it.
	mu sync.Mutex

	now func() time.Time
}

// NewService creates a new meeting record service
func NewService(store cache.SessionStore, v *pkgvalidator.CustomValidator, logger *zap.Logger) *Service {
	return &Service{
		store:     store,
		validator: v,
		logger:    logger,
		now:       time.Now,
	}
}

// NewSessionID returns a creation-time token: unix milliseconds plus a short
// random suffix against same-millisecond uploads.
func NewSessionID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

// Create enriches a freshly extracted record and persists it under a new
// session id.
func (s *Service) Create(ctx context.Context, record *entities.MeetingRecord) (string, *entities.MeetingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID := NewSessionID(s.now())
	s.enrich(record)

	if err := s.store.Save(ctx, sessionID, record.Sanitized()); err != nil {
		return "", nil, apperrors.ErrStoreFailed("save", err)
	}

	s.logger.Info("meeting.created",
		zap.String("session_id", sessionID),
		zap.String("title", record.Title),
		zap.Int("participants", len(record.Participants)),
		zap.Int("action_items", len(record.ActionItems)),
	)

	return sessionID, record, nil
}

// Get loads a record and applies the idempotent load-time enrichment:
// missing participant emails are synthesized and items without an explicit
// status are classified. Enrichment does not write back to the store.
func (s *Service) Get(ctx context.Context, sessionID string) (*entities.MeetingRecord, error) {
	record, found, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, apperrors.ErrStoreFailed("load", err)
	}
	if !found {
		return nil, apperrors.ErrMeetingNotFound(sessionID)
	}

	s.enrich(record)
	return record, nil
}

// UpdateParticipantEmail validates and applies a participant email edit.
// Failed validation leaves both the record and the persisted copy untouched.
func (s *Service) UpdateParticipantEmail(ctx context.Context, sessionID string, index int, email string) (*entities.MeetingRecord, error) {
	if !s.validator.ValidEmail(email) {
		return nil, apperrors.ErrInvalidEmail(email)
	}

	return s.mutate(ctx, sessionID, func(record *entities.MeetingRecord) error {
		if index < 0 || index >= len(record.Participants) {
			return apperrors.ErrInvalidArgument(fmt.Sprintf("participant index %d out of range", index))
		}
		record.Participants[index].Email = email
		return nil
	})
}

// UpsertActionItem replaces the fields of the action item at index.
func (s *Service) UpsertActionItem(ctx context.Context, sessionID string, index int, item entities.ActionItem) (*entities.MeetingRecord, error) {
	if item.Status != "" && !entities.ValidStatus(item.Status) {
		return nil, apperrors.ErrInvalidArgument(fmt.Sprintf("unknown status %q", item.Status))
	}

	return s.mutate(ctx, sessionID, func(record *entities.MeetingRecord) error {
		if index < 0 || index >= len(record.ActionItems) {
			return apperrors.ErrInvalidArgument(fmt.Sprintf("action item index %d out of range", index))
		}
		existing := record.ActionItems[index]
		if item.Status == "" {
			item.Status = existing.Status
		}
		item.Editing = false
		record.ActionItems[index] = item
		return nil
	})
}

// AddActionItem appends a new task with the default fields.
func (s *Service) AddActionItem(ctx context.Context, sessionID string) (*entities.MeetingRecord, error) {
	return s.mutate(ctx, sessionID, func(record *entities.MeetingRecord) error {
		record.ActionItems = append(record.ActionItems, entities.ActionItem{
			Task:    "New task",
			DueDate: FormatDate(s.now()),
			Status:  entities.ActionItemStatusPending,
		})
		return nil
	})
}

// SetActionItemStatus sets an explicit status on one item. Explicit statuses
// are never overridden by the classifier afterwards.
func (s *Service) SetActionItemStatus(ctx context.Context, sessionID string, index int, status entities.ActionItemStatus) (*entities.MeetingRecord, error) {
	if !entities.ValidStatus(status) {
		return nil, apperrors.ErrInvalidArgument(fmt.Sprintf("unknown status %q", status))
	}

	return s.mutate(ctx, sessionID, func(record *entities.MeetingRecord) error {
		if index < 0 || index >= len(record.ActionItems) {
			return apperrors.ErrInvalidArgument(fmt.Sprintf("action item index %d out of range", index))
		}
		record.ActionItems[index].Status = status
		return nil
	})
}

// mutate is the shared read-modify-write path for all edits: load, enrich,
// apply, persist the sanitized copy, and only then return.
func (s *Service) mutate(ctx context.Context, sessionID string, apply func(*entities.MeetingRecord) error) (*entities.MeetingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, found, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, apperrors.ErrStoreFailed("load", err)
	}
	if !found {
		return nil, apperrors.ErrMeetingNotFound(sessionID)
	}

	s.enrich(record)

	if err := apply(record); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, sessionID, record.Sanitized()); err != nil {
		return nil, apperrors.ErrStoreFailed("save", err)
	}

	s.logger.Info("meeting.updated", zap.String("session_id", sessionID))
	return record, nil
}

// enrich synthesizes missing participant emails and classifies statuses for
// items that do not already carry one. Idempotent.
func (s *Service) enrich(record *entities.MeetingRecord) {
	for i := range record.Participants {
		if record.Participants[i].Email == "" && record.Participants[i].Name != "" {
			record.Participants[i].Email = entities.SynthesizeEmail(record.Participants[i].Name)
		}
	}

	now := s.now()
	for i := range record.ActionItems {
		if record.ActionItems[i].Status == "" {
			record.ActionItems[i].Status = ClassifyStatus(record.ActionItems[i], now)
		}
	}
}
