package cache

import (
	"context"

	"github.com/ross7390/meeting-maestro/internal/domain/entities"
)

// keyPrefix matches the session keying scheme: one entry per upload session.
const keyPrefix = "meeting_result_"

// SessionStore persists one JSON-serialized MeetingRecord per session id.
// Save overwrites the whole entry; there is no partial update.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, record *entities.MeetingRecord) error
	Load(ctx context.Context, sessionID string) (*entities.MeetingRecord, bool, error)
	Delete(ctx context.Context, sessionID string) error
}

func sessionKey(sessionID string) string {
	return keyPrefix + sessionID
}
