package meeting

import "github.com/ross7390/meeting-maestro/internal/domain/entities"

// MeetingResponse wraps a stored record with its session id.
type MeetingResponse struct {
	SessionID string                  `json:"session_id"`
	Meeting   *entities.MeetingRecord `json:"meeting"`
}

// PreviewResponse is a composed draft ready for editing.
type PreviewResponse struct {
	Subject            string   `json:"subject"`
	Body               string   `json:"body"`
	SelectedRecipients []string `json:"selectedRecipients"`
}

// SendResponse reports a completed single delivery.
type SendResponse struct {
	Recipients []string `json:"recipients"`
}

// BroadcastResponse reports per-participant delivery results.
type BroadcastResponse struct {
	SuccessCount int      `json:"success_count"`
	Total        int      `json:"total"`
	Failed       []string `json:"failed,omitempty"`
}
