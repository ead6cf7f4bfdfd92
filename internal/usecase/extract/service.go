package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	apperrors "github.com/ross7390/meeting-maestro/errors"
	"github.com/ross7390/meeting-maestro/internal/domain/entities"
)

// Generator is the generative-language API surface the service depends on.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Service turns a normalized transcript into a MeetingRecord via one round
// trip to the generative API.
type Service struct {
	generator Generator
}

// NewService creates a new extraction service
func NewService(generator Generator) *Service {
	return &Service{generator: generator}
}

// Extract builds the instruction, issues exactly one request, and parses the
// meeting record out of the free-text response. No retry on any failure.
func (s *Service) Extract(ctx context.Context, transcriptText string) (*entities.MeetingRecord, error) {
	text, err := s.generator.GenerateContent(ctx, BuildPrompt(transcriptText))
	if err != nil {
		return nil, err
	}
	return ParseRecord(text)
}

// ParseRecord runs the two-stage pipeline over raw model output: best-effort
// JSON span extraction, then a strict decode into the record shape. Span
// failures and schema failures surface as distinct errors.
func ParseRecord(text string) (*entities.MeetingRecord, error) {
	span, ok := extractJSONSpan(text)
	if !ok {
		return nil, apperrors.ErrUnparsableResponse(fmt.Errorf("no JSON object in model output"))
	}

	var record entities.MeetingRecord
	if err := json.Unmarshal([]byte(span), &record); err != nil {
		return nil, apperrors.ErrUnparsableResponse(err)
	}

	if err := validateRecord(&record); err != nil {
		return nil, apperrors.ErrSchemaMismatch(err)
	}

	return &record, nil
}

// extractJSONSpan returns the text between the first '{' and the last '}'.
// The model often wraps the object in prose, so everything outside that span
// is discarded.
func extractJSONSpan(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// validateRecord enforces the named required fields and initializes the
// optional collections so downstream code never sees nil.
func validateRecord(record *entities.MeetingRecord) error {
	if record.Title == "" {
		return fmt.Errorf("missing title in response")
	}

	if record.Participants == nil {
		record.Participants = make([]entities.Participant, 0)
	}
	if record.KeyDecisions == nil {
		record.KeyDecisions = make([]string, 0)
	}
	if record.ActionItems == nil {
		record.ActionItems = make([]entities.ActionItem, 0)
	}

	return nil
}
