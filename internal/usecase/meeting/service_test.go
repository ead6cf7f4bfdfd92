package meeting

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/ross7390/meeting-maestro/errors"
	"github.com/ross7390/meeting-maestro/internal/domain/entities"
	"github.com/ross7390/meeting-maestro/internal/infrastructure/cache"
	pkgvalidator "github.com/ross7390/meeting-maestro/pkg/validator"
)

func newTestService() *Service {
	svc := NewService(cache.NewMemoryStore(0), pkgvalidator.New(), zap.NewNop())
	svc.now = func() time.Time {
		return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.Local)
	}
	return svc
}

func sampleRecord() *entities.MeetingRecord {
	return &entities.MeetingRecord{
		Title: "Sprint Planning",
		Date:  "06/10/2025",
		Participants: []entities.Participant{
			{Name: "Ada Lovelace", Role: "Engineer"},
			{Name: "Grace Hopper", Role: "Manager", Email: "grace@navy.mil"},
		},
		Summary:      "Planned the sprint.",
		KeyDecisions: []string{"Ship v2"},
		ActionItems: []entities.ActionItem{
			{Person: "Ada Lovelace", Task: "draft the roadmap", DueDate: "12/31/2025"},
			{Person: "Grace Hopper", Task: "report delivered", DueDate: "01/01/2025"},
		},
	}
}

func TestCreate_SynthesizesEmailsAndClassifies(t *testing.T) {
	svc := newTestService()

	id, record, err := svc.Create(context.Background(), sampleRecord())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("empty session id")
	}

	if record.Participants[0].Email != "ada.lovelace@example.com" {
		t.Fatalf("synthesized email = %q", record.Participants[0].Email)
	}
	if record.Participants[1].Email != "grace@navy.mil" {
		t.Fatalf("existing email overwritten: %q", record.Participants[1].Email)
	}
	if record.ActionItems[0].Status != entities.ActionItemStatusPending {
		t.Fatalf("item 0 status = %q", record.ActionItems[0].Status)
	}
	if record.ActionItems[1].Status != entities.ActionItemStatusCompleted {
		t.Fatalf("item 1 status = %q", record.ActionItems[1].Status)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	svc := newTestService()

	original := sampleRecord()
	original.ActionItems[0].Editing = true

	id, _, err := svc.Create(context.Background(), original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loaded.Title != "Sprint Planning" || loaded.Date != "06/10/2025" || loaded.Summary != "Planned the sprint." {
		t.Fatalf("core fields lost: %+v", loaded)
	}
	if len(loaded.KeyDecisions) != 1 || loaded.KeyDecisions[0] != "Ship v2" {
		t.Fatalf("key decisions lost: %+v", loaded.KeyDecisions)
	}
	want := entities.Participant{Name: "Ada Lovelace", Role: "Engineer", Email: "ada.lovelace@example.com"}
	if loaded.Participants[0] != want {
		t.Fatalf("participant not reduced to name/role/email: %+v", loaded.Participants[0])
	}
	if loaded.ActionItems[0].Editing {
		t.Fatal("transient editing flag persisted")
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.Get(context.Background(), "missing")
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_MEETING_NOT_FOUND {
		t.Fatalf("expected MEETING_NOT_FOUND, got %v", err)
	}
}

func TestUpdateParticipantEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	id, _, _ := svc.Create(ctx, sampleRecord())

	record, err := svc.UpdateParticipantEmail(ctx, id, 0, "ada@computing.org")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Participants[0].Email != "ada@computing.org" {
		t.Fatalf("email = %q", record.Participants[0].Email)
	}

	// Mutation is persisted before the call returns.
	loaded, _ := svc.Get(ctx, id)
	if loaded.Participants[0].Email != "ada@computing.org" {
		t.Fatalf("persisted email = %q", loaded.Participants[0].Email)
	}
}

func TestUpdateParticipantEmail_InvalidShape(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	id, _, _ := svc.Create(ctx, sampleRecord())

	_, err := svc.UpdateParticipantEmail(ctx, id, 0, "not-an-email")
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_MEETING_INVALID_EMAIL {
		t.Fatalf("expected MEETING_INVALID_EMAIL, got %v", err)
	}

	// Failed validation leaves the persisted copy untouched.
	loaded, _ := svc.Get(ctx, id)
	if loaded.Participants[0].Email != "ada.lovelace@example.com" {
		t.Fatalf("record mutated after failed validation: %q", loaded.Participants[0].Email)
	}
}

func TestUpsertActionItem_ReassignsAndPersists(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	id, _, _ := svc.Create(ctx, sampleRecord())

	record, err := svc.UpsertActionItem(ctx, id, 0, entities.ActionItem{
		Person:  "Grace Hopper",
		Task:    "draft the roadmap",
		DueDate: "12/31/2025",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ActionItems[0].Person != "Grace Hopper" {
		t.Fatalf("person = %q", record.ActionItems[0].Person)
	}
	// Omitted status keeps the existing one rather than re-deriving.
	if record.ActionItems[0].Status != entities.ActionItemStatusPending {
		t.Fatalf("status = %q", record.ActionItems[0].Status)
	}
}

func TestUpsertActionItem_IndexOutOfRange(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	id, _, _ := svc.Create(ctx, sampleRecord())

	if _, err := svc.UpsertActionItem(ctx, id, 5, entities.ActionItem{Task: "x"}); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
}

func TestAddActionItem_Defaults(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	id, _, _ := svc.Create(ctx, sampleRecord())

	record, err := svc.AddActionItem(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	added := record.ActionItems[len(record.ActionItems)-1]
	if added.Task != "New task" {
		t.Fatalf("task = %q", added.Task)
	}
	if added.DueDate != "06/15/2025" {
		t.Fatalf("due date = %q", added.DueDate)
	}
	if added.Status != entities.ActionItemStatusPending {
		t.Fatalf("status = %q", added.Status)
	}
}

func TestSetActionItemStatus_ExplicitSurvivesReload(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	id, _, _ := svc.Create(ctx, sampleRecord())

	if _, err := svc.SetActionItemStatus(ctx, id, 0, entities.ActionItemStatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, _ := svc.Get(ctx, id)
	if loaded.ActionItems[0].Status != entities.ActionItemStatusCompleted {
		t.Fatalf("explicit status re-derived on load: %q", loaded.ActionItems[0].Status)
	}
}

func TestSetActionItemStatus_RejectsUnknown(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	id, _, _ := svc.Create(ctx, sampleRecord())

	if _, err := svc.SetActionItemStatus(ctx, id, 0, "Blocked"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}
