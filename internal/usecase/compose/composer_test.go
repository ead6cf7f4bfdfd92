package compose

import (
	"strings"
	"testing"

	"github.com/ross7390/meeting-maestro/internal/domain/entities"
)

func composerRecord() *entities.MeetingRecord {
	return &entities.MeetingRecord{
		Title: "Quarterly Review",
		Date:  "06/10/2025",
		Participants: []entities.Participant{
			{Name: "Ada Lovelace", Role: "Engineer", Email: "ada.lovelace@example.com"},
			{Name: "Grace Hopper", Role: "Manager", Email: "grace@navy.mil"},
		},
		Summary:      "Reviewed the quarter.",
		KeyDecisions: []string{"Hire two engineers", "Freeze scope"},
		ActionItems: []entities.ActionItem{
			{Person: "Ada Lovelace", Task: "draft the roadmap", DueDate: "12/31/2025", Status: entities.ActionItemStatusPending},
			{Person: "Grace Hopper", Task: "report delivered", DueDate: "01/01/2025", Status: entities.ActionItemStatusCompleted},
			{Person: "", Task: "book venue", DueDate: "07/01/2025", Status: entities.ActionItemStatusPending},
		},
	}
}

var sender = entities.Sender{Name: "Alan Turing", Email: "alan@bletchley.uk"}

func TestCompose_ZeroRecipients(t *testing.T) {
	draft := NewComposer().Compose(composerRecord(), nil, sender)

	if draft.Subject != "Follow-up: Quarterly Review" {
		t.Fatalf("subject = %q", draft.Subject)
	}
	if !strings.Contains(draft.Body, "Hello [Recipient],") {
		t.Fatal("placeholder greeting missing")
	}
	// Unscoped default lists every item.
	for _, task := range []string{"draft the roadmap", "report delivered", "book venue"} {
		if !strings.Contains(draft.Body, task) {
			t.Fatalf("default body missing item %q", task)
		}
	}
	if !strings.Contains(draft.Body, "- Hire two engineers\n- Freeze scope") {
		t.Fatal("key decisions not listed")
	}
}

func TestCompose_SingleRecipient(t *testing.T) {
	draft := NewComposer().Compose(composerRecord(), []string{"Ada Lovelace"}, sender)

	if !strings.Contains(draft.Body, "Hello Ada Lovelace,") {
		t.Fatal("greeting not personalized")
	}
	if strings.Contains(draft.Body, "[Recipient]") {
		t.Fatal("placeholder left in personalized body")
	}
	if !strings.Contains(draft.Body, "- draft the roadmap (Due: 12/31/2025) ⏳ [PENDING]") {
		t.Fatalf("own item not annotated:\n%s", draft.Body)
	}
	if !strings.Contains(draft.Body, "Tasks assigned to others:") {
		t.Fatal("awareness section missing")
	}
	if !strings.Contains(draft.Body, "Grace Hopper:\n  ✅ report delivered (Due: 01/01/2025)") {
		t.Fatalf("other assignee's items not grouped:\n%s", draft.Body)
	}
	if !strings.Contains(draft.Body, "Best regards,\nAlan Turing") {
		t.Fatal("sender name missing")
	}
}

func TestCompose_SingleRecipientCaseInsensitiveMatch(t *testing.T) {
	draft := NewComposer().Compose(composerRecord(), []string{"ada lovelace"}, sender)

	if !strings.Contains(draft.Body, "- draft the roadmap (Due: 12/31/2025)") {
		t.Fatal("case-insensitive person match failed")
	}
}

func TestCompose_SingleRecipientWithoutTasks(t *testing.T) {
	record := composerRecord()
	record.ActionItems = record.ActionItems[1:]

	draft := NewComposer().Compose(record, []string{"Ada Lovelace"}, sender)
	if !strings.Contains(draft.Body, "You have no assigned tasks from this meeting.") {
		t.Fatalf("empty-items message missing:\n%s", draft.Body)
	}
}

func TestCompose_MultipleRecipients(t *testing.T) {
	draft := NewComposer().Compose(composerRecord(), []string{"Ada Lovelace", "Grace Hopper"}, sender)

	if !strings.Contains(draft.Body, "Hello Ada Lovelace, Grace Hopper,") {
		t.Fatal("comma-joined greeting missing")
	}
	if !strings.Contains(draft.Body, "TASK ASSIGNMENTS") {
		t.Fatal("assignment table header missing")
	}
	if !strings.Contains(draft.Body, "Ada Lovelace:\n- draft the roadmap (Due: 12/31/2025) ⏳ [PENDING]") {
		t.Fatalf("grouped assignments missing:\n%s", draft.Body)
	}
	if !strings.Contains(draft.Body, "Unassigned Tasks:\n- book venue (Due: 07/01/2025)") {
		t.Fatalf("unassigned bucket missing:\n%s", draft.Body)
	}
}

func TestCompose_MultipleRecipientsFiltersTable(t *testing.T) {
	record := composerRecord()
	record.Participants = append(record.Participants, entities.Participant{Name: "Carol", Role: "Analyst"})
	record.ActionItems = append(record.ActionItems, entities.ActionItem{
		Person: "Carol", Task: "crunch numbers", DueDate: "08/01/2025", Status: entities.ActionItemStatusPending,
	})

	draft := NewComposer().Compose(record, []string{"Ada Lovelace", "Grace Hopper"}, sender)
	if strings.Contains(draft.Body, "crunch numbers") {
		t.Fatal("unselected assignee leaked into the table")
	}
}

func TestCompose_Idempotent(t *testing.T) {
	c := NewComposer()
	record := composerRecord()

	for _, recipients := range [][]string{nil, {"Ada Lovelace"}, {"Ada Lovelace", "Grace Hopper"}} {
		first := c.Compose(record, recipients, sender)
		second := c.Compose(record, recipients, sender)
		if first.Body != second.Body || first.Subject != second.Subject {
			t.Fatalf("compose not idempotent for %d recipients", len(recipients))
		}
	}
}

func TestComposePersonal_PlainItemList(t *testing.T) {
	draft := NewComposer().ComposePersonal(composerRecord(), "Ada Lovelace", sender)

	if !strings.Contains(draft.Body, "Hello Ada Lovelace,") {
		t.Fatal("greeting missing")
	}
	if !strings.Contains(draft.Body, "- draft the roadmap (Due: 12/31/2025)") {
		t.Fatal("own item missing")
	}
	if strings.Contains(draft.Body, "[PENDING]") {
		t.Fatal("broadcast body should not carry status annotations")
	}
	if strings.Contains(draft.Body, "Tasks assigned to others") {
		t.Fatal("broadcast body should not list other assignees")
	}
}

func TestCompose_FallbackSenderName(t *testing.T) {
	draft := NewComposer().Compose(composerRecord(), nil, entities.Sender{})
	if !strings.Contains(draft.Body, "Best regards,\n[Your Name]") {
		t.Fatal("sender placeholder missing")
	}
}
