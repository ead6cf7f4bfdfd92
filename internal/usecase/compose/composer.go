package compose

import (
	"strings"

	"github.com/ross7390/meeting-maestro/internal/domain/entities"
)

// RecipientPlaceholder is left in the greeting when no recipient is selected.
const RecipientPlaceholder = "[Recipient]"

// bodyTemplate is the follow-up email with named slots. Rendering is
// explicit slot substitution, so composing is idempotent: the same record
// and selection always produce the same output, and a re-run never scans the
// previous output for marker phrases.
const bodyTemplate = `Hello {{greeting}},

I hope this email finds you well. I'm following up on our recent meeting: "{{title}}" held on {{date}}.

Here's a brief summary of what we discussed:
{{summary}}

Key decisions made:
{{decisions}}

{{actionItems}}

Please let me know if you have any questions or need any clarification.

Best regards,
{{sender}}`

// Status markers used in composed bodies.
const (
	markerCompleted  = "✅ [COMPLETED]"
	markerInProgress = "🔄 [IN PROGRESS]"
	markerPending    = "⏳ [PENDING]"
)

// Composer produces recipient-scoped email drafts from a meeting record. It
// only reads the record; edits are routed through the record service.
type Composer struct{}

// NewComposer creates a new Composer instance
func NewComposer() *Composer {
	return &Composer{}
}

// Compose renders the draft for the given recipient selection. Zero
// recipients produce the unscoped default template, one recipient a
// personalized body with that recipient's items plus everyone else's for
// awareness, and several recipients an assignment table grouped by person.
func (c *Composer) Compose(record *entities.MeetingRecord, selectedRecipients []string, sender entities.Sender) entities.EmailDraft {
	var greeting, actionItems string

	switch len(selectedRecipients) {
	case 0:
		greeting = RecipientPlaceholder
		actionItems = "Your action items:\n" + listAllItems(record)
	case 1:
		greeting = selectedRecipients[0]
		actionItems = "Your action items:\n" + recipientItems(record, selectedRecipients[0])
	default:
		greeting = strings.Join(selectedRecipients, ", ")
		actionItems = "Task Assignments:\n\n" + assignmentTable(record, selectedRecipients)
	}

	return entities.EmailDraft{
		Subject:            "Follow-up: " + record.Title,
		Body:               render(record, greeting, actionItems, sender),
		SelectedRecipients: append([]string(nil), selectedRecipients...),
	}
}

// ComposePersonal renders the per-participant body used by broadcast sends:
// the recipient's own items only, without status annotations.
func (c *Composer) ComposePersonal(record *entities.MeetingRecord, recipient string, sender entities.Sender) entities.EmailDraft {
	lines := make([]string, 0)
	for _, item := range record.ItemsForPerson(recipient) {
		lines = append(lines, "- "+item.Task+" (Due: "+item.DueDate+")")
	}

	actionItems := "Your action items:\n" + strings.Join(lines, "\n")

	return entities.EmailDraft{
		Subject:            "Follow-up: " + record.Title,
		Body:               render(record, recipient, actionItems, sender),
		SelectedRecipients: []string{recipient},
	}
}

// render substitutes every slot of the body template.
func render(record *entities.MeetingRecord, greeting, actionItems string, sender entities.Sender) string {
	senderName := sender.DisplayName()
	if senderName == "" {
		senderName = "[Your Name]"
	}

	decisions := make([]string, 0, len(record.KeyDecisions))
	for _, d := range record.KeyDecisions {
		decisions = append(decisions, "- "+d)
	}

	return strings.NewReplacer(
		"{{greeting}}", greeting,
		"{{title}}", record.Title,
		"{{date}}", record.Date,
		"{{summary}}", record.Summary,
		"{{decisions}}", strings.Join(decisions, "\n"),
		"{{actionItems}}", actionItems,
		"{{sender}}", senderName,
	).Replace(bodyTemplate)
}

func statusMarker(status entities.ActionItemStatus) string {
	switch status {
	case entities.ActionItemStatusCompleted:
		return markerCompleted
	case entities.ActionItemStatusInProgress:
		return markerInProgress
	default:
		return markerPending
	}
}

func shortMarker(status entities.ActionItemStatus) string {
	switch status {
	case entities.ActionItemStatusCompleted:
		return "✅"
	case entities.ActionItemStatusInProgress:
		return "🔄"
	default:
		return "⏳"
	}
}

// listAllItems renders every action item unfiltered, for the default
// template.
func listAllItems(record *entities.MeetingRecord) string {
	lines := make([]string, 0, len(record.ActionItems))
	for _, item := range record.ActionItems {
		lines = append(lines, "- "+item.Task+" (Due: "+item.DueDate+")")
	}
	return strings.Join(lines, "\n")
}

// recipientItems renders the recipient's own status-annotated items followed
// by everyone else's, grouped by assignee for situational awareness.
func recipientItems(record *entities.MeetingRecord, recipient string) string {
	var b strings.Builder

	own := record.ItemsForPerson(recipient)
	if len(own) > 0 {
		for _, item := range own {
			b.WriteString("- " + item.Task + " (Due: " + item.DueDate + ") " + statusMarker(item.Status) + "\n")
		}
	} else {
		b.WriteString("You have no assigned tasks from this meeting.\n")
	}

	others := make([]entities.ActionItem, 0)
	for _, item := range record.ActionItems {
		if item.Person != "" && !strings.EqualFold(item.Person, recipient) {
			others = append(others, item)
		}
	}
	if len(others) > 0 {
		b.WriteString("\nTasks assigned to others:\n")
		for _, person := range assigneesInOrder(others) {
			b.WriteString(person + ":\n")
			for _, item := range others {
				if item.Person == person {
					b.WriteString("  " + shortMarker(item.Status) + " " + item.Task + " (Due: " + item.DueDate + ")\n")
				}
			}
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// assignmentTable renders the multi-recipient view: selected assignees'
// tasks grouped by person, then an Unassigned bucket for items with an empty
// person field.
func assignmentTable(record *entities.MeetingRecord, selectedRecipients []string) string {
	var b strings.Builder

	b.WriteString("TASK ASSIGNMENTS\n")
	b.WriteString("---------------\n\n")

	selected := make(map[string]bool, len(selectedRecipients))
	for _, name := range selectedRecipients {
		selected[name] = true
	}

	for _, person := range assigneesInOrder(record.ActionItems) {
		if !selected[person] {
			continue
		}
		b.WriteString(person + ":\n")
		for _, item := range record.ActionItems {
			if item.Person == person {
				b.WriteString("- " + item.Task + " (Due: " + item.DueDate + ") " + statusMarker(item.Status) + "\n")
			}
		}
		b.WriteString("\n")
	}

	unassigned := make([]entities.ActionItem, 0)
	for _, item := range record.ActionItems {
		if strings.TrimSpace(item.Person) == "" {
			unassigned = append(unassigned, item)
		}
	}
	if len(unassigned) > 0 {
		b.WriteString("Unassigned Tasks:\n")
		for _, item := range unassigned {
			b.WriteString("- " + item.Task + " (Due: " + item.DueDate + ")\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}

// assigneesInOrder returns distinct non-empty assignees in first-seen order.
func assigneesInOrder(items []entities.ActionItem) []string {
	seen := make(map[string]bool)
	order := make([]string, 0)
	for _, item := range items {
		if item.Person == "" || seen[item.Person] {
			continue
		}
		seen[item.Person] = true
		order = append(order, item.Person)
	}
	return order
}
