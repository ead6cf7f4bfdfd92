package entities

import "strings"

// ActionItemStatus is the lifecycle state of an action item.
type ActionItemStatus string

const (
	ActionItemStatusPending    ActionItemStatus = "Pending"
	ActionItemStatusInProgress ActionItemStatus = "In Progress"
	ActionItemStatusCompleted  ActionItemStatus = "Completed"
)

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s ActionItemStatus) bool {
	switch s {
	case ActionItemStatusPending, ActionItemStatusInProgress, ActionItemStatusCompleted:
		return true
	}
	return false
}

// Participant is one attendee of the meeting. Email may be synthesized from
// the name when the extraction output did not carry one.
type Participant struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

// SynthesizedEmailDomain is appended when deriving an address from a name.
const SynthesizedEmailDomain = "example.com"

// SynthesizeEmail derives a deterministic placeholder address from a
// participant name: lower-cased, whitespace replaced with dots.
func SynthesizeEmail(name string) string {
	local := strings.Join(strings.Fields(strings.ToLower(name)), ".")
	return local + "@" + SynthesizedEmailDomain
}

// ActionItem is a task extracted from the meeting. DueDate is MM/DD/YYYY when
// the model produced a date, otherwise free text. Editing is a transient UI
// flag and is stripped on save.
type ActionItem struct {
	Person  string           `json:"person"`
	Task    string           `json:"task"`
	DueDate string           `json:"dueDate"`
	Status  ActionItemStatus `json:"status,omitempty"`
	Editing bool             `json:"editing,omitempty"`
}

// MeetingRecord is the unit of persistence: one record per upload session.
type MeetingRecord struct {
	Title        string        `json:"title"`
	Date         string        `json:"date"`
	Participants []Participant `json:"participants"`
	Summary      string        `json:"summary"`
	KeyDecisions []string      `json:"keyDecisions"`
	ActionItems  []ActionItem  `json:"actionItems"`
}

// ParticipantByName returns the participant with the given exact name.
func (r *MeetingRecord) ParticipantByName(name string) (Participant, bool) {
	for _, p := range r.Participants {
		if p.Name == name {
			return p, true
		}
	}
	return Participant{}, false
}

// ItemsForPerson returns the action items assigned to name, matched
// case-insensitively against the item's person field.
func (r *MeetingRecord) ItemsForPerson(name string) []ActionItem {
	items := make([]ActionItem, 0)
	for _, item := range r.ActionItems {
		if strings.EqualFold(item.Person, name) {
			items = append(items, item)
		}
	}
	return items
}

// Sanitized returns a copy ready for persistence: participants reduced to
// {name, role, email} and transient action-item flags cleared.
func (r *MeetingRecord) Sanitized() *MeetingRecord {
	out := &MeetingRecord{
		Title:        r.Title,
		Date:         r.Date,
		Summary:      r.Summary,
		KeyDecisions: append([]string(nil), r.KeyDecisions...),
	}
	out.Participants = make([]Participant, len(r.Participants))
	for i, p := range r.Participants {
		out.Participants[i] = Participant{Name: p.Name, Role: p.Role, Email: p.Email}
	}
	out.ActionItems = make([]ActionItem, len(r.ActionItems))
	for i, item := range r.ActionItems {
		item.Editing = false
		out.ActionItems[i] = item
	}
	return out
}
