package entities

// EmailDraft is the composed subject/body pair for a recipient selection.
// Drafts are ephemeral: recomputed whenever the selection or an action item
// changes, never persisted with the record.
type EmailDraft struct {
	Subject            string   `json:"subject"`
	Body               string   `json:"body"`
	SelectedRecipients []string `json:"selectedRecipients"`
}

// Sender identifies the person sending a follow-up email.
type Sender struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DisplayName returns the sender's name, falling back to the address.
func (s Sender) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Email
}

// BroadcastReport summarizes a send-to-all run. Failed entries are
// human-readable, e.g. "Jane Doe (invalid email)".
type BroadcastReport struct {
	SuccessCount int      `json:"successCount"`
	Total        int      `json:"total"`
	Failed       []string `json:"failed"`
}
