package meeting

// UpdateParticipantEmailRequest updates one participant's email address.
type UpdateParticipantEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateActionItemRequest carries edited action item fields. Empty fields
// keep the stored value.
type UpdateActionItemRequest struct {
	Person  string `json:"person"`
	Task    string `json:"task"`
	DueDate string `json:"dueDate"`
	Status  string `json:"status" validate:"omitempty,oneof=Pending 'In Progress' Completed"`
}

// SetStatusRequest sets an explicit action item status.
type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending 'In Progress' Completed"`
}

// SenderRequest identifies the person sending email.
type SenderRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
}

// PreviewRequest selects recipients for a composed draft.
type PreviewRequest struct {
	SelectedRecipients []string      `json:"selectedRecipients"`
	Sender             SenderRequest `json:"sender"`
}

// SendRequest delivers a (possibly edited) draft to the selected recipients.
type SendRequest struct {
	SelectedRecipients []string      `json:"selectedRecipients"`
	Sender             SenderRequest `json:"sender" validate:"required"`
	Subject            string        `json:"subject"`
	Body               string        `json:"body"`
}

// TestSendRequest sends a verification email to the sender themselves.
type TestSendRequest struct {
	Sender SenderRequest `json:"sender" validate:"required"`
}

// BroadcastRequest sends a personalized email to every participant.
type BroadcastRequest struct {
	Sender SenderRequest `json:"sender" validate:"required"`
}
