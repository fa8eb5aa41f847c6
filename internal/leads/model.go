package leads

import "time"

// Lead is one captured contact submission.
type Lead struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Company       string    `json:"company,omitempty"`
	Message       string    `json:"message"`
	Source        string    `json:"source"`
	PriorityLabel string    `json:"priorityLabel,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

const SourceContact = "contact"
