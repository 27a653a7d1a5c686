package models

import "time"

// Journal event types.
const (
	EventCreated       = "CREATED"
	EventStart         = "START"
	EventAnswer        = "ANSWER"
	EventNext          = "NEXT"
	EventBack          = "BACK"
	EventCalculate     = "CALCULATE"
	EventSubmitContact = "SUBMIT_CONTACT"
	EventContinue      = "CONTINUE"
	EventReset         = "RESET"
	EventExpired       = "EXPIRED"
)

// WizardEvent is a single journal entry.
type WizardEvent struct {
	EventID     string    `json:"event_id"`
	SessionID   string    `json:"session_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // START | NEXT | CALCULATE | SUBMIT_CONTACT | RESET | EXPIRED ...
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
