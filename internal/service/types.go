package service

import (
	"time"

	"heating_leads/internal/models"
	"heating_leads/internal/wizard"
)

// Outcome is what a dispatched event leaves behind. On a rejected event
// Session is the unchanged session and Effects may still hold a notification.
type Outcome struct {
	Session models.Session         `json:"session"`
	Effects []wizard.Effect        `json:"effects"`
	Summary *models.ResultsSummary `json:"summary,omitempty"`
	Actions []wizard.EventType     `json:"actions"`
}

// JournalFilter narrows journal queries by time range and type.
type JournalFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "START", "CALCULATE", "SUBMIT_CONTACT", "EXPIRED", ...
}
