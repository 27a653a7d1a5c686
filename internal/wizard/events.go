package wizard

import "heating_leads/internal/models"

// EventType names a discrete user action.
type EventType string

const (
	EventStart         EventType = "start"
	EventAnswer        EventType = "answer"
	EventNext          EventType = "next"
	EventBack          EventType = "back"
	EventCalculate     EventType = "calculate"
	EventSubmitContact EventType = "submit_contact"
	EventContinue      EventType = "continue"
	EventReset         EventType = "reset"
)

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	switch t {
	case EventStart, EventAnswer, EventNext, EventBack, EventCalculate,
		EventSubmitContact, EventContinue, EventReset:
		return true
	}
	return false
}

// Answers carries questionnaire fields the visitor changed. Nil fields are left alone.
type Answers struct {
	Ownership            *models.OwnershipType `json:"ownership_type,omitempty"`
	BuildingSizeM2       *float64              `json:"building_size_m2,omitempty"`
	HeatingSystem        *models.HeatingSystem `json:"heating_system,omitempty"`
	CurrentConsumption   *float64              `json:"current_consumption,omitempty"`
	ProjectedConsumption *float64              `json:"projected_consumption,omitempty"`
}

// Event is one user action. Answers may ride along with answer, next and
// calculate; Contact is read by submit_contact.
type Event struct {
	Type    EventType           `json:"type"`
	Answers *Answers            `json:"answers,omitempty"`
	Contact *models.ContactInfo `json:"contact,omitempty"`
}
