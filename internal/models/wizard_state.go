package models

import "time"

// WizardView is the screen currently shown to the visitor.
type WizardView string

const (
	ViewLanding       WizardView = "landing"
	ViewQuestionnaire WizardView = "questionnaire"
	ViewContact       WizardView = "contact"
	ViewResults       WizardView = "results"
	ViewCompletion    WizardView = "completion"
)

// QuestionStep is the questionnaire sub-step, 1 through 5.
type QuestionStep int

const (
	StepOwnership QuestionStep = iota + 1
	StepBuildingSize
	StepHeatingSystem
	StepCurrentConsumption
	StepProjectedConsumption
)

// FirstStep and LastStep bound the questionnaire.
const (
	FirstStep = StepOwnership
	LastStep  = StepProjectedConsumption
)

// WizardState is the whole per-session state of the wizard.
// Step is only meaningful while View is ViewQuestionnaire.
type WizardState struct {
	View    WizardView         `json:"view"`
	Step    QuestionStep       `json:"step,omitempty"`
	Input   CalculationInput   `json:"input"`
	Result  *CalculationResult `json:"result,omitempty"`
	Contact *ContactInfo       `json:"contact,omitempty"`
}

// Session binds a wizard state to a visitor.
type Session struct {
	ID        string      `json:"id"`
	State     WizardState `json:"state"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Lead is a completed contact submission. Leads are logged, not stored.
type Lead struct {
	ID          string            `json:"id"`
	SessionID   string            `json:"session_id"`
	SubmittedAt time.Time         `json:"submitted_at"`
	Contact     ContactInfo       `json:"contact"`
	Input       CalculationInput  `json:"input"`
	Result      CalculationResult `json:"result"`
}
