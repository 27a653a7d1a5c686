// Package wizard is the lead wizard's state machine. Transition is a pure
// function: it never performs I/O and describes side effects as values.
package wizard

import (
	"fmt"

	"heating_leads/internal/apperr"
	"heating_leads/internal/calculation"
	"heating_leads/internal/models"
	"heating_leads/internal/validation"
)

// Initial returns the landing state with default answers.
func Initial() models.WizardState {
	return models.WizardState{
		View:  models.ViewLanding,
		Input: models.DefaultCalculationInput(),
	}
}

// Transition applies e to s. On error the returned state is s unchanged; the
// effects may still carry a notification for the visitor.
func Transition(s models.WizardState, e Event) (models.WizardState, []Effect, error) {
	if !e.Type.Valid() {
		return s, nil, apperr.Validation(fmt.Sprintf("unknown event %q", e.Type))
	}
	if e.Type == EventReset {
		return Initial(), []Effect{scrollToTop()}, nil
	}

	switch s.View {
	case models.ViewLanding:
		return onLanding(s, e)
	case models.ViewQuestionnaire:
		return onQuestionnaire(s, e)
	case models.ViewContact:
		return onContact(s, e)
	case models.ViewResults:
		return onResults(s, e)
	case models.ViewCompletion:
		return onCompletion(s, e)
	}
	return s, nil, apperr.Validation(fmt.Sprintf("unknown view %q", s.View))
}

func onLanding(s models.WizardState, e Event) (models.WizardState, []Effect, error) {
	if e.Type != EventStart {
		return s, nil, notAllowed(s, e)
	}
	next := Initial()
	next.View = models.ViewQuestionnaire
	next.Step = models.FirstStep
	return next, []Effect{scrollToCalculator()}, nil
}

func onQuestionnaire(s models.WizardState, e Event) (models.WizardState, []Effect, error) {
	next := s
	if e.Answers != nil {
		if e.Type != EventAnswer && e.Type != EventNext && e.Type != EventCalculate {
			return s, nil, notAllowed(s, e)
		}
		in, err := applyAnswers(s.Input, *e.Answers)
		if err != nil {
			return s, nil, err
		}
		next.Input = in
	}

	switch e.Type {
	case EventAnswer:
		return next, nil, nil

	case EventBack:
		if next.Step > models.FirstStep {
			next.Step--
		}
		return next, nil, nil

	case EventNext:
		if next.Step >= models.LastStep {
			return s, nil, apperr.Validation("last question: calculate instead of next").WithOp(string(e.Type))
		}
		if field, msg := guard(next.Step, next.Input); field != "" {
			return s, nil, stepError(e, field, msg)
		}
		next.Step++
		return next, nil, nil

	case EventCalculate:
		if next.Step != models.LastStep {
			return s, nil, notAllowed(s, e)
		}
		if err := ValidateInput(next.Input); err != nil {
			return s, nil, err
		}
		res := calculation.Calculate(next.Input)
		next.View = models.ViewContact
		next.Step = 0
		next.Result = &res
		return next, []Effect{scrollToTop()}, nil
	}
	return s, nil, notAllowed(s, e)
}

func onContact(s models.WizardState, e Event) (models.WizardState, []Effect, error) {
	if e.Type != EventSubmitContact {
		return s, nil, notAllowed(s, e)
	}
	invalid := []Effect{notify(LevelError, msgContactInvalid)}
	if e.Contact == nil {
		return s, invalid, apperr.Validation("contact details are required").WithOp(string(e.Type))
	}

	contact := validation.NormalizeContact(*e.Contact)
	if fields := validation.Default().Struct(contact); fields != nil {
		return s, invalid, apperr.Validation("contact details are incomplete").
			WithOp(string(e.Type)).
			WithFields(fields)
	}

	next := s
	next.View = models.ViewResults
	next.Contact = &contact
	return next, []Effect{
		notify(LevelSuccess, msgContactSubmitted),
		submitLead(),
		scrollToTop(),
	}, nil
}

func onResults(s models.WizardState, e Event) (models.WizardState, []Effect, error) {
	if e.Type != EventContinue {
		return s, nil, notAllowed(s, e)
	}
	next := s
	next.View = models.ViewCompletion
	return next, []Effect{
		scrollToTop(),
		notify(LevelSuccess, msgCompleted),
	}, nil
}

// onCompletion is terminal; only reset, handled in Transition, leaves it.
func onCompletion(s models.WizardState, e Event) (models.WizardState, []Effect, error) {
	return s, nil, notAllowed(s, e)
}

// applyAnswers copies the set answer fields into in. Numeric answers are only
// checked for being real numbers here; the step guards decide if they are usable.
func applyAnswers(in models.CalculationInput, a Answers) (models.CalculationInput, error) {
	fields := map[string]string{}

	if a.Ownership != nil {
		if a.Ownership.Valid() {
			in.Ownership = *a.Ownership
		} else {
			fields[fieldOwnership] = "must be owner or tenant"
		}
	}
	if a.HeatingSystem != nil {
		if a.HeatingSystem.Valid() {
			in.Current.Fuel = *a.HeatingSystem
			in.ConsumptionUnit = a.HeatingSystem.Unit()
		} else {
			fields[fieldHeatingSystem] = "must be one of gas, oil, pellet, other"
		}
	}
	setNumber(a.BuildingSizeM2, &in.BuildingSizeM2, fieldBuildingSize, fields)
	setNumber(a.CurrentConsumption, &in.Current.Amount, fieldCurrentConsumption, fields)
	setNumber(a.ProjectedConsumption, &in.ProjectedKWh, fieldProjectedConsumption, fields)

	if len(fields) > 0 {
		return in, apperr.Validation("invalid answers").WithOp(string(EventAnswer)).WithFields(fields)
	}
	return in, nil
}

func setNumber(v *float64, dst *float64, field string, fields map[string]string) {
	if v == nil {
		return
	}
	if !isFinite(*v) {
		fields[field] = "must be a number"
		return
	}
	*dst = *v
}

func stepError(e Event, field, msg string) error {
	return apperr.Validation(field+" "+msg).
		WithOp(string(e.Type)).
		WithFields(map[string]string{field: msg})
}

func notAllowed(s models.WizardState, e Event) error {
	return apperr.Validation(fmt.Sprintf("%s is not allowed on the %s view", e.Type, s.View)).WithOp(string(e.Type))
}

// Summarize returns the results-view summary once a result exists.
func Summarize(s models.WizardState) *models.ResultsSummary {
	if s.Result == nil || (s.View != models.ViewResults && s.View != models.ViewCompletion) {
		return nil
	}
	sum := calculation.Summarize(s.Input, *s.Result)
	return &sum
}

// AvailableEvents lists the actions currently enabled for s, so the browser
// can disable controls whose guard does not hold.
func AvailableEvents(s models.WizardState) []EventType {
	events := []EventType{}
	switch s.View {
	case models.ViewLanding:
		events = append(events, EventStart)
	case models.ViewQuestionnaire:
		events = append(events, EventAnswer)
		if s.Step > models.FirstStep {
			events = append(events, EventBack)
		}
		if s.Step == models.LastStep {
			if ValidateInput(s.Input) == nil {
				events = append(events, EventCalculate)
			}
		} else if CanAdvance(s) {
			events = append(events, EventNext)
		}
	case models.ViewContact:
		events = append(events, EventSubmitContact)
	case models.ViewResults:
		events = append(events, EventContinue)
	}
	if s.View != models.ViewLanding {
		events = append(events, EventReset)
	}
	return events
}
