package wizard

import (
	"math"
	"testing"

	"heating_leads/internal/apperr"
	"heating_leads/internal/models"
)

func f64(v float64) *float64 { return &v }

func fuel(h models.HeatingSystem) *models.HeatingSystem { return &h }

func owner(o models.OwnershipType) *models.OwnershipType { return &o }

// mustTransition fails the test if the event is rejected.
func mustTransition(t *testing.T, s models.WizardState, e Event) (models.WizardState, []Effect) {
	t.Helper()
	next, effects, err := Transition(s, e)
	if err != nil {
		t.Fatalf("Transition(%s) on %s/%d: %v", e.Type, s.View, s.Step, err)
	}
	return next, effects
}

// atStep walks a fresh wizard to the given questionnaire step with valid answers.
func atStep(t *testing.T, step models.QuestionStep) models.WizardState {
	t.Helper()
	s, _ := mustTransition(t, Initial(), Event{Type: EventStart})
	s, _ = mustTransition(t, s, Event{Type: EventAnswer, Answers: &Answers{
		BuildingSizeM2:       f64(120),
		CurrentConsumption:   f64(1000),
		ProjectedConsumption: f64(2000),
	}})
	for s.Step < step {
		s, _ = mustTransition(t, s, Event{Type: EventNext})
	}
	return s
}

func validContact() *models.ContactInfo {
	return &models.ContactInfo{
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Email:         "ada@example.org",
		TermsAccepted: true,
		GDPRAccepted:  true,
	}
}

func hasEffect(effects []Effect, kind EffectKind) bool {
	for _, e := range effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestInitial_LandingWithDefaults(t *testing.T) {
	s := Initial()
	if s.View != models.ViewLanding || s.Result != nil || s.Contact != nil {
		t.Fatalf("unexpected initial state: %+v", s)
	}
	if s.Input.Ownership != models.OwnershipOwner || s.Input.Current.Fuel != models.HeatingGas {
		t.Fatalf("unexpected defaults: %+v", s.Input)
	}
}

func TestStart_EntersFirstStepWithDeferredScroll(t *testing.T) {
	s, effects := mustTransition(t, Initial(), Event{Type: EventStart})
	if s.View != models.ViewQuestionnaire || s.Step != models.StepOwnership {
		t.Fatalf("unexpected state after start: %+v", s)
	}
	if len(effects) != 1 || effects[0].Kind != EffectScrollToCalculator || effects[0].DelayMS != 100 {
		t.Fatalf("unexpected effects: %+v", effects)
	}
}

func TestStepOneAndThree_DefaultsAreValid(t *testing.T) {
	s, _ := mustTransition(t, Initial(), Event{Type: EventStart})
	s, _ = mustTransition(t, s, Event{Type: EventNext})
	if s.Step != models.StepBuildingSize {
		t.Fatalf("expected step 2, got %d", s.Step)
	}
	s, _ = mustTransition(t, s, Event{Type: EventNext, Answers: &Answers{BuildingSizeM2: f64(80)}})
	s, _ = mustTransition(t, s, Event{Type: EventNext})
	if s.Step != models.StepCurrentConsumption {
		t.Fatalf("expected step 4, got %d", s.Step)
	}
}

func TestBuildingSizeGuard(t *testing.T) {
	s, _ := mustTransition(t, Initial(), Event{Type: EventStart})
	s, _ = mustTransition(t, s, Event{Type: EventNext})

	s, _ = mustTransition(t, s, Event{Type: EventAnswer, Answers: &Answers{BuildingSizeM2: f64(0)}})
	blocked, effects, err := Transition(s, Event{Type: EventNext})
	if err == nil {
		t.Fatalf("expected guard to block advancing with building size 0")
	}
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if apperr.FieldsOf(err)["building_size_m2"] == "" {
		t.Fatalf("expected building_size_m2 field error, got %v", apperr.FieldsOf(err))
	}
	if blocked.Step != models.StepBuildingSize || len(effects) != 0 {
		t.Fatalf("state advanced or effects emitted: %+v %+v", blocked, effects)
	}

	s, _ = mustTransition(t, blocked, Event{Type: EventAnswer, Answers: &Answers{BuildingSizeM2: f64(1)}})
	s, _ = mustTransition(t, s, Event{Type: EventNext})
	if s.Step != models.StepHeatingSystem {
		t.Fatalf("expected step 3, got %d", s.Step)
	}
}

func TestGuards(t *testing.T) {
	cases := []struct {
		name  string
		step  models.QuestionStep
		edit  func(in *models.CalculationInput)
		field string
	}{
		{"ownership_empty", models.StepOwnership, func(in *models.CalculationInput) { in.Ownership = "" }, fieldOwnership},
		{"building_negative", models.StepBuildingSize, func(in *models.CalculationInput) { in.BuildingSizeM2 = -3 }, fieldBuildingSize},
		{"building_nan", models.StepBuildingSize, func(in *models.CalculationInput) { in.BuildingSizeM2 = math.NaN() }, fieldBuildingSize},
		{"heating_unknown", models.StepHeatingSystem, func(in *models.CalculationInput) { in.Current.Fuel = "coal" }, fieldHeatingSystem},
		{"current_zero", models.StepCurrentConsumption, func(in *models.CalculationInput) { in.Current.Amount = 0 }, fieldCurrentConsumption},
		{"projected_negative", models.StepProjectedConsumption, func(in *models.CalculationInput) { in.ProjectedKWh = -1 }, fieldProjectedConsumption},
		{"projected_inf", models.StepProjectedConsumption, func(in *models.CalculationInput) { in.ProjectedKWh = math.Inf(1) }, fieldProjectedConsumption},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := models.DefaultCalculationInput()
			in.BuildingSizeM2 = 100
			in.Current.Amount = 1000
			tc.edit(&in)
			field, _ := guard(tc.step, in)
			if field != tc.field {
				t.Fatalf("got field %q, want %q", field, tc.field)
			}
		})
	}
}

func TestProjectedZeroIsAllowed(t *testing.T) {
	s := atStep(t, models.StepProjectedConsumption)
	s, _ = mustTransition(t, s, Event{Type: EventAnswer, Answers: &Answers{ProjectedConsumption: f64(0)}})
	s, _ = mustTransition(t, s, Event{Type: EventCalculate})
	if s.View != models.ViewContact {
		t.Fatalf("expected contact view, got %s", s.View)
	}
}

func TestBack_NoValidationAndFloorAtFirstStep(t *testing.T) {
	s := atStep(t, models.StepCurrentConsumption)
	s, _ = mustTransition(t, s, Event{Type: EventAnswer, Answers: &Answers{CurrentConsumption: f64(0)}})
	s, _ = mustTransition(t, s, Event{Type: EventBack})
	if s.Step != models.StepHeatingSystem {
		t.Fatalf("expected step 3, got %d", s.Step)
	}
	s, _ = mustTransition(t, s, Event{Type: EventBack})
	s, _ = mustTransition(t, s, Event{Type: EventBack})
	s, _ = mustTransition(t, s, Event{Type: EventBack})
	if s.Step != models.StepOwnership {
		t.Fatalf("expected to stay at step 1, got %d", s.Step)
	}
}

func TestNextOnLastStepIsRejected(t *testing.T) {
	s := atStep(t, models.StepProjectedConsumption)
	next, _, err := Transition(s, Event{Type: EventNext})
	if err == nil || next.Step != models.StepProjectedConsumption {
		t.Fatalf("expected next on the last step to be rejected, got %+v, %v", next, err)
	}
}

func TestCalculateOnlyOnLastStep(t *testing.T) {
	s := atStep(t, models.StepCurrentConsumption)
	if _, _, err := Transition(s, Event{Type: EventCalculate}); err == nil {
		t.Fatalf("expected calculate on step 4 to be rejected")
	}
}

func TestCalculate_ComputesResultAndMovesToContact(t *testing.T) {
	s := atStep(t, models.StepProjectedConsumption)
	s, effects := mustTransition(t, s, Event{Type: EventCalculate})
	if s.View != models.ViewContact || s.Result == nil {
		t.Fatalf("unexpected state: %+v", s)
	}
	if math.Abs(s.Result.CO2SavingsTons-1.52) > 1e-9 || math.Abs(s.Result.FinancialValue-76) > 1e-9 {
		t.Fatalf("unexpected result: %+v", s.Result)
	}
	if !hasEffect(effects, EffectScrollToTop) {
		t.Fatalf("expected scroll to top, got %+v", effects)
	}
}

func TestHeatingAnswerUpdatesUnit(t *testing.T) {
	s := atStep(t, models.StepHeatingSystem)
	s, _ = mustTransition(t, s, Event{Type: EventAnswer, Answers: &Answers{HeatingSystem: fuel(models.HeatingPellet)}})
	if s.Input.ConsumptionUnit != "kg" || s.Input.Current.Fuel != models.HeatingPellet {
		t.Fatalf("unexpected input: %+v", s.Input)
	}
}

func TestInvalidAnswersAreRejected(t *testing.T) {
	s := atStep(t, models.StepOwnership)
	bad := models.OwnershipType("landlord")
	next, _, err := Transition(s, Event{Type: EventAnswer, Answers: &Answers{
		Ownership:      &bad,
		BuildingSizeM2: f64(math.NaN()),
	}})
	if err == nil {
		t.Fatalf("expected invalid answers to be rejected")
	}
	fields := apperr.FieldsOf(err)
	if fields[fieldOwnership] == "" || fields[fieldBuildingSize] == "" {
		t.Fatalf("unexpected fields: %v", fields)
	}
	if next.Input.BuildingSizeM2 != s.Input.BuildingSizeM2 {
		t.Fatalf("state changed on rejected answers")
	}

	next, _ = mustTransition(t, s, Event{Type: EventAnswer, Answers: &Answers{Ownership: owner(models.OwnershipTenant)}})
	if next.Input.Ownership != models.OwnershipTenant {
		t.Fatalf("expected tenant, got %s", next.Input.Ownership)
	}
}

func TestSubmitContact_RequiresBothConsents(t *testing.T) {
	s := atStep(t, models.StepProjectedConsumption)
	s, _ = mustTransition(t, s, Event{Type: EventCalculate})

	c := validContact()
	c.GDPRAccepted = false
	next, effects, err := Transition(s, Event{Type: EventSubmitContact, Contact: c})
	if err == nil {
		t.Fatalf("expected missing GDPR consent to be rejected")
	}
	if apperr.FieldsOf(err)["gdpr_accepted"] == "" {
		t.Fatalf("expected gdpr_accepted field error, got %v", apperr.FieldsOf(err))
	}
	if next.View != models.ViewContact || next.Contact != nil {
		t.Fatalf("state changed on rejected contact: %+v", next)
	}
	if len(effects) != 1 || effects[0].Level != LevelError {
		t.Fatalf("expected one error notification, got %+v", effects)
	}

	if _, _, err := Transition(s, Event{Type: EventSubmitContact}); err == nil {
		t.Fatalf("expected missing contact to be rejected")
	}
}

func TestSubmitContact_ForwardsResultUnchanged(t *testing.T) {
	s := atStep(t, models.StepProjectedConsumption)
	s, _ = mustTransition(t, s, Event{Type: EventCalculate})
	before := *s.Result

	c := validContact()
	c.FirstName = "  Ada "
	next, effects := mustTransition(t, s, Event{Type: EventSubmitContact, Contact: c})
	if next.View != models.ViewResults {
		t.Fatalf("expected results view, got %s", next.View)
	}
	if *next.Result != before {
		t.Fatalf("result changed: %+v vs %+v", *next.Result, before)
	}
	if next.Contact == nil || next.Contact.FirstName != "Ada" {
		t.Fatalf("contact not normalized: %+v", next.Contact)
	}
	if !hasEffect(effects, EffectSubmitLead) || !hasEffect(effects, EffectScrollToTop) || !hasEffect(effects, EffectNotify) {
		t.Fatalf("unexpected effects: %+v", effects)
	}
	if hasEffect(ClientEffects(effects), EffectSubmitLead) {
		t.Fatalf("submit_lead must not reach the client")
	}
}

func TestFullFlow_ThenResetDiscardsInput(t *testing.T) {
	s := atStep(t, models.StepProjectedConsumption)
	s, _ = mustTransition(t, s, Event{Type: EventCalculate})
	s, _ = mustTransition(t, s, Event{Type: EventSubmitContact, Contact: validContact()})

	if sum := Summarize(s); sum == nil || sum.ReductionPercentage != 80 {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	s, effects := mustTransition(t, s, Event{Type: EventContinue})
	if s.View != models.ViewCompletion {
		t.Fatalf("expected completion, got %s", s.View)
	}
	if !hasEffect(effects, EffectScrollToTop) || !hasEffect(effects, EffectNotify) {
		t.Fatalf("unexpected completion effects: %+v", effects)
	}

	if _, _, err := Transition(s, Event{Type: EventContinue}); err == nil {
		t.Fatalf("completion must be terminal except for reset")
	}

	s, _ = mustTransition(t, s, Event{Type: EventReset})
	if s.View != models.ViewLanding || s.Result != nil || s.Contact != nil {
		t.Fatalf("reset did not discard state: %+v", s)
	}
	if s.Input != models.DefaultCalculationInput() {
		t.Fatalf("reset did not restore defaults: %+v", s.Input)
	}

	s, _ = mustTransition(t, s, Event{Type: EventStart})
	if s.Input.BuildingSizeM2 != 0 || s.Step != models.StepOwnership {
		t.Fatalf("fresh questionnaire expected, got %+v", s)
	}
}

func TestResetFromEveryView(t *testing.T) {
	states := []models.WizardState{
		Initial(),
		atStep(t, models.StepCurrentConsumption),
	}
	for _, s := range states {
		next, _ := mustTransition(t, s, Event{Type: EventReset})
		if next.View != models.ViewLanding {
			t.Fatalf("reset from %s landed on %s", s.View, next.View)
		}
	}
}

func TestEventsNotAllowedInView(t *testing.T) {
	cases := []struct {
		name  string
		state models.WizardState
		event EventType
	}{
		{"next_on_landing", Initial(), EventNext},
		{"submit_on_landing", Initial(), EventSubmitContact},
		{"start_in_questionnaire", atStep(t, models.StepOwnership), EventStart},
		{"continue_in_questionnaire", atStep(t, models.StepOwnership), EventContinue},
		{"unknown_event", Initial(), EventType("jump")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, _, err := Transition(tc.state, Event{Type: tc.event})
			if !apperr.Is(err, apperr.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if next.View != tc.state.View || next.Step != tc.state.Step {
				t.Fatalf("state changed: %+v", next)
			}
		})
	}
}

func TestAvailableEvents(t *testing.T) {
	contains := func(events []EventType, want EventType) bool {
		for _, e := range events {
			if e == want {
				return true
			}
		}
		return false
	}

	if got := AvailableEvents(Initial()); len(got) != 1 || got[0] != EventStart {
		t.Fatalf("landing events: %v", got)
	}

	s, _ := mustTransition(t, Initial(), Event{Type: EventStart})
	s, _ = mustTransition(t, s, Event{Type: EventNext})
	if contains(AvailableEvents(s), EventNext) {
		t.Fatalf("next must be disabled while building size is 0")
	}
	if !contains(AvailableEvents(s), EventBack) || !contains(AvailableEvents(s), EventReset) {
		t.Fatalf("back and reset must be available: %v", AvailableEvents(s))
	}

	last := atStep(t, models.StepProjectedConsumption)
	events := AvailableEvents(last)
	if !contains(events, EventCalculate) || contains(events, EventNext) {
		t.Fatalf("last step events: %v", events)
	}
}
