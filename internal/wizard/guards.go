package wizard

import (
	"math"

	"heating_leads/internal/apperr"
	"heating_leads/internal/models"
)

// Field names used in validation errors; they match the JSON answer names.
const (
	fieldOwnership            = "ownership_type"
	fieldBuildingSize         = "building_size_m2"
	fieldHeatingSystem        = "heating_system"
	fieldCurrentConsumption   = "current_consumption"
	fieldProjectedConsumption = "projected_consumption"
)

// guard checks the questionnaire field owned by step and returns the failing
// field and message, or "" when the step may be left forward.
func guard(step models.QuestionStep, in models.CalculationInput) (field, msg string) {
	switch step {
	case models.StepOwnership:
		if !in.Ownership.Valid() {
			return fieldOwnership, "must be owner or tenant"
		}
	case models.StepBuildingSize:
		if !isFinite(in.BuildingSizeM2) || in.BuildingSizeM2 <= 0 {
			return fieldBuildingSize, "must be greater than 0"
		}
	case models.StepHeatingSystem:
		if !in.Current.Fuel.Valid() {
			return fieldHeatingSystem, "must be one of gas, oil, pellet, other"
		}
	case models.StepCurrentConsumption:
		if !isFinite(in.Current.Amount) || in.Current.Amount <= 0 {
			return fieldCurrentConsumption, "must be greater than 0"
		}
	case models.StepProjectedConsumption:
		if !isFinite(in.ProjectedKWh) || in.ProjectedKWh < 0 {
			return fieldProjectedConsumption, "must not be negative"
		}
	default:
		return "step", "unknown questionnaire step"
	}
	return "", ""
}

// CanAdvance reports whether the guard of the current questionnaire step holds.
func CanAdvance(s models.WizardState) bool {
	if s.View != models.ViewQuestionnaire {
		return false
	}
	field, _ := guard(s.Step, s.Input)
	return field == ""
}

// ValidateInput runs every questionnaire guard and reports all failing fields.
func ValidateInput(in models.CalculationInput) error {
	fields := map[string]string{}
	for step := models.FirstStep; step <= models.LastStep; step++ {
		if field, msg := guard(step, in); field != "" {
			fields[field] = msg
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return apperr.Validation("questionnaire is incomplete").WithFields(fields)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
