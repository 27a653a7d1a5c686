package wizard

import (
	"heating_leads/internal/apperr"
	"heating_leads/internal/calculation"
	"heating_leads/internal/models"
)

// estimateSteps are the guards a quick estimate needs; ownership and
// building size do not enter the formula.
var estimateSteps = []models.QuestionStep{
	models.StepHeatingSystem,
	models.StepCurrentConsumption,
	models.StepProjectedConsumption,
}

// Estimate computes a result outside any session.
func Estimate(fuel models.HeatingSystem, current, projectedKWh float64) (models.ResultsSummary, error) {
	in := models.DefaultCalculationInput()
	in.Current = models.ConsumptionReading{Fuel: fuel, Amount: current}
	in.ConsumptionUnit = fuel.Unit()
	in.ProjectedKWh = projectedKWh

	fields := map[string]string{}
	for _, step := range estimateSteps {
		if field, msg := guard(step, in); field != "" {
			fields[field] = msg
		}
	}
	if len(fields) > 0 {
		return models.ResultsSummary{}, apperr.Validation("invalid estimate input").WithOp("estimate").WithFields(fields)
	}
	return calculation.Summarize(in, calculation.Calculate(in)), nil
}
