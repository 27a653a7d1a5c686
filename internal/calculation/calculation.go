// Package calculation converts a heating fuel reading into CO₂ savings,
// carbon credits and their monetary value. Every function is pure.
package calculation

import (
	"math"

	"heating_leads/internal/models"
)

// ConvertToEnergy converts amount in the fuel's native unit to kWh.
func ConvertToEnergy(fuel models.HeatingSystem, amount float64) float64 {
	return amount * ConversionFactor(fuel)
}

// CO2Savings returns the yearly tons of CO₂ avoided by replacing oldAmount
// (native units of fuel) with newKWh of electricity. It never returns a
// negative value: higher emissions after the switch count as zero savings.
func CO2Savings(fuel models.HeatingSystem, oldAmount, newKWh float64) float64 {
	oldKWh := ConvertToEnergy(fuel, oldAmount)
	oldTons := oldKWh * EmissionFactor(fuel) / kgPerTon
	newTons := newKWh * ElectricityEmissionFactor / kgPerTon
	return math.Max(0, oldTons-newTons)
}

// CarbonCredits maps saved tons to credits, one credit per ton.
func CarbonCredits(co2SavingsTons float64) float64 {
	return co2SavingsTons
}

// FinancialValue prices credits at CreditPriceEUR each.
func FinancialValue(credits float64) float64 {
	return credits * CreditPriceEUR
}

// Calculate runs the full conversion chain for a questionnaire input.
func Calculate(in models.CalculationInput) models.CalculationResult {
	savings := CO2Savings(in.Current.Fuel, in.Current.Amount, in.ProjectedKWh)
	credits := CarbonCredits(savings)
	return models.CalculationResult{
		CO2SavingsTons: savings,
		CarbonCredits:  credits,
		FinancialValue: FinancialValue(credits),
	}
}

// ReductionPercentage is round((1 - projected/originalKWh) * 100), rounding
// halves up. It is 0 when the original consumption converts to zero kWh.
func ReductionPercentage(fuel models.HeatingSystem, current, projectedKWh float64) int {
	originalKWh := ConvertToEnergy(fuel, current)
	if originalKWh == 0 {
		return 0
	}
	return int(math.Floor((1-projectedKWh/originalKWh)*100 + 0.5))
}

// Summarize restates in next to its result for display. It does not recompute res.
func Summarize(in models.CalculationInput, res models.CalculationResult) models.ResultsSummary {
	originalKWh := ConvertToEnergy(in.Current.Fuel, in.Current.Amount)
	reduction := originalKWh - in.ProjectedKWh
	return models.ResultsSummary{
		Ownership:           in.Ownership,
		BuildingSizeM2:      in.BuildingSizeM2,
		HeatingSystem:       in.Current.Fuel,
		CurrentConsumption:  in.Current.Amount,
		ConsumptionUnit:     in.Current.Fuel.Unit(),
		OriginalKWh:         originalKWh,
		ProjectedKWh:        in.ProjectedKWh,
		EnergyReductionKWh:  reduction,
		ReductionPercentage: ReductionPercentage(in.Current.Fuel, in.Current.Amount, in.ProjectedKWh),
		Result:              res,
		FormattedCO2Savings: FormatQuantity(res.CO2SavingsTons),
		FormattedCredits:    FormatQuantity(res.CarbonCredits),
		FormattedValue:      FormatCurrencyAmount(res.FinancialValue),
		FormattedReduction:  FormatQuantity(reduction),
	}
}
