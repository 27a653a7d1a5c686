package models

// ConsumptionReading is an annual consumption in the fuel's native unit.
type ConsumptionReading struct {
	Fuel   HeatingSystem `json:"heating_system"`
	Amount float64       `json:"amount"` // m³, liters, kg or kWh depending on Fuel
}

// CalculationInput is everything the questionnaire collects.
type CalculationInput struct {
	Ownership       OwnershipType      `json:"ownership_type"`
	BuildingSizeM2  float64            `json:"building_size_m2"`
	Current         ConsumptionReading `json:"current_consumption"`
	ProjectedKWh    float64            `json:"projected_consumption_kwh"` // electricity after the switch
	ConsumptionUnit string             `json:"consumption_unit"`
	NewEnergySystem string             `json:"new_energy_system"`
}

// DefaultCalculationInput returns the preselected questionnaire answers.
func DefaultCalculationInput() CalculationInput {
	return CalculationInput{
		Ownership:       OwnershipOwner,
		Current:         ConsumptionReading{Fuel: HeatingGas},
		ConsumptionUnit: HeatingGas.Unit(),
		NewEnergySystem: NewEnergySystem,
	}
}

// CalculationResult is derived from a CalculationInput and never stored on its own.
type CalculationResult struct {
	CO2SavingsTons float64 `json:"co2_savings_tons"`
	CarbonCredits  float64 `json:"carbon_credits"`
	FinancialValue float64 `json:"financial_value"` // EUR
}

// ResultsSummary restates the inputs next to the computed result for the results view.
type ResultsSummary struct {
	Ownership           OwnershipType     `json:"ownership_type"`
	BuildingSizeM2      float64           `json:"building_size_m2"`
	HeatingSystem       HeatingSystem     `json:"heating_system"`
	CurrentConsumption  float64           `json:"current_consumption"`
	ConsumptionUnit     string            `json:"consumption_unit"`
	OriginalKWh         float64           `json:"original_kwh"`
	ProjectedKWh        float64           `json:"projected_kwh"`
	EnergyReductionKWh  float64           `json:"energy_reduction_kwh"`
	ReductionPercentage int               `json:"reduction_percentage"`
	Result              CalculationResult `json:"result"`
	FormattedCO2Savings string            `json:"formatted_co2_savings"`
	FormattedCredits    string            `json:"formatted_carbon_credits"`
	FormattedValue      string            `json:"formatted_financial_value"`
	FormattedReduction  string            `json:"formatted_energy_reduction_kwh"`
}
