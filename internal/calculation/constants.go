package calculation

import "heating_leads/internal/models"

// Conversion factors from a fuel's native unit to kWh.
var conversionFactors = map[models.HeatingSystem]float64{
	models.HeatingGas:    10,   // kWh per m³
	models.HeatingOil:    10.5, // kWh per liter
	models.HeatingPellet: 4.9,  // kWh per kg
	models.HeatingOther:  1,    // already kWh
}

// Emission factors in kg CO₂ per kWh of fuel energy.
var emissionFactors = map[models.HeatingSystem]float64{
	models.HeatingGas:    0.202,
	models.HeatingOil:    0.266,
	models.HeatingPellet: 0.023,
	models.HeatingOther:  0.15, // average
}

const (
	// ElectricityEmissionFactor is kg CO₂ per kWh of grid electricity.
	ElectricityEmissionFactor = 0.25

	// CreditPriceEUR is the value of one carbon credit.
	CreditPriceEUR = 50.0

	// CurrencySymbol prefixes formatted currency amounts.
	CurrencySymbol = "€"

	kgPerTon = 1000.0
)

// ConversionFactor returns the kWh-per-native-unit factor for fuel.
// Unknown fuels convert 1:1.
func ConversionFactor(fuel models.HeatingSystem) float64 {
	if f, ok := conversionFactors[fuel]; ok {
		return f
	}
	return 1
}

// EmissionFactor returns kg CO₂ per kWh for fuel.
// Unknown fuels use the "other" average.
func EmissionFactor(fuel models.HeatingSystem) float64 {
	if f, ok := emissionFactors[fuel]; ok {
		return f
	}
	return emissionFactors[models.HeatingOther]
}
