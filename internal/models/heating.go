package models

// HeatingSystem is the building's current heating fuel.
type HeatingSystem string

const (
	HeatingGas    HeatingSystem = "gas"
	HeatingOil    HeatingSystem = "oil"
	HeatingPellet HeatingSystem = "pellet"
	HeatingOther  HeatingSystem = "other"
)

// HeatingSystems lists every supported fuel in display order.
var HeatingSystems = []HeatingSystem{HeatingGas, HeatingOil, HeatingPellet, HeatingOther}

// Valid reports whether h is one of the known fuels.
func (h HeatingSystem) Valid() bool {
	switch h {
	case HeatingGas, HeatingOil, HeatingPellet, HeatingOther:
		return true
	}
	return false
}

// Unit returns the fuel-native consumption unit label.
func (h HeatingSystem) Unit() string {
	switch h {
	case HeatingGas:
		return "m³"
	case HeatingOil:
		return "liters"
	case HeatingPellet:
		return "kg"
	default:
		return "kWh"
	}
}

// OwnershipType tells whether the visitor owns or rents the building.
type OwnershipType string

const (
	OwnershipOwner  OwnershipType = "owner"
	OwnershipTenant OwnershipType = "tenant"
)

// Valid reports whether o is owner or tenant.
func (o OwnershipType) Valid() bool {
	return o == OwnershipOwner || o == OwnershipTenant
}

// NewEnergySystem is the only target system the estimate models.
const NewEnergySystem = "electricity"
