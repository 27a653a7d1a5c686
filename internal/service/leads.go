package service

import (
	"context"

	"heating_leads/internal/calculation"
	"heating_leads/internal/logger"
	"heating_leads/internal/models"
)

// LogLeadSink writes leads to the structured log.
type LogLeadSink struct {
	log *logger.Logger
}

func NewLogLeadSink(log *logger.Logger) *LogLeadSink {
	return &LogLeadSink{log: log}
}

func (l *LogLeadSink) Submit(_ context.Context, lead models.Lead) error {
	l.log.Infow("lead_submitted",
		"lead_id", lead.ID,
		"session_id", lead.SessionID,
		"first_name", lead.Contact.FirstName,
		"last_name", lead.Contact.LastName,
		"email", lead.Contact.Email,
		"phone", lead.Contact.Phone,
		"ownership_type", lead.Input.Ownership,
		"heating_system", lead.Input.Current.Fuel,
		"current_consumption", lead.Input.Current.Amount,
		"projected_consumption_kwh", lead.Input.ProjectedKWh,
		"co2_savings_tons", calculation.FormatQuantity(lead.Result.CO2SavingsTons),
		"financial_value", calculation.FormatCurrencyAmount(lead.Result.FinancialValue),
	)
	return nil
}
