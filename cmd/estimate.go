package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"heating_leads/internal/apperr"
	"heating_leads/internal/models"
	"heating_leads/internal/wizard"

	"github.com/spf13/cobra"
)

type estimateFlags struct {
	heating   string
	current   float64
	projected float64
	asJSON    bool
}

func newEstimateCmd() *cobra.Command {
	var f estimateFlags
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Print the CO2 savings estimate for one heating switch",
		Example: "  heating-leads estimate --heating-system gas --current 1000 --projected 2000\n" +
			"  heating-leads estimate --heating-system oil --current 500 --projected 3000 --json",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sum, err := wizard.Estimate(models.HeatingSystem(strings.ToLower(f.heating)), f.current, f.projected)
			if err != nil {
				return describeEstimateError(err)
			}
			if f.asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sum)
			}
			return printSummary(cmd.OutOrStdout(), sum)
		},
	}
	cmd.Flags().StringVar(&f.heating, "heating-system", string(models.HeatingGas), "current heating system: gas, oil, pellet or other")
	cmd.Flags().Float64Var(&f.current, "current", 0, "annual consumption in the fuel's unit")
	cmd.Flags().Float64Var(&f.projected, "projected", 0, "projected annual electricity in kWh")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print the summary as JSON")
	_ = cmd.MarkFlagRequired("current")
	return cmd
}

func describeEstimateError(err error) error {
	fields := apperr.FieldsOf(err)
	if len(fields) == 0 {
		return err
	}
	parts := make([]string, 0, len(fields))
	for _, name := range []string{"heating_system", "current_consumption", "projected_consumption"} {
		if msg, ok := fields[name]; ok {
			parts = append(parts, name+" "+msg)
		}
	}
	return fmt.Errorf("%s: %s", err.Error(), strings.Join(parts, "; "))
}

func printSummary(w io.Writer, sum models.ResultsSummary) error {
	_, err := fmt.Fprintf(w,
		"Heating system:     %s\n"+
			"Current use:        %g %s (%.0f kWh)\n"+
			"Projected use:      %g kWh electricity\n"+
			"Energy reduction:   %s kWh (%d%%)\n"+
			"CO2 savings:        %s t/year\n"+
			"Carbon credits:     %s\n"+
			"Value:              %s\n",
		sum.HeatingSystem,
		sum.CurrentConsumption, sum.ConsumptionUnit, sum.OriginalKWh,
		sum.ProjectedKWh,
		sum.FormattedReduction, sum.ReductionPercentage,
		sum.FormattedCO2Savings,
		sum.FormattedCredits,
		sum.FormattedValue,
	)
	return err
}
