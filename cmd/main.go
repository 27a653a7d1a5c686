// @title        Heating Leads API
// @version      1.0
// @description  Lead wizard estimating CO2 savings and carbon credit value of switching a heating system to electricity.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           "heating-leads",
		Short:         "Heating switch lead wizard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configDir, "config-dir", "configs", "directory containing config.yml")

	serve := newServeCmd(&configDir)
	root.AddCommand(serve, newEstimateCmd(), newOperatorCmd(&configDir))
	// plain invocation serves
	root.RunE = serve.RunE
	return root
}

func lookupEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
