package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"heating_leads/internal/config"
	"heating_leads/internal/repository"
	"heating_leads/internal/repository/db"
	"heating_leads/internal/service"

	"github.com/spf13/cobra"
)

func newOperatorCmd(configDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operator",
		Short: "Manage the accounts that may read the wizard journal",
	}
	cmd.AddCommand(newOperatorAddCmd(configDir))
	return cmd
}

func newOperatorAddCmd(configDir *string) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Create an operator in the configured database",
		Example: "  WIZARD_OPERATOR_PASSWORD=secret heating-leads operator add --username ops",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configDir)
			if err != nil {
				return err
			}
			if password == "" {
				password = lookupEnv("WIZARD_OPERATOR_PASSWORD")
			}
			id, err := addOperator(cmd.Context(), cfg, username, password)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "operator %q created with id %d\n", strings.TrimSpace(username), id)
			return err
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "operator username")
	cmd.Flags().StringVar(&password, "password", "", "operator password (defaults to $WIZARD_OPERATOR_PASSWORD)")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func addOperator(ctx context.Context, cfg *config.Config, username, password string) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	conn, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		return 0, fmt.Errorf("init sqlite: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	auth := service.NewAuthService(repository.NewOperatorRepository(conn), cfg.Auth.SigningKey, cfg.Auth.TokenTTL)
	id, err := auth.SignUp(ctx, username, password)
	if errors.Is(err, repository.ErrOperatorExists) {
		return 0, fmt.Errorf("operator %q already exists", strings.TrimSpace(username))
	}
	return id, err
}
