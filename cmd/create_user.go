package main

import (
	"context"
	"log/slog"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/cmd/bootstrap"
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/usecase/commands"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newCreateUserCommand() *cobra.Command {
	var in commands.RegisterInput

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return createUser(cmd.Context(), in)
		},
	}

	cmd.Flags().StringVar(&in.Email, "email", "", "login email (required)")
	cmd.Flags().StringVar(&in.Password, "password", "", "initial password, at least 8 characters (required)")
	cmd.Flags().StringVar(&in.DisplayName, "name", "", "display name")
	cmd.Flags().StringVar(&in.Role, "role", "user", "user, maintenance or admin")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func createUser(ctx context.Context, in commands.RegisterInput) error {
	var auth commands.AuthCommands
	app := fx.New(
		bootstrap.CoreModule,
		fx.NopLogger,
		fx.Populate(&auth),
	)
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			slog.Error("failed to stop application", "error", err)
		}
	}()

	u, err := auth.Register(ctx, in)
	if err != nil {
		return err
	}

	slog.Info("user created", "id", u.ID(), "email", u.Email(), "role", u.Role())
	return nil
}
