package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return migrate(cmd.Context(), cfg, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print pending migrations without applying them")

	return cmd
}

func migrate(ctx context.Context, cfg config.Config, dryRun bool) error {
	workdir, err := os.Getwd()
	if err != nil {
		return err
	}

	client, err := atlasexec.NewClient(workdir, cfg.Migrate.AtlasBin)
	if err != nil {
		return fmt.Errorf("failed to initialize atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: cfg.Migrate.Dir,
		DryRun: dryRun,
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
		"dry_run", dryRun)
	return nil
}
