package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"jiffy-backoffice-api-server/internal/database"
	"jiffy-backoffice-api-server/internal/repository"
)

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the first admin employee from ADMIN_EMAIL and ADMIN_PASSWORD",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx := cmd.Context()
		client, db, err := database.Connect(ctx, cfg.Mongo, log)
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background())

		if err := repository.EnsureIndexes(ctx, db); err != nil {
			return err
		}
		created, err := database.SeedAdmin(ctx, repository.NewEmployeeRepository(db), cfg.Admin, log)
		if err != nil {
			return err
		}
		log.Info("seed-admin finished", zap.Bool("created", created))
		return nil
	},
}
