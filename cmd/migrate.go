package main

import (
	"fmt"

	"technews/internal/config"
	"technews/internal/logger"
	"technews/internal/repository/db"

	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.Get(a.v.GetString(config.KeyLogLevel))
			path := a.v.GetString(config.KeyDBPath)

			conn, err := db.InitDB(cmd.Context(), path)
			if err != nil {
				return fmt.Errorf("migrate %s: %w", path, err)
			}
			defer func() { _ = conn.Close() }()

			log.Infow("migrations_applied", "path", path)
			return nil
		},
	}
}
