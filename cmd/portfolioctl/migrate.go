package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yang-ventures/portfolio-backend/internal/database"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := database.Open(a.cfg.Database.Path)
			if err != nil {
				return err
			}
			defer closeDB(db)

			applied, err := database.Migrate(cmd.Context(), db)
			if err != nil {
				return err
			}
			status, err := database.Status(cmd.Context(), db)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s), schema version %d\n", applied, status.Version)
			return nil
		},
	}
}
