package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/service"
)

type importFunc func(s *service.ImportService, ctx context.Context, r io.Reader) (*model.ImportResult, error)

func newImportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import records from a CSV file",
		Long:  "Import a CSV file in a single transaction. Any invalid row aborts the whole file.",
	}
	cmd.AddCommand(
		newImportFileCmd(a, "investments", "Import investment rounds", (*service.ImportService).ImportInvestments),
		newImportFileCmd(a, "events", "Import exits, dividends and valuation updates", (*service.ImportService).ImportEvents),
	)
	return cmd
}

func newImportFileCmd(a *app, kind, short string, run importFunc) *cobra.Command {
	return &cobra.Command{
		Use:   kind + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			db, services, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB(db)

			result, err := run(services.Import, cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d %s\n", result.Imported, kind)
			return nil
		},
	}
}
