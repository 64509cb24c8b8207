package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yang-ventures/portfolio-backend/internal/seed"
)

func newSeedCmd(a *app) *cobra.Command {
	var (
		seedValue        uint64
		companiesPerFund int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with a generated demo portfolio",
		Long: "Generate companies, investment rounds, KPIs and events for every configured fund.\n" +
			"The same --seed always produces the same data set.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, services, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB(db)

			result, err := services.Seed.Seed(cmd.Context(), seed.Options{
				Seed:             seedValue,
				CompaniesPerFund: companiesPerFund,
				Funds:            a.cfg.Funds,
				Now:              time.Now().UTC(),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d companies, %d investments, %d KPIs, %d events\n",
				result.Companies, result.Investments, result.KPIs, result.Events)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&seedValue, "seed", 1, "random seed")
	cmd.Flags().IntVar(&companiesPerFund, "companies-per-fund", 10, "companies generated for each fund")
	return cmd
}
