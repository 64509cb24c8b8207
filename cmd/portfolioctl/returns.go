package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/yang-ventures/portfolio-backend/internal/format"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/validation"
)

func newReturnsCmd(a *app) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "returns",
		Short: "Print the return metrics of every fund",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var date time.Time
			if asOf != "" {
				var err error
				if date, err = validation.ParseDate(asOf); err != nil {
					return fmt.Errorf("invalid --as-of date %q: expected YYYY-MM-DD", asOf)
				}
			}

			db, services, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB(db)

			var returns []model.FundReturn
			if date.IsZero() {
				returns, err = services.Returns.GetAllFundReturns(cmd.Context())
			} else {
				returns, err = services.Returns.ReturnsAsOf(cmd.Context(), date)
			}
			if err != nil {
				return err
			}
			return writeReturnsTable(cmd.OutOrStdout(), returns, a.cfg.App.BaseCurrency)
		},
	}
	cmd.Flags().StringVar(&asOf, "as-of", "", "only count records dated on or before this date (YYYY-MM-DD)")
	return cmd
}

// writeReturnsTable prints one aligned row per fund.
func writeReturnsTable(w io.Writer, returns []model.FundReturn, currency string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "FUND\tCOMPANIES\tINVESTED\tREALIZED\tUNREALIZED\tTOTAL VALUE\tMOIC\tIRR\tXIRR\t")
	for _, r := range returns {
		d := format.FundReturnDisplay(r, currency)
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Fund, r.CompanyCount,
			d.TotalInvested, d.TotalRealized, d.TotalUnrealized, d.TotalValue,
			d.MOIC, d.IRR, d.XIRR,
		)
	}
	return tw.Flush()
}
