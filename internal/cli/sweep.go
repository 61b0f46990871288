package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rosterhub/devstore/internal/model"
)

func newSweepCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the daily snapshot sweep for one date",
		Long: `Commits the per-player status rows and per-event-type aggregates for the
given date. Already-committed rows are left untouched, so re-running a date is
safe. Defaults to yesterday, matching the scheduled midnight sweep.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = app.Clock.Now().AddDate(0, 0, -1).Format(model.DateLayout)
			}
			if err := app.Snapshot.SweepDay(cmd.Context(), date); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sweep complete for %s\n", date)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to sweep (YYYY-MM-DD, default: yesterday)")

	return cmd
}
