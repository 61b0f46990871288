package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rosterhub/devstore/internal/model"
)

func newVerifyCmd() *cobra.Command {
	var repair bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Scan for orphaned membership and visibility entries",
		Long: `Scans chat participants and visibility lists for entries whose referenced
id no longer resolves to a known player or staff member. Reads already treat
such entries as no access; --repair persists the cleanup.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if repair {
				return app.Store.Update(ctx, func(st *model.State) error {
					report := app.Integrity.Repair(st)
					fmt.Fprintf(cmd.OutOrStdout(), "repaired %d orphaned entries\n", report.Total())
					return nil
				})
			}

			st := app.Store.Load(ctx)
			report := app.Integrity.Repair(st)
			if report.Total() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "document is consistent")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "found %d orphaned entries (%d chat participants, %d note, %d folder, %d report visibility); run with --repair to fix\n",
				report.Total(),
				report.DeactivatedChatParticipants,
				report.RemovedNoteVisibility,
				report.RemovedFolderVisibility,
				report.RemovedReportVisibility,
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&repair, "repair", false, "Persist the repair instead of only reporting")

	return cmd
}
