package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rosterhub/devstore/internal/model"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the document with a small demo roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			jane, err := app.Roster.CreatePlayer(ctx, "Jane Doe", "jane@example.com", "Midfielder")
			if err != nil {
				return err
			}
			mara, err := app.Roster.CreatePlayer(ctx, "Mara Lind", "mara@example.com", "Keeper")
			if err != nil {
				return err
			}

			coach, err := app.Roster.CreateStaff(ctx, "Sam Reyes", "sam@example.com", "changeme",
				model.StaffPermissions{
					IsAdmin:        true,
					ManageRoster:   true,
					ManageCalendar: true,
					ManageChat:     true,
				})
			if err != nil {
				return err
			}

			today := app.Clock.Now().Format(model.DateLayout)
			if _, err := app.Roster.CreateEvent(ctx, "Morning session", "Training", today, "09:00", "10:30",
				[]model.PlayerID{jane.ID, mara.ID}, []model.StaffID{coach.ID}); err != nil {
				return err
			}

			// First login materializes the players' accounts.
			janeAcc, err := app.Account.Login(ctx, jane.Email, "changeme")
			if err != nil {
				return err
			}

			room, err := app.Chat.CreateRoom(ctx, string(coach.ID), "Team chat", []string{string(jane.ID), string(mara.ID)})
			if err != nil {
				return err
			}
			if _, err := app.Chat.PostMessage(ctx, room.ID, string(coach.ID), "Welcome to the dev store"); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded: 2 players, 1 staff, 1 event, room %s, account %s\n", room.ID, janeAcc.ID)
			return nil
		},
	}
}
