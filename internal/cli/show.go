package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rosterhub/devstore/internal/model"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [collection]",
		Short: "Print the document, or one collection, as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := app.Store.Load(cmd.Context())

			var value any = st
			if len(args) == 1 {
				v, err := collection(st, args[0])
				if err != nil {
					return err
				}
				value = v
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(value)
		},
	}
}

func collection(st *model.State, name string) (any, error) {
	switch name {
	case "players":
		return st.Players, nil
	case "playerUsers":
		return st.PlayerUsers, nil
	case "staff":
		return st.Staff, nil
	case "events":
		return st.Events, nil
	case "chatRooms":
		return st.ChatRooms, nil
	case "reports":
		return st.Reports, nil
	case "reportFolders":
		return st.ReportFolders, nil
	case "coachNotes":
		return st.CoachNotes, nil
	case "dailyPlayerAnalytics":
		return st.DailyPlayerAnalytics, nil
	case "dailyEventAnalytics":
		return st.DailyEventAnalytics, nil
	case "notifications":
		return st.Notifications, nil
	case "wellnessSettings":
		return st.WellnessSettings, nil
	case "playerTags":
		return st.PlayerTags, nil
	case "playerAvatars":
		return st.PlayerAvatars, nil
	case "playerMediaFiles":
		return st.PlayerMediaFiles, nil
	case "playerNotes":
		return st.PlayerNotes, nil
	default:
		return nil, fmt.Errorf("unknown collection %q", name)
	}
}
