// Package cli is the operator console over the championship admin API. Every
// command goes through the synchronizer and prints the views it rendered.
package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mahotsav/championship-admin/internal/app"
	"github.com/mahotsav/championship-admin/internal/platform/notify"
	"github.com/spf13/cobra"
)

// NewRootCommand wires the command tree to admin. Notifications are written to
// the command's error stream as they are shown.
func NewRootCommand(admin *app.Admin) *cobra.Command {
	root := &cobra.Command{
		Use:   "championship-admin",
		Short: "Manage championship teams, players and tournament views",
		Long: `championship-admin talks to the championship REST API. Writes refresh
exactly the views they affect; reads print the refreshed view.`,
		SilenceUsage: true,
	}

	admin.Notifications.Subscribe(func(n notify.Notification) {
		printNotification(root.ErrOrStderr(), n)
	})

	root.AddCommand(
		newTeamsCommand(admin),
		newPlayersCommand(admin),
		newTournamentCommand(admin),
		newOverviewCommand(admin),
	)
	return root
}

// Execute runs the command tree with args under ctx.
func Execute(ctx context.Context, admin *app.Admin, args []string) error {
	root := NewRootCommand(admin)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newOverviewCommand(admin *app.Admin) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Reload every view and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			failed := admin.Synchronizer.Reload(cmd.Context(), reloadAll)
			out := cmd.OutOrStdout()
			printTeamTable(out, admin.Screen.TeamTable())
			printPlayerTable(out, admin.Screen.PlayerTable())
			printPools(out, admin.Screen.Pools())
			printPromotion(out, admin.Screen.Promotion())
			if failed != 0 {
				return fmt.Errorf("views left stale: %s", failed)
			}
			return nil
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func confirmDelete(cmd *cobra.Command, entity string, id int64) error {
	yes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return err
	}
	if !yes {
		return fmt.Errorf("refusing to delete %s %d without --yes", entity, id)
	}
	return nil
}
