package cli

import (
	"github.com/mahotsav/championship-admin/internal/app"
	"github.com/spf13/cobra"
)

func newTournamentCommand(admin *app.Admin) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tournament",
		Short: "Show draw sheets and promotion results",
	}

	drawSheets := &cobra.Command{
		Use:   "draw-sheets",
		Short: "Show the pools as the server partitions them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := admin.Reconciler.LoadDrawSheets(cmd.Context()); err != nil {
				return err
			}
			printPools(cmd.OutOrStdout(), admin.Screen.Pools())
			return nil
		},
	}

	var topN int
	promotion := &cobra.Command{
		Use:   "promotion",
		Short: "Show the teams promoted to the next round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n := topN
			if n <= 0 {
				n = admin.Reconciler.TopN()
			}
			if _, err := admin.Reconciler.LoadPromotion(cmd.Context(), n); err != nil {
				return err
			}
			printPromotion(cmd.OutOrStdout(), admin.Screen.Promotion())
			return nil
		},
	}
	promotion.Flags().IntVar(&topN, "top", 0, "number of teams to promote (default from PROMOTION_TOP_N)")

	cmd.AddCommand(drawSheets, promotion)
	return cmd
}
