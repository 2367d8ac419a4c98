package cli

import (
	"fmt"
	"os"

	"github.com/mahotsav/championship-admin/internal/app"
	"github.com/mahotsav/championship-admin/internal/domain/player"
	"github.com/mahotsav/championship-admin/internal/render"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newPlayersCommand(admin *app.Admin) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "List, edit and import players",
	}
	cmd.AddCommand(
		newPlayersListCommand(admin),
		newPlayersGetCommand(admin),
		newPlayersCreateCommand(admin),
		newPlayersUpdateCommand(admin),
		newPlayersDeleteCommand(admin),
		newPlayersImportCommand(admin),
	)
	return cmd
}

func newPlayersListCommand(admin *app.Admin) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List players with their team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := admin.Synchronizer.ReloadPlayers(cmd.Context()); err != nil {
				return err
			}
			printPlayerTable(cmd.OutOrStdout(), admin.Screen.PlayerTable())
			return nil
		},
	}
}

func newPlayersGetCommand(admin *app.Admin) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			form, err := admin.Synchronizer.PreparePlayerForm(cmd.Context(), id)
			if err != nil {
				return err
			}

			teamName := render.Unassigned
			if opt, ok := form.Teams.Selected(); ok && opt.Value != "" {
				teamName = opt.Label
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(form.Input.Name))
			fmt.Fprintf(out, "Registration: %s\n", form.Input.RegistrationNumber)
			fmt.Fprintf(out, "Branch/Year:  %s / %s\n", orDash(form.Input.Branch), orDash(form.Input.Year))
			fmt.Fprintf(out, "Section:      %s\n", orDash(form.Input.Section))
			fmt.Fprintf(out, "Mobile:       %s\n", orDash(form.Input.MobileNumber))
			fmt.Fprintf(out, "Team:         %s\n", teamName)
			return nil
		},
	}
}

func newPlayersCreateCommand(admin *app.Admin) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := applyPlayerFlags(cmd.Flags(), player.Input{})
			if err != nil {
				return err
			}
			if _, _, err := admin.Synchronizer.CreatePlayer(cmd.Context(), in); err != nil {
				return err
			}
			printPlayerTable(cmd.OutOrStdout(), admin.Screen.PlayerTable())
			return nil
		},
	}
	addPlayerFlags(cmd.Flags())
	return cmd
}

func newPlayersUpdateCommand(admin *app.Admin) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the given fields of a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			form, err := admin.Synchronizer.PreparePlayerForm(ctx, id)
			if err != nil {
				return err
			}
			in, err := applyPlayerFlags(cmd.Flags(), form.Input)
			if err != nil {
				return err
			}
			if _, _, err := admin.Synchronizer.UpdatePlayer(ctx, id, in); err != nil {
				return err
			}
			printPlayerTable(cmd.OutOrStdout(), admin.Screen.PlayerTable())
			return nil
		},
	}
	addPlayerFlags(cmd.Flags())
	return cmd
}

func newPlayersDeleteCommand(admin *app.Admin) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := confirmDelete(cmd, "player", id); err != nil {
				return err
			}
			if _, err := admin.Synchronizer.DeletePlayer(cmd.Context(), id); err != nil {
				return err
			}
			printPlayerTable(cmd.OutOrStdout(), admin.Screen.PlayerTable())
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "confirm the delete")
	return cmd
}

func newPlayersImportCommand(admin *app.Admin) *cobra.Command {
	var (
		path    string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Create players from a CSV file",
		Long: `Reads a CSV file with the header
name,registrationNumber,branch,section,year,mobileNumber,teamId
and creates one player per row. teamId may be empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer f.Close()

			rows, err := parseImportCSV(f)
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = admin.ImportWorkers
			}
			report, err := admin.Synchronizer.ImportPlayers(cmd.Context(), rows, workers)
			out := cmd.OutOrStdout()
			for _, failure := range report.Failures {
				fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("line %d (%s): %v", failure.Line, failure.RegistrationNumber, failure.Err)))
			}
			if err != nil {
				return err
			}
			printPlayerTable(out, admin.Screen.PlayerTable())
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "CSV file to import")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent creates (default from IMPORT_WORKERS)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func addPlayerFlags(flags *pflag.FlagSet) {
	flags.String("name", "", "player name")
	flags.String("reg", "", "registration number")
	flags.String("branch", "", "branch")
	flags.String("section", "", "section")
	flags.String("year", "", "year")
	flags.String("mobile", "", "mobile number")
	flags.Int64("team", 0, "team id; 0 unassigns")
}

// applyPlayerFlags overrides in with every flag the operator set.
func applyPlayerFlags(flags *pflag.FlagSet, in player.Input) (player.Input, error) {
	set := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	set("name", &in.Name)
	set("reg", &in.RegistrationNumber)
	set("branch", &in.Branch)
	set("section", &in.Section)
	set("year", &in.Year)
	set("mobile", &in.MobileNumber)

	if flags.Changed("team") {
		teamID, err := flags.GetInt64("team")
		if err != nil {
			return player.Input{}, err
		}
		if teamID > 0 {
			in.TeamID = &teamID
		} else {
			in.TeamID = nil
		}
	}
	return in, nil
}
