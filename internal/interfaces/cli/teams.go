package cli

import (
	"fmt"
	"strconv"

	"github.com/mahotsav/championship-admin/internal/app"
	"github.com/mahotsav/championship-admin/internal/domain/team"
	"github.com/mahotsav/championship-admin/internal/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const reloadAll = usecase.ReloadAll

func newTeamsCommand(admin *app.Admin) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List and edit teams",
	}
	cmd.AddCommand(
		newTeamsListCommand(admin),
		newTeamsGetCommand(admin),
		newTeamsCreateCommand(admin),
		newTeamsUpdateCommand(admin),
		newTeamsDeleteCommand(admin),
	)
	return cmd
}

func newTeamsListCommand(admin *app.Admin) *cobra.Command {
	var institute string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List teams, optionally for one institute",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if _, err := admin.Synchronizer.ReloadTeams(ctx); err != nil {
				return err
			}
			if institute != "" {
				if _, err := admin.Reconciler.SelectInstitute(ctx, institute); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			printInstituteSelect(out, admin.Screen.InstituteSelect())
			printTeamTable(out, admin.Screen.TeamTable())
			return nil
		},
	}
	cmd.Flags().StringVar(&institute, "institute", "", "only show teams of this institute")
	return cmd
}

func newTeamsGetCommand(admin *app.Admin) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one team with its players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			form, err := admin.Synchronizer.PrepareTeamForm(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(form.Input.Name))
			fmt.Fprintf(out, "Institute:    %s\n", orDash(form.Input.InstituteName))
			fmt.Fprintf(out, "Captain:      %s\n", form.Input.Captain)
			fmt.Fprintf(out, "Vice Captain: %s\n", orDash(form.Input.ViceCaptain))
			if len(form.Players) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("No players on this team."))
				return nil
			}
			t := newTable("ID", "Name", "Reg. No")
			for _, member := range form.Players {
				t.Row(strconv.FormatInt(member.ID, 10), member.Name, member.RegistrationNumber)
			}
			fmt.Fprintln(out, t.Render())
			return nil
		},
	}
}

func newTeamsCreateCommand(admin *app.Admin) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := applyTeamFlags(cmd.Flags(), team.Input{})
			if _, _, err := admin.Synchronizer.CreateTeam(cmd.Context(), in); err != nil {
				return err
			}
			printTeamTable(cmd.OutOrStdout(), admin.Screen.TeamTable())
			return nil
		},
	}
	addTeamFlags(cmd.Flags())
	return cmd
}

func newTeamsUpdateCommand(admin *app.Admin) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the given fields of a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			form, err := admin.Synchronizer.PrepareTeamForm(ctx, id)
			if err != nil {
				return err
			}
			in := applyTeamFlags(cmd.Flags(), form.Input)
			if _, _, err := admin.Synchronizer.UpdateTeam(ctx, id, in); err != nil {
				return err
			}
			printTeamTable(cmd.OutOrStdout(), admin.Screen.TeamTable())
			return nil
		},
	}
	addTeamFlags(cmd.Flags())
	return cmd
}

func newTeamsDeleteCommand(admin *app.Admin) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a team and its players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := confirmDelete(cmd, "team", id); err != nil {
				return err
			}
			if _, err := admin.Synchronizer.DeleteTeam(cmd.Context(), id); err != nil {
				return err
			}
			printTeamTable(cmd.OutOrStdout(), admin.Screen.TeamTable())
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "confirm the delete")
	return cmd
}

func addTeamFlags(flags *pflag.FlagSet) {
	flags.String("name", "", "team name")
	flags.String("institute", "", "institute name")
	flags.String("captain", "", "captain")
	flags.String("vice-captain", "", "vice captain")
}

// applyTeamFlags overrides in with every flag the operator set.
func applyTeamFlags(flags *pflag.FlagSet, in team.Input) team.Input {
	set := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	set("name", &in.Name)
	set("institute", &in.InstituteName)
	set("captain", &in.Captain)
	set("vice-captain", &in.ViceCaptain)
	return in
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
