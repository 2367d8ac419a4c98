package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mahotsav/championship-admin/internal/platform/notify"
	"github.com/mahotsav/championship-admin/internal/render"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#9CA3AF")
	colorBorder  = lipgloss.Color("#4B5563")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func printNotification(w io.Writer, n notify.Notification) {
	if n.IsError() {
		fmt.Fprintln(w, errorStyle.Render("✗ "+n.Message))
		return
	}
	fmt.Fprintln(w, successStyle.Render("✓ "+n.Message))
}

func printTeamTable(w io.Writer, v render.TeamTable) {
	scope := render.AllInstitutes
	if v.Scope != "" {
		scope = v.Scope
	}
	fmt.Fprintln(w, titleStyle.Render("Teams")+" "+mutedStyle.Render("("+scope+")"))
	if len(v.Rows) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No teams found."))
		return
	}

	t := newTable("ID", "Team", "Institute", "Captain", "Vice Captain", "Players")
	for _, row := range v.Rows {
		t.Row(strconv.FormatInt(row.ID, 10), row.Name, row.Institute, row.Captain, row.ViceCaptain, strconv.Itoa(row.Players))
	}
	fmt.Fprintln(w, t.Render())
}

func printPlayerTable(w io.Writer, v render.PlayerTable) {
	fmt.Fprintln(w, titleStyle.Render("Players"))
	if len(v.Rows) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No players found."))
		return
	}

	t := newTable("ID", "Name", "Reg. No", "Branch/Year", "Section", "Mobile", "Team")
	for _, row := range v.Rows {
		t.Row(strconv.FormatInt(row.ID, 10), row.Name, row.RegistrationNumber, row.BranchYear, row.Section, row.Mobile, row.Team)
	}
	fmt.Fprintln(w, t.Render())
}

func printInstituteSelect(w io.Writer, v render.Select) {
	for _, opt := range v.Options {
		marker := "  "
		if opt.Selected {
			marker = "> "
		}
		fmt.Fprintln(w, marker+opt.Label)
	}
}

func printPools(w io.Writer, v render.PoolsView) {
	fmt.Fprintln(w, titleStyle.Render("Draw Sheets"))
	if v.Empty {
		fmt.Fprintln(w, mutedStyle.Render(v.Message))
		return
	}
	for _, pool := range v.Pools {
		t := newTable("ID", "Team", "Institute")
		for _, entry := range pool.Teams {
			t.Row(strconv.FormatInt(entry.ID, 10), entry.Name, entry.Institute)
		}
		fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render(pool.Title))
		fmt.Fprintln(w, t.Render())
	}
}

func printPromotion(w io.Writer, v render.PromotionView) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Promotion Results (top %d)", v.TopN)))
	if v.Empty {
		fmt.Fprintln(w, mutedStyle.Render(v.Message))
		return
	}
	t := newTable("Rank", "Team", "Institute", "Captain")
	for _, row := range v.Rows {
		t.Row(strconv.Itoa(row.Rank), row.TeamName, row.Institute, row.Captain)
	}
	fmt.Fprintln(w, t.Render())
}
