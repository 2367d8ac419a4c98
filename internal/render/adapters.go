// Package render maps domain values to display models. Nothing here performs
// I/O; the functions are pure so views can be asserted without a terminal.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mahotsav/championship-admin/internal/domain/player"
	"github.com/mahotsav/championship-admin/internal/domain/team"
	"github.com/mahotsav/championship-admin/internal/domain/tournament"
)

const (
	NotAvailable            = "N/A"
	Unassigned              = "Unassigned"
	TeamPlaceholder         = "-- Select Team --"
	AllInstitutes           = "All Institutes"
	NoTeamsToDrawMessage    = "No teams to draw."
	NoTeamsQualifiedMessage = "No teams qualified."
)

type TeamRow struct {
	ID          int64
	Name        string
	Institute   string
	Captain     string
	ViceCaptain string
	Players     int
}

// TeamTable is the team list. Scope is the institute it was filtered by, or
// empty for the full collection.
type TeamTable struct {
	Scope string
	Rows  []TeamRow
}

type PlayerRow struct {
	ID                 int64
	Name               string
	RegistrationNumber string
	BranchYear         string
	Section            string
	Mobile             string
	Team               string
}

type PlayerTable struct {
	Rows []PlayerRow
}

type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Select is a selection control; the first option is always the placeholder.
type Select struct {
	Options []Option
}

func (s Select) Selected() (Option, bool) {
	for _, opt := range s.Options {
		if opt.Selected {
			return opt, true
		}
	}
	return Option{}, false
}

type TeamEntry struct {
	ID        int64
	Name      string
	Institute string
}

type PoolBlock struct {
	Title string
	Teams []TeamEntry
}

type PoolsView struct {
	Empty   bool
	Message string
	Pools   []PoolBlock
}

type RankedRow struct {
	Rank      int
	TeamName  string
	Institute string
	Captain   string
}

type PromotionView struct {
	TopN    int
	Empty   bool
	Message string
	Rows    []RankedRow
}

func NewTeamTable(scope string, teams []team.Team) TeamTable {
	rows := make([]TeamRow, 0, len(teams))
	for _, item := range teams {
		rows = append(rows, TeamRow{
			ID:          item.ID,
			Name:        item.Name,
			Institute:   orNotAvailable(item.InstituteName),
			Captain:     item.Captain,
			ViceCaptain: orNotAvailable(item.ViceCaptain),
			Players:     item.PlayerCount(),
		})
	}
	return TeamTable{Scope: scope, Rows: rows}
}

// NewPlayerTable builds player rows; teamName decides what each player's team
// column shows.
func NewPlayerTable(players []player.Player, teamName func(player.Player) string) PlayerTable {
	if teamName == nil {
		teamName = EmbeddedTeamName
	}
	rows := make([]PlayerRow, 0, len(players))
	for _, item := range players {
		rows = append(rows, PlayerRow{
			ID:                 item.ID,
			Name:               item.Name,
			RegistrationNumber: item.RegistrationNumber,
			BranchYear:         fmt.Sprintf("%s / %s", item.Branch, item.Year),
			Section:            item.Section,
			Mobile:             item.MobileNumber,
			Team:               teamName(item),
		})
	}
	return PlayerTable{Rows: rows}
}

// EmbeddedTeamName uses the team name that came back with the player.
func EmbeddedTeamName(p player.Player) string {
	if p.Team == nil || strings.TrimSpace(p.Team.Name) == "" {
		return Unassigned
	}
	return p.Team.Name
}

func TeamSelect(teams []team.Team, selectedID *int64) Select {
	options := make([]Option, 0, len(teams)+1)
	options = append(options, Option{Value: "", Label: TeamPlaceholder, Selected: selectedID == nil})
	for _, item := range teams {
		options = append(options, Option{
			Value:    strconv.FormatInt(item.ID, 10),
			Label:    item.Name,
			Selected: selectedID != nil && *selectedID == item.ID,
		})
	}
	return Select{Options: options}
}

func InstituteSelect(names []string, selected string) Select {
	options := make([]Option, 0, len(names)+1)
	options = append(options, Option{Value: "", Label: AllInstitutes, Selected: selected == ""})
	for _, name := range names {
		options = append(options, Option{Value: name, Label: name, Selected: name == selected})
	}
	return Select{Options: options}
}

func NewPoolsView(pools []tournament.Pool) PoolsView {
	if tournament.NoTeamsToDraw(pools) {
		return PoolsView{Empty: true, Message: NoTeamsToDrawMessage}
	}
	blocks := make([]PoolBlock, 0, len(pools))
	for _, pool := range pools {
		entries := make([]TeamEntry, 0, len(pool.Teams))
		for _, item := range pool.Teams {
			entries = append(entries, TeamEntry{ID: item.ID, Name: item.Name, Institute: orNotAvailable(item.InstituteName)})
		}
		blocks = append(blocks, PoolBlock{Title: fmt.Sprintf("Pool %d", pool.Number), Teams: entries})
	}
	return PoolsView{Pools: blocks}
}

func NewPromotionView(result tournament.PromotionResult) PromotionView {
	if len(result.Teams) == 0 {
		return PromotionView{TopN: result.TopN, Empty: true, Message: NoTeamsQualifiedMessage}
	}
	rows := make([]RankedRow, 0, len(result.Teams))
	for idx, item := range result.Teams {
		rows = append(rows, RankedRow{
			Rank:      idx + 1,
			TeamName:  item.Name,
			Institute: orNotAvailable(item.InstituteName),
			Captain:   item.Captain,
		})
	}
	return PromotionView{TopN: result.TopN, Rows: rows}
}

func orNotAvailable(v string) string {
	if strings.TrimSpace(v) == "" {
		return NotAvailable
	}
	return v
}
