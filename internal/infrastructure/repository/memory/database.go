package memory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mahotsav/championship-admin/internal/domain/player"
	"github.com/mahotsav/championship-admin/internal/domain/team"
	"github.com/mahotsav/championship-admin/internal/platform/id"
	"github.com/mahotsav/championship-admin/internal/usecase"
)

// Database holds teams and players behind one lock so that cascades and the
// registration number rule are applied atomically. Rows keep insertion order.
type Database struct {
	mu      sync.RWMutex
	teams   []teamRow
	players []playerRow

	teamIDs   *id.Sequence
	playerIDs *id.Sequence
}

type teamRow struct {
	id            int64
	name          string
	instituteName string
	captain       string
	viceCaptain   string
}

type playerRow struct {
	id                 int64
	name               string
	registrationNumber string
	branch             string
	section            string
	year               string
	mobileNumber       string
	teamID             int64
}

func NewDatabase() *Database {
	return &Database{
		teamIDs:   id.NewSequence(0),
		playerIDs: id.NewSequence(0),
	}
}

func (d *Database) Teams() *TeamRepository {
	return &TeamRepository{db: d}
}

func (d *Database) Players() *PlayerRepository {
	return &PlayerRepository{db: d}
}

func (d *Database) Tournament() *TournamentRepository {
	return &TournamentRepository{db: d}
}

// Seed loads fixed rows, keeping their ids.
func (d *Database) Seed(teams []team.Team, players []player.Player) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, item := range teams {
		if d.teamIndex(item.ID) >= 0 {
			return fmt.Errorf("%w: duplicate seed team=%d", usecase.ErrConflict, item.ID)
		}
		d.teamIDs.Observe(item.ID)
		d.teams = append(d.teams, newTeamRow(item.ID, item.ToInput()))
	}
	for _, item := range players {
		in := item.ToInput()
		if err := d.checkPlayer(0, in); err != nil {
			return fmt.Errorf("seed player=%d: %w", item.ID, err)
		}
		d.playerIDs.Observe(item.ID)
		d.players = append(d.players, newPlayerRow(item.ID, in))
	}
	return nil
}

func (d *Database) teamIndex(teamID int64) int {
	for idx := range d.teams {
		if d.teams[idx].id == teamID {
			return idx
		}
	}
	return -1
}

func (d *Database) playerIndex(playerID int64) int {
	for idx := range d.players {
		if d.players[idx].id == playerID {
			return idx
		}
	}
	return -1
}

// checkPlayer enforces the registration number rule and the team link. self
// is the player being updated, or zero on create.
func (d *Database) checkPlayer(self int64, in player.Input) error {
	reg := strings.TrimSpace(in.RegistrationNumber)
	for _, row := range d.players {
		if row.id != self && strings.EqualFold(row.registrationNumber, reg) {
			return fmt.Errorf("%w: registrationNumber %q already exists", usecase.ErrConflict, reg)
		}
	}
	if in.TeamID != nil && d.teamIndex(*in.TeamID) < 0 {
		return fmt.Errorf("%w: team=%d", usecase.ErrNotFound, *in.TeamID)
	}
	return nil
}

func (d *Database) teamView(row teamRow) team.Team {
	members := make([]team.Member, 0)
	for _, p := range d.players {
		if p.teamID == row.id {
			members = append(members, team.Member{ID: p.id, Name: p.name, RegistrationNumber: p.registrationNumber})
		}
	}
	return team.Team{
		ID:                  row.id,
		Name:                row.name,
		InstituteName:       row.instituteName,
		Captain:             row.captain,
		ViceCaptain:         row.viceCaptain,
		Players:             members,
		PlayersLoaded:       true,
		ReportedPlayerCount: len(members),
	}
}

func (d *Database) playerView(row playerRow) player.Player {
	out := player.Player{
		ID:                 row.id,
		Name:               row.name,
		RegistrationNumber: row.registrationNumber,
		Branch:             row.branch,
		Section:            row.section,
		Year:               row.year,
		MobileNumber:       row.mobileNumber,
	}
	if row.teamID > 0 {
		ref := &player.TeamRef{ID: row.teamID}
		if idx := d.teamIndex(row.teamID); idx >= 0 {
			ref.Name = d.teams[idx].name
		}
		out.Team = ref
	}
	return out
}

func newTeamRow(teamID int64, in team.Input) teamRow {
	in = in.Normalize()
	return teamRow{
		id:            teamID,
		name:          in.Name,
		instituteName: in.InstituteName,
		captain:       in.Captain,
		viceCaptain:   in.ViceCaptain,
	}
}

func newPlayerRow(playerID int64, in player.Input) playerRow {
	in = in.Normalize()
	row := playerRow{
		id:                 playerID,
		name:               in.Name,
		registrationNumber: in.RegistrationNumber,
		branch:             in.Branch,
		section:            in.Section,
		year:               in.Year,
		mobileNumber:       in.MobileNumber,
	}
	if in.TeamID != nil {
		row.teamID = *in.TeamID
	}
	return row
}
