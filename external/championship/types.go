package championship

import (
	"strings"

	"github.com/mahotsav/championship-admin/internal/domain/player"
	"github.com/mahotsav/championship-admin/internal/domain/team"
)

type teamPayload struct {
	ID            int64            `json:"id"`
	TeamName      string           `json:"teamName"`
	InstituteName *string          `json:"instituteName"`
	Captain       string           `json:"captain"`
	ViceCaptain   *string          `json:"viceCaptain"`
	Players       *[]memberPayload `json:"players,omitempty"`
	PlayerCount   *int             `json:"playerCount,omitempty"`
}

type memberPayload struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	RegistrationNumber string `json:"registrationNumber"`
}

type teamWritePayload struct {
	TeamName      string `json:"teamName"`
	InstituteName string `json:"instituteName"`
	Captain       string `json:"captain"`
	ViceCaptain   string `json:"viceCaptain"`
}

type playerPayload struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	RegistrationNumber string          `json:"registrationNumber"`
	Branch             string          `json:"branch"`
	Section            string          `json:"section"`
	Year               string          `json:"year"`
	MobileNumber       string          `json:"mobileNumber"`
	Team               *teamRefPayload `json:"team"`
}

type teamRefPayload struct {
	ID       int64  `json:"id"`
	TeamName string `json:"teamName,omitempty"`
}

// playerWritePayload links a team by id only; Team is sent as null to unlink.
type playerWritePayload struct {
	Name               string       `json:"name"`
	RegistrationNumber string       `json:"registrationNumber"`
	Branch             string       `json:"branch"`
	Section            string       `json:"section"`
	Year               string       `json:"year"`
	MobileNumber       string       `json:"mobileNumber"`
	Team               *teamLinkRef `json:"team"`
}

type teamLinkRef struct {
	ID int64 `json:"id"`
}

func (p teamPayload) toDomain() team.Team {
	out := team.Team{
		ID:            p.ID,
		Name:          p.TeamName,
		InstituteName: derefString(p.InstituteName),
		Captain:       p.Captain,
		ViceCaptain:   derefString(p.ViceCaptain),
	}
	if p.Players != nil {
		out.PlayersLoaded = true
		out.Players = make([]team.Member, 0, len(*p.Players))
		for _, item := range *p.Players {
			out.Players = append(out.Players, team.Member{
				ID:                 item.ID,
				Name:               item.Name,
				RegistrationNumber: item.RegistrationNumber,
			})
		}
	}
	if p.PlayerCount != nil {
		out.ReportedPlayerCount = *p.PlayerCount
	}
	return out
}

func mapTeams(items []teamPayload) []team.Team {
	out := make([]team.Team, 0, len(items))
	for _, item := range items {
		out = append(out, item.toDomain())
	}
	return out
}

func newTeamWritePayload(in team.Input) teamWritePayload {
	return teamWritePayload{
		TeamName:      in.Name,
		InstituteName: in.InstituteName,
		Captain:       in.Captain,
		ViceCaptain:   in.ViceCaptain,
	}
}

func (p playerPayload) toDomain() player.Player {
	out := player.Player{
		ID:                 p.ID,
		Name:               p.Name,
		RegistrationNumber: p.RegistrationNumber,
		Branch:             p.Branch,
		Section:            p.Section,
		Year:               p.Year,
		MobileNumber:       p.MobileNumber,
	}
	if p.Team != nil && p.Team.ID > 0 {
		out.Team = &player.TeamRef{ID: p.Team.ID, Name: p.Team.TeamName}
	}
	return out
}

func mapPlayers(items []playerPayload) []player.Player {
	out := make([]player.Player, 0, len(items))
	for _, item := range items {
		out = append(out, item.toDomain())
	}
	return out
}

func newPlayerWritePayload(in player.Input) playerWritePayload {
	out := playerWritePayload{
		Name:               in.Name,
		RegistrationNumber: in.RegistrationNumber,
		Branch:             in.Branch,
		Section:            in.Section,
		Year:               in.Year,
		MobileNumber:       in.MobileNumber,
	}
	if in.TeamID != nil && *in.TeamID > 0 {
		out.Team = &teamLinkRef{ID: *in.TeamID}
	}
	return out
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}
