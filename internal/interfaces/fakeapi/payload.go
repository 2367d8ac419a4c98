package fakeapi

import (
	"github.com/mahotsav/championship-admin/internal/domain/player"
	"github.com/mahotsav/championship-admin/internal/domain/team"
)

type teamDocument struct {
	ID            int64            `json:"id"`
	TeamName      string           `json:"teamName"`
	InstituteName *string          `json:"instituteName"`
	Captain       string           `json:"captain"`
	ViceCaptain   *string          `json:"viceCaptain"`
	Players       []memberDocument `json:"players"`
	PlayerCount   int              `json:"playerCount"`
}

type memberDocument struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	RegistrationNumber string `json:"registrationNumber"`
}

type playerDocument struct {
	ID                 int64        `json:"id"`
	Name               string       `json:"name"`
	RegistrationNumber string       `json:"registrationNumber"`
	Branch             string       `json:"branch"`
	Section            string       `json:"section"`
	Year               string       `json:"year"`
	MobileNumber       string       `json:"mobileNumber"`
	Team               *teamSummary `json:"team"`
}

type teamSummary struct {
	ID       int64  `json:"id"`
	TeamName string `json:"teamName"`
}

type teamRequest struct {
	TeamName      string `json:"teamName"`
	InstituteName string `json:"instituteName"`
	Captain       string `json:"captain"`
	ViceCaptain   string `json:"viceCaptain"`
}

type playerRequest struct {
	Name               string    `json:"name"`
	RegistrationNumber string    `json:"registrationNumber"`
	Branch             string    `json:"branch"`
	Section            string    `json:"section"`
	Year               string    `json:"year"`
	MobileNumber       string    `json:"mobileNumber"`
	Team               *teamLink `json:"team"`
}

type teamLink struct {
	ID int64 `json:"id"`
}

func (p teamRequest) toInput() team.Input {
	return team.Input{
		Name:          p.TeamName,
		InstituteName: p.InstituteName,
		Captain:       p.Captain,
		ViceCaptain:   p.ViceCaptain,
	}
}

func (p playerRequest) toInput() player.Input {
	in := player.Input{
		Name:               p.Name,
		RegistrationNumber: p.RegistrationNumber,
		Branch:             p.Branch,
		Section:            p.Section,
		Year:               p.Year,
		MobileNumber:       p.MobileNumber,
	}
	if p.Team != nil && p.Team.ID > 0 {
		teamID := p.Team.ID
		in.TeamID = &teamID
	}
	return in
}

func newTeamDocument(item team.Team) teamDocument {
	members := make([]memberDocument, 0, len(item.Players))
	for _, m := range item.Players {
		members = append(members, memberDocument{ID: m.ID, Name: m.Name, RegistrationNumber: m.RegistrationNumber})
	}
	return teamDocument{
		ID:            item.ID,
		TeamName:      item.Name,
		InstituteName: optional(item.InstituteName),
		Captain:       item.Captain,
		ViceCaptain:   optional(item.ViceCaptain),
		Players:       members,
		PlayerCount:   item.PlayerCount(),
	}
}

func newTeamDocuments(items []team.Team) []teamDocument {
	out := make([]teamDocument, 0, len(items))
	for _, item := range items {
		out = append(out, newTeamDocument(item))
	}
	return out
}

func newPlayerDocument(item player.Player) playerDocument {
	out := playerDocument{
		ID:                 item.ID,
		Name:               item.Name,
		RegistrationNumber: item.RegistrationNumber,
		Branch:             item.Branch,
		Section:            item.Section,
		Year:               item.Year,
		MobileNumber:       item.MobileNumber,
	}
	if item.Team != nil {
		out.Team = &teamSummary{ID: item.Team.ID, TeamName: item.Team.Name}
	}
	return out
}

func newPlayerDocuments(items []player.Player) []playerDocument {
	out := make([]playerDocument, 0, len(items))
	for _, item := range items {
		out = append(out, newPlayerDocument(item))
	}
	return out
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
