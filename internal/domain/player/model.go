package player

import "strings"

// Player is a registered participant, optionally linked to one team.
type Player struct {
	ID                 int64
	Name               string
	RegistrationNumber string
	Branch             string
	Section            string
	Year               string
	MobileNumber       string
	Team               *TeamRef
}

// TeamRef is the team a player points at. Name is whatever the server sent
// alongside the player and may lag behind the team collection.
type TeamRef struct {
	ID   int64
	Name string
}

// Input is the write payload. The team is linked by id only.
type Input struct {
	Name               string `validate:"required,max=120"`
	RegistrationNumber string `validate:"required,max=40"`
	Branch             string `validate:"max=80"`
	Section            string `validate:"max=20"`
	Year               string `validate:"max=20"`
	MobileNumber       string `validate:"omitempty,max=20"`
	TeamID             *int64 `validate:"omitempty,gt=0"`
}

func (p Player) TeamID() (int64, bool) {
	if p.Team == nil || p.Team.ID <= 0 {
		return 0, false
	}
	return p.Team.ID, true
}

func (p Player) ToInput() Input {
	in := Input{
		Name:               p.Name,
		RegistrationNumber: p.RegistrationNumber,
		Branch:             p.Branch,
		Section:            p.Section,
		Year:               p.Year,
		MobileNumber:       p.MobileNumber,
	}
	if id, ok := p.TeamID(); ok {
		in.TeamID = &id
	}
	return in
}

func (in Input) Normalize() Input {
	out := Input{
		Name:               strings.TrimSpace(in.Name),
		RegistrationNumber: strings.TrimSpace(in.RegistrationNumber),
		Branch:             strings.TrimSpace(in.Branch),
		Section:            strings.TrimSpace(in.Section),
		Year:               strings.TrimSpace(in.Year),
		MobileNumber:       strings.TrimSpace(in.MobileNumber),
	}
	if in.TeamID != nil && *in.TeamID > 0 {
		id := *in.TeamID
		out.TeamID = &id
	}
	return out
}
