package team

import (
	"sort"
	"strings"
)

// Team is a registered championship side. Players are only present when the
// team was fetched with player detail.
type Team struct {
	ID            int64
	Name          string
	InstituteName string
	Captain       string
	ViceCaptain   string

	Players       []Member
	PlayersLoaded bool
	// ReportedPlayerCount is the server's count when the player list was not sent.
	ReportedPlayerCount int
}

// Member is the slice of a Player embedded in a Team payload.
type Member struct {
	ID                 int64
	Name               string
	RegistrationNumber string
}

// Input is the write payload for create and update.
type Input struct {
	Name          string `validate:"required,max=120"`
	InstituteName string `validate:"max=160"`
	Captain       string `validate:"required,max=120"`
	ViceCaptain   string `validate:"max=120"`
}

// PlayerCount is what the team list shows in its players column.
func (t Team) PlayerCount() int {
	if t.PlayersLoaded {
		return len(t.Players)
	}
	return t.ReportedPlayerCount
}

// ToInput returns the editable fields, used to prefill an edit form.
func (t Team) ToInput() Input {
	return Input{
		Name:          t.Name,
		InstituteName: t.InstituteName,
		Captain:       t.Captain,
		ViceCaptain:   t.ViceCaptain,
	}
}

func (in Input) Normalize() Input {
	return Input{
		Name:          strings.TrimSpace(in.Name),
		InstituteName: strings.TrimSpace(in.InstituteName),
		Captain:       strings.TrimSpace(in.Captain),
		ViceCaptain:   strings.TrimSpace(in.ViceCaptain),
	}
}

// InstituteNames returns the distinct non-empty institute names, sorted.
func InstituteNames(teams []Team) []string {
	seen := make(map[string]struct{}, len(teams))
	out := make([]string, 0, len(teams))
	for _, item := range teams {
		name := strings.TrimSpace(item.InstituteName)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// FindByID looks a team up in a loaded collection.
func FindByID(teams []Team, id int64) (Team, bool) {
	for _, item := range teams {
		if item.ID == id {
			return item, true
		}
	}
	return Team{}, false
}
