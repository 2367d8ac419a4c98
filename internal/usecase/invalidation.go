package usecase

import "strings"

type Entity string

const (
	EntityTeam   Entity = "team"
	EntityPlayer Entity = "player"
)

type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Mutation identifies a committed write.
type Mutation struct {
	Entity Entity
	Op     Operation
	ID     int64
}

// ReloadSet is the set of views refreshed after a mutation.
type ReloadSet uint8

const (
	ReloadTeams ReloadSet = 1 << iota
	ReloadPlayers
	ReloadPools
	ReloadPromotion
)

const (
	ReloadTournament = ReloadPools | ReloadPromotion
	ReloadAll        = ReloadTeams | ReloadPlayers | ReloadTournament
)

var reloadTable = map[Entity]map[Operation]ReloadSet{
	EntityTeam: {
		OpCreate: ReloadTeams | ReloadTournament,
		OpUpdate: ReloadTeams | ReloadTournament,
		OpDelete: ReloadTeams | ReloadTournament,
	},
	EntityPlayer: {
		OpCreate: ReloadPlayers | ReloadTeams,
		OpUpdate: ReloadPlayers | ReloadTeams,
		OpDelete: ReloadPlayers | ReloadTeams,
	},
}

// ReloadSetFor returns the views a committed mutation invalidates. Unknown
// mutations invalidate nothing.
func ReloadSetFor(m Mutation) ReloadSet {
	return reloadTable[m.Entity][m.Op]
}

func (s ReloadSet) Has(v ReloadSet) bool {
	return v != 0 && s&v == v
}

func (s ReloadSet) String() string {
	if s == 0 {
		return "none"
	}
	names := make([]string, 0, 4)
	for _, item := range []struct {
		bit  ReloadSet
		name string
	}{
		{ReloadTeams, "teams"},
		{ReloadPlayers, "players"},
		{ReloadPools, "pools"},
		{ReloadPromotion, "promotion"},
	} {
		if s.Has(item.bit) {
			names = append(names, item.name)
		}
	}
	return strings.Join(names, ",")
}
