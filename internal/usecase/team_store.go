package usecase

import (
	"strings"

	"github.com/mahotsav/championship-admin/internal/domain/player"
	"github.com/mahotsav/championship-admin/internal/domain/team"
	"github.com/mahotsav/championship-admin/internal/platform/cache"
	"github.com/mahotsav/championship-admin/internal/render"
)

// TeamStore owns the cached Team collection. Only the Team reload pipeline
// calls Set; readers always receive a copy.
type TeamStore struct {
	snapshot *cache.Snapshot[[]team.Team]
}

func NewTeamStore() *TeamStore {
	return &TeamStore{snapshot: cache.NewSnapshot[[]team.Team]()}
}

// Set replaces the whole collection and marks it fresh.
func (s *TeamStore) Set(teams []team.Team) uint64 {
	return s.snapshot.Replace(cloneTeams(teams))
}

// Get returns the current snapshot, empty before the first load.
func (s *TeamStore) Get() []team.Team {
	return cloneTeams(s.snapshot.Get())
}

// Invalidate marks the snapshot stale. The teams are kept for display until
// the next reload replaces them.
func (s *TeamStore) Invalidate() {
	s.snapshot.Invalidate()
}

func (s *TeamStore) Fresh() bool {
	return s.snapshot.Fresh()
}

// Loaded reports whether any reload has populated the store yet.
func (s *TeamStore) Loaded() bool {
	return s.snapshot.Version() > 0
}

func (s *TeamStore) Version() uint64 {
	return s.snapshot.Version()
}

func (s *TeamStore) Lookup(id int64) (team.Team, bool) {
	return team.FindByID(s.snapshot.Get(), id)
}

// TeamName resolves the team column of a player row. The cached name wins only
// while the store is fresh; a stale store defers to the name the server sent
// with the player.
func (s *TeamStore) TeamName(p player.Player) string {
	id, ok := p.TeamID()
	if !ok {
		return render.Unassigned
	}

	cached, found := s.Lookup(id)
	if found && s.Fresh() {
		return cached.Name
	}
	if p.Team != nil && strings.TrimSpace(p.Team.Name) != "" {
		return p.Team.Name
	}
	if found {
		return cached.Name
	}
	return render.Unassigned
}

func cloneTeams(teams []team.Team) []team.Team {
	if teams == nil {
		return []team.Team{}
	}
	out := make([]team.Team, len(teams))
	copy(out, teams)
	for idx := range out {
		if out[idx].Players != nil {
			out[idx].Players = append([]team.Member(nil), out[idx].Players...)
		}
	}
	return out
}
