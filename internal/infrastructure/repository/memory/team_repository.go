package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/mahotsav/championship-admin/internal/domain/team"
	"github.com/mahotsav/championship-admin/internal/usecase"
)

type TeamRepository struct {
	db *Database
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]team.Team, 0, len(r.db.teams))
	for _, row := range r.db.teams {
		out = append(out, r.db.teamView(row))
	}
	return out, nil
}

// ListByInstitute matches the institute name exactly.
func (r *TeamRepository) ListByInstitute(_ context.Context, instituteName string) ([]team.Team, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, row := range r.db.teams {
		if row.instituteName == instituteName {
			out = append(out, r.db.teamView(row))
		}
	}
	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	idx := r.db.teamIndex(teamID)
	if idx < 0 {
		return team.Team{}, fmt.Errorf("%w: team=%d", usecase.ErrNotFound, teamID)
	}
	return r.db.teamView(r.db.teams[idx]), nil
}

func (r *TeamRepository) Create(_ context.Context, in team.Input) (team.Team, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Captain) == "" {
		return team.Team{}, fmt.Errorf("%w: team name and captain are required", usecase.ErrInvalidInput)
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	row := newTeamRow(r.db.teamIDs.NextID(), in)
	r.db.teams = append(r.db.teams, row)
	return r.db.teamView(row), nil
}

func (r *TeamRepository) Update(_ context.Context, teamID int64, in team.Input) (team.Team, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Captain) == "" {
		return team.Team{}, fmt.Errorf("%w: team name and captain are required", usecase.ErrInvalidInput)
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	idx := r.db.teamIndex(teamID)
	if idx < 0 {
		return team.Team{}, fmt.Errorf("%w: team=%d", usecase.ErrNotFound, teamID)
	}
	r.db.teams[idx] = newTeamRow(teamID, in)
	return r.db.teamView(r.db.teams[idx]), nil
}

// Delete removes the team together with every player linked to it.
func (r *TeamRepository) Delete(_ context.Context, teamID int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	idx := r.db.teamIndex(teamID)
	if idx < 0 {
		return fmt.Errorf("%w: team=%d", usecase.ErrNotFound, teamID)
	}
	r.db.teams = append(r.db.teams[:idx], r.db.teams[idx+1:]...)

	kept := r.db.players[:0]
	for _, row := range r.db.players {
		if row.teamID != teamID {
			kept = append(kept, row)
		}
	}
	r.db.players = kept
	return nil
}

var _ team.Repository = (*TeamRepository)(nil)
