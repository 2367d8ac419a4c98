package usecase

import (
	"context"
	"fmt"

	"github.com/mahotsav/championship-admin/internal/domain/player"
	"github.com/mahotsav/championship-admin/internal/domain/team"
	"github.com/mahotsav/championship-admin/internal/render"
)

// TeamForm is the state an add/edit team form opens with. ID is zero when
// creating.
type TeamForm struct {
	ID      int64
	Input   team.Input
	Players []team.Member
}

func (f TeamForm) Editing() bool {
	return f.ID > 0
}

// PlayerForm carries the team selection control alongside the player fields.
type PlayerForm struct {
	ID    int64
	Input player.Input
	Teams render.Select
}

func (f PlayerForm) Editing() bool {
	return f.ID > 0
}

// PrepareTeamForm returns an empty form for id 0, otherwise the team as the
// server has it, players included.
func (s *Synchronizer) PrepareTeamForm(ctx context.Context, id int64) (TeamForm, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Synchronizer.PrepareTeamForm")
	defer span.End()

	if id <= 0 {
		return TeamForm{}, nil
	}
	current, err := s.teams.GetByID(ctx, id)
	if err != nil {
		return TeamForm{}, fmt.Errorf("prepare team form id=%d: %w", id, err)
	}
	return TeamForm{ID: current.ID, Input: current.ToInput(), Players: current.Players}, nil
}

// PreparePlayerForm builds the team selection control from the store. Teams
// are fetched only when the store has never been loaded.
func (s *Synchronizer) PreparePlayerForm(ctx context.Context, id int64) (PlayerForm, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Synchronizer.PreparePlayerForm")
	defer span.End()

	if !s.store.Loaded() {
		if _, err := s.ReloadTeams(ctx); err != nil {
			return PlayerForm{}, fmt.Errorf("prepare player form: %w", err)
		}
	}

	form := PlayerForm{}
	if id > 0 {
		current, err := s.players.GetByID(ctx, id)
		if err != nil {
			return PlayerForm{}, fmt.Errorf("prepare player form id=%d: %w", id, err)
		}
		form.ID = current.ID
		form.Input = current.ToInput()
	}
	form.Teams = render.TeamSelect(s.store.Get(), form.Input.TeamID)
	return form, nil
}
