package usecase

import (
	"context"
	"testing"

	"github.com/mahotsav/championship-admin/internal/domain/player"
	"github.com/mahotsav/championship-admin/internal/domain/team"
	"github.com/mahotsav/championship-admin/internal/render"
	"github.com/stretchr/testify/mock"
)

func TestSynchronizer_PrepareTeamForm(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	empty, err := f.sync.PrepareTeamForm(context.Background(), 0)
	if err != nil || empty.Editing() {
		t.Fatalf("expected empty create form, got %+v err=%v", empty, err)
	}

	f.teams.On("GetByID", mock.Anything, int64(5)).Return(team.Team{
		ID:            5,
		Name:          "Alpha",
		Captain:       "Cap",
		ViceCaptain:   "Vice",
		Players:       []team.Member{{ID: 1, Name: "Bob"}},
		PlayersLoaded: true,
	}, nil).Once()

	form, err := f.sync.PrepareTeamForm(context.Background(), 5)
	if err != nil {
		t.Fatalf("prepare team form: %v", err)
	}
	if !form.Editing() || form.Input.ViceCaptain != "Vice" || len(form.Players) != 1 {
		t.Fatalf("unexpected form: %+v", form)
	}
}

func TestSynchronizer_PreparePlayerFormUsesStore(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.teams.On("List", mock.Anything).Return([]team.Team{{ID: 1, Name: "Alpha"}, {ID: 2, Name: "Beta"}}, nil).Once()
	f.players.On("GetByID", mock.Anything, int64(9)).Return(player.Player{
		ID:                 9,
		Name:               "Bob",
		RegistrationNumber: "REG-9",
		Team:               &player.TeamRef{ID: 2, Name: "Beta"},
	}, nil).Once()

	form, err := f.sync.PreparePlayerForm(context.Background(), 9)
	if err != nil {
		t.Fatalf("prepare player form: %v", err)
	}
	if len(form.Teams.Options) != 3 || form.Teams.Options[0].Label != render.TeamPlaceholder {
		t.Fatalf("unexpected options: %+v", form.Teams.Options)
	}
	selected, ok := form.Teams.Selected()
	if !ok || selected.Label != "Beta" {
		t.Fatalf("expected Beta preselected, got %+v", selected)
	}

	// The store is loaded now, so a second form must not list teams again.
	blank, err := f.sync.PreparePlayerForm(context.Background(), 0)
	if err != nil {
		t.Fatalf("prepare blank player form: %v", err)
	}
	if selected, _ := blank.Teams.Selected(); selected.Label != render.TeamPlaceholder {
		t.Fatalf("expected placeholder selected, got %+v", selected)
	}
}
