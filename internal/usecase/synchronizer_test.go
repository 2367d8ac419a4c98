package usecase

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/mahotsav/championship-admin/internal/domain/player"
	"github.com/mahotsav/championship-admin/internal/domain/team"
	"github.com/mahotsav/championship-admin/internal/domain/tournament"
	"github.com/mahotsav/championship-admin/internal/render"
	"github.com/stretchr/testify/mock"
)

func TestSynchronizer_CreatePlayer_ReloadsTeamsBeforePlayers(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	var (
		mu    sync.Mutex
		order []string
	)
	record := func(name string) func(mock.Arguments) {
		return func(mock.Arguments) {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
		}
	}

	in := player.Input{Name: "Bob", RegistrationNumber: "REG-1", TeamID: int64Ptr(1)}
	bob := player.Player{ID: 10, Name: "Bob", RegistrationNumber: "REG-1", Team: &player.TeamRef{ID: 1, Name: "Alpha"}}
	alpha := team.Team{
		ID:            1,
		Name:          "Alpha",
		Captain:       "Cap",
		Players:       []team.Member{{ID: 10, Name: "Bob", RegistrationNumber: "REG-1"}},
		PlayersLoaded: true,
	}

	f.players.On("Create", mock.Anything, in).Return(bob, nil).Run(record("create")).Once()
	f.teams.On("List", mock.Anything).Return([]team.Team{alpha}, nil).Run(record("teams")).Once()
	f.players.On("List", mock.Anything).Return([]player.Player{bob}, nil).Run(record("players")).Once()

	created, outcome, err := f.sync.CreatePlayer(ctx, in)
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if created.ID != 10 {
		t.Fatalf("unexpected created id: %d", created.ID)
	}
	if outcome.Reloaded != ReloadTeams|ReloadPlayers || outcome.Failed != 0 {
		t.Fatalf("unexpected outcome: reloaded=%s failed=%s", outcome.Reloaded, outcome.Failed)
	}
	if want := []string{"create", "teams", "players"}; !reflect.DeepEqual(order, want) {
		t.Fatalf("unexpected call order: got=%v want=%v", order, want)
	}

	teams := f.screen.TeamTable()
	if len(teams.Rows) != 1 || teams.Rows[0].Players != 1 {
		t.Fatalf("expected Alpha with one player, got %+v", teams.Rows)
	}
	players := f.screen.PlayerTable()
	if len(players.Rows) != 1 || players.Rows[0].Team != "Alpha" {
		t.Fatalf("expected Bob on Alpha, got %+v", players.Rows)
	}
	if got := f.notifier.lastSuccess(); got != "Player created successfully!" {
		t.Fatalf("unexpected success message: %q", got)
	}
	if f.screen.Revision(render.ViewPools) != 0 || f.screen.Revision(render.ViewPromotion) != 0 {
		t.Fatalf("player mutation must not refresh tournament views")
	}
}

func TestSynchronizer_TeamMutations_ReloadTournamentViews(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		message string
		run     func(f *fixture) (MutationOutcome, error)
		arrange func(f *fixture)
	}{
		{
			name:    "create",
			message: "Team created successfully!",
			arrange: func(f *fixture) {
				f.teams.On("Create", mock.Anything, team.Input{Name: "Alpha", Captain: "Cap"}).Return(team.Team{ID: 1, Name: "Alpha", Captain: "Cap"}, nil).Once()
			},
			run: func(f *fixture) (MutationOutcome, error) {
				_, outcome, err := f.sync.CreateTeam(context.Background(), team.Input{Name: " Alpha ", Captain: "Cap"})
				return outcome, err
			},
		},
		{
			name:    "update",
			message: "Team updated successfully!",
			arrange: func(f *fixture) {
				f.teams.On("Update", mock.Anything, int64(1), team.Input{Name: "Alpha", Captain: "Cap"}).Return(team.Team{ID: 1, Name: "Alpha", Captain: "Cap"}, nil).Once()
			},
			run: func(f *fixture) (MutationOutcome, error) {
				_, outcome, err := f.sync.UpdateTeam(context.Background(), 1, team.Input{Name: "Alpha", Captain: "Cap"})
				return outcome, err
			},
		},
		{
			name:    "delete",
			message: "Team ID 1 deleted successfully.",
			arrange: func(f *fixture) {
				f.teams.On("Delete", mock.Anything, int64(1)).Return(nil).Once()
			},
			run: func(f *fixture) (MutationOutcome, error) {
				return f.sync.DeleteTeam(context.Background(), 1)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			tc.arrange(f)
			f.teams.On("List", mock.Anything).Return([]team.Team{{ID: 1, Name: "Alpha", Captain: "Cap"}}, nil).Once()
			f.tournament.On("DrawSheets", mock.Anything).Return([]tournament.Pool{{Number: 1, Teams: []team.Team{{ID: 1, Name: "Alpha"}}}}, nil).Once()
			f.tournament.On("PromotionResults", mock.Anything, 4).Return(tournament.PromotionResult{TopN: 4, Teams: []team.Team{{ID: 1, Name: "Alpha"}}}, nil).Once()

			outcome, err := tc.run(f)
			if err != nil {
				t.Fatalf("mutation: %v", err)
			}
			if outcome.Reloaded != ReloadTeams|ReloadTournament {
				t.Fatalf("unexpected reload set: %s", outcome.Reloaded)
			}
			if f.screen.Revision(render.ViewPools) != 1 || f.screen.Revision(render.ViewPromotion) != 1 {
				t.Fatalf("expected both tournament views rendered once")
			}
			if f.screen.Revision(render.ViewPlayers) != 0 {
				t.Fatalf("team mutation must not reload players")
			}
			if got := f.notifier.lastSuccess(); got != tc.message {
				t.Fatalf("unexpected success message: got=%q want=%q", got, tc.message)
			}
		})
	}
}

func TestSynchronizer_MutationFailureSkipsReload(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	transportErr := errors.New("API Error: 409 - registrationNumber exists")
	in := player.Input{Name: "Bob", RegistrationNumber: "REG-1"}
	f.players.On("Create", mock.Anything, in).Return(player.Player{}, transportErr).Once()

	_, outcome, err := f.sync.CreatePlayer(context.Background(), in)
	if !errors.Is(err, ErrMutationFailed) {
		t.Fatalf("expected ErrMutationFailed, got %v", err)
	}
	if !errors.Is(err, transportErr) {
		t.Fatalf("expected transport error to be wrapped, got %v", err)
	}
	if outcome.Reloaded != 0 {
		t.Fatalf("no reload expected after a failed mutation, got %s", outcome.Reloaded)
	}
	if f.notifier.lastSuccess() != "" {
		t.Fatalf("failed mutation must not announce success")
	}
}

func TestSynchronizer_ReloadFailureKeepsCommittedMutation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.players.On("Delete", mock.Anything, int64(7)).Return(nil).Once()
	f.teams.On("List", mock.Anything).Return(nil, errors.New("Failed to fetch data from /teams.")).Once()
	f.players.On("List", mock.Anything).Return([]player.Player{}, nil).Once()

	outcome, err := f.sync.DeletePlayer(context.Background(), 7)
	if err != nil {
		t.Fatalf("delete should stay committed: %v", err)
	}
	if outcome.Failed != ReloadTeams {
		t.Fatalf("expected teams reload to be reported failed, got %s", outcome.Failed)
	}
	if outcome.Reloaded != ReloadPlayers {
		t.Fatalf("expected players reload to succeed, got %s", outcome.Reloaded)
	}
	if f.sync.Store().Fresh() {
		t.Fatalf("store must stay stale after a failed team reload")
	}
}

func TestSynchronizer_ValidationRejectsBeforeTransport(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, _, err := f.sync.CreateTeam(context.Background(), team.Input{Name: "  ", Captain: "Cap"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if f.notifier.errorCount() != 1 {
		t.Fatalf("expected one error notification, got %d", f.notifier.errorCount())
	}

	if _, err := f.sync.DeletePlayer(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for id 0, got %v", err)
	}
}

func TestSynchronizer_ReloadTeams_Idempotent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	teams := []team.Team{
		{ID: 1, Name: "Alpha", InstituteName: "NIT", Captain: "A", ReportedPlayerCount: 3},
		{ID: 2, Name: "Beta", Captain: "B"},
	}
	f.teams.On("List", mock.Anything).Return(teams, nil).Twice()

	if _, err := f.sync.ReloadTeams(context.Background()); err != nil {
		t.Fatalf("first reload: %v", err)
	}
	firstTable, firstFilter, firstSelect := f.screen.TeamTable(), f.screen.InstituteSelect(), f.screen.TeamSelect()

	if _, err := f.sync.ReloadTeams(context.Background()); err != nil {
		t.Fatalf("second reload: %v", err)
	}
	if !reflect.DeepEqual(firstTable, f.screen.TeamTable()) {
		t.Fatalf("team table changed between identical reloads")
	}
	if !reflect.DeepEqual(firstFilter, f.screen.InstituteSelect()) || !reflect.DeepEqual(firstSelect, f.screen.TeamSelect()) {
		t.Fatalf("selection controls changed between identical reloads")
	}
	if firstTable.Rows[1].Institute != render.NotAvailable {
		t.Fatalf("expected N/A institute fallback, got %q", firstTable.Rows[1].Institute)
	}
}

func TestSynchronizer_ReloadPlayersLoadsTeamsWhenStale(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.teams.On("List", mock.Anything).Return([]team.Team{{ID: 1, Name: "Alpha Renamed", Captain: "A"}}, nil).Once()
	f.players.On("List", mock.Anything).Return([]player.Player{
		{ID: 1, Name: "Bob", Branch: "CSE", Year: "2", Team: &player.TeamRef{ID: 1, Name: "Alpha"}},
		{ID: 2, Name: "Eve"},
	}, nil).Twice()

	if _, err := f.sync.ReloadPlayers(context.Background()); err != nil {
		t.Fatalf("reload players: %v", err)
	}
	rows := f.screen.PlayerTable().Rows
	if rows[0].Team != "Alpha Renamed" || rows[0].BranchYear != "CSE / 2" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Team != render.Unassigned {
		t.Fatalf("expected unassigned player, got %q", rows[1].Team)
	}

	if _, err := f.sync.ReloadPlayers(context.Background()); err != nil {
		t.Fatalf("second reload players: %v", err)
	}
}

func TestReloadSetFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		mutation Mutation
		want     ReloadSet
	}{
		{Mutation{Entity: EntityTeam, Op: OpCreate}, ReloadTeams | ReloadPools | ReloadPromotion},
		{Mutation{Entity: EntityTeam, Op: OpUpdate}, ReloadTeams | ReloadPools | ReloadPromotion},
		{Mutation{Entity: EntityTeam, Op: OpDelete}, ReloadTeams | ReloadPools | ReloadPromotion},
		{Mutation{Entity: EntityPlayer, Op: OpCreate}, ReloadPlayers | ReloadTeams},
		{Mutation{Entity: EntityPlayer, Op: OpUpdate}, ReloadPlayers | ReloadTeams},
		{Mutation{Entity: EntityPlayer, Op: OpDelete}, ReloadPlayers | ReloadTeams},
		{Mutation{Entity: "venue", Op: OpCreate}, 0},
	}
	for _, tc := range cases {
		if got := ReloadSetFor(tc.mutation); got != tc.want {
			t.Fatalf("%s %s: got=%s want=%s", tc.mutation.Entity, tc.mutation.Op, got, tc.want)
		}
	}

	if got := (ReloadTeams | ReloadPromotion).String(); got != "teams,promotion" {
		t.Fatalf("unexpected string: %q", got)
	}
}
