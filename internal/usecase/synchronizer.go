package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mahotsav/championship-admin/internal/domain/player"
	"github.com/mahotsav/championship-admin/internal/domain/team"
	"github.com/mahotsav/championship-admin/internal/platform/logging"
	"github.com/mahotsav/championship-admin/internal/render"
)

type SynchronizerConfig struct {
	Teams      team.Repository
	Players    player.Repository
	Store      *TeamStore
	Reconciler *Reconciler
	View       ViewSink
	Notifier   Notifier
	Logger     *logging.Logger
	Validator  *validator.Validate
}

// MutationOutcome reports what a committed mutation refreshed. Views in Failed
// stay stale until the next manual reload; the write itself is not undone.
type MutationOutcome struct {
	Mutation Mutation
	Reloaded ReloadSet
	Failed   ReloadSet
}

// Synchronizer applies mutations and then reloads exactly the views the
// invalidation table names for them.
type Synchronizer struct {
	teams      team.Repository
	players    player.Repository
	store      *TeamStore
	reconciler *Reconciler
	view       ViewSink
	notifier   Notifier
	logger     *logging.Logger
	validator  *validator.Validate
}

func NewSynchronizer(cfg SynchronizerConfig) *Synchronizer {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	view := cfg.View
	if view == nil {
		view = discardView{}
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = NopNotifier()
	}
	store := cfg.Store
	if store == nil {
		store = NewTeamStore()
	}
	validate := cfg.Validator
	if validate == nil {
		validate = validator.New()
	}
	return &Synchronizer{
		teams:      cfg.Teams,
		players:    cfg.Players,
		store:      store,
		reconciler: cfg.Reconciler,
		view:       view,
		notifier:   notifier,
		logger:     logger.With("component", "synchronizer"),
		validator:  validate,
	}
}

func (s *Synchronizer) Store() *TeamStore {
	return s.store
}

func (s *Synchronizer) CreateTeam(ctx context.Context, in team.Input) (team.Team, MutationOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Synchronizer.CreateTeam")
	defer span.End()

	in = in.Normalize()
	if err := s.validate(ctx, "team", in); err != nil {
		return team.Team{}, MutationOutcome{}, err
	}

	created, err := s.teams.Create(ctx, in)
	if err != nil {
		return team.Team{}, MutationOutcome{}, fmt.Errorf("%w: create team: %w", ErrMutationFailed, err)
	}
	outcome := s.commit(ctx, Mutation{Entity: EntityTeam, Op: OpCreate, ID: created.ID}, "Team created successfully!")
	return created, outcome, nil
}

func (s *Synchronizer) UpdateTeam(ctx context.Context, id int64, in team.Input) (team.Team, MutationOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Synchronizer.UpdateTeam")
	defer span.End()

	if err := s.requireID(ctx, "team", id); err != nil {
		return team.Team{}, MutationOutcome{}, err
	}
	in = in.Normalize()
	if err := s.validate(ctx, "team", in); err != nil {
		return team.Team{}, MutationOutcome{}, err
	}

	updated, err := s.teams.Update(ctx, id, in)
	if err != nil {
		return team.Team{}, MutationOutcome{}, fmt.Errorf("%w: update team=%d: %w", ErrMutationFailed, id, err)
	}
	outcome := s.commit(ctx, Mutation{Entity: EntityTeam, Op: OpUpdate, ID: id}, "Team updated successfully!")
	return updated, outcome, nil
}

// DeleteTeam removes a team. The server deletes the team's players with it.
func (s *Synchronizer) DeleteTeam(ctx context.Context, id int64) (MutationOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Synchronizer.DeleteTeam")
	defer span.End()

	if err := s.requireID(ctx, "team", id); err != nil {
		return MutationOutcome{}, err
	}
	if err := s.teams.Delete(ctx, id); err != nil {
		return MutationOutcome{}, fmt.Errorf("%w: delete team=%d: %w", ErrMutationFailed, id, err)
	}
	return s.commit(ctx, Mutation{Entity: EntityTeam, Op: OpDelete, ID: id}, fmt.Sprintf("Team ID %d deleted successfully.", id)), nil
}

func (s *Synchronizer) CreatePlayer(ctx context.Context, in player.Input) (player.Player, MutationOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Synchronizer.CreatePlayer")
	defer span.End()

	in = in.Normalize()
	if err := s.validate(ctx, "player", in); err != nil {
		return player.Player{}, MutationOutcome{}, err
	}

	created, err := s.players.Create(ctx, in)
	if err != nil {
		return player.Player{}, MutationOutcome{}, fmt.Errorf("%w: create player: %w", ErrMutationFailed, err)
	}
	outcome := s.commit(ctx, Mutation{Entity: EntityPlayer, Op: OpCreate, ID: created.ID}, "Player created successfully!")
	return created, outcome, nil
}

func (s *Synchronizer) UpdatePlayer(ctx context.Context, id int64, in player.Input) (player.Player, MutationOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Synchronizer.UpdatePlayer")
	defer span.End()

	if err := s.requireID(ctx, "player", id); err != nil {
		return player.Player{}, MutationOutcome{}, err
	}
	in = in.Normalize()
	if err := s.validate(ctx, "player", in); err != nil {
		return player.Player{}, MutationOutcome{}, err
	}

	updated, err := s.players.Update(ctx, id, in)
	if err != nil {
		return player.Player{}, MutationOutcome{}, fmt.Errorf("%w: update player=%d: %w", ErrMutationFailed, id, err)
	}
	outcome := s.commit(ctx, Mutation{Entity: EntityPlayer, Op: OpUpdate, ID: id}, "Player updated successfully!")
	return updated, outcome, nil
}

func (s *Synchronizer) DeletePlayer(ctx context.Context, id int64) (MutationOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Synchronizer.DeletePlayer")
	defer span.End()

	if err := s.requireID(ctx, "player", id); err != nil {
		return MutationOutcome{}, err
	}
	if err := s.players.Delete(ctx, id); err != nil {
		return MutationOutcome{}, fmt.Errorf("%w: delete player=%d: %w", ErrMutationFailed, id, err)
	}
	return s.commit(ctx, Mutation{Entity: EntityPlayer, Op: OpDelete, ID: id}, fmt.Sprintf("Player ID %d deleted successfully.", id)), nil
}

// ReloadTeams is the Team reload pipeline: fetch, replace the store, then
// rebuild everything derived from the collection.
func (s *Synchronizer) ReloadTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Synchronizer.ReloadTeams")
	defer span.End()

	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reload teams: %w", err)
	}

	s.store.Set(teams)
	s.view.RenderTeamSelect(render.TeamSelect(teams, nil))
	if s.reconciler != nil {
		s.reconciler.TeamsReloaded(ctx, teams)
	} else {
		s.view.RenderTeamTable(render.NewTeamTable("", teams))
	}
	return teams, nil
}

// ReloadPlayers refreshes the player view. Teams are reloaded first when the
// store is stale so team names resolve against the current collection.
func (s *Synchronizer) ReloadPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Synchronizer.ReloadPlayers")
	defer span.End()

	if !s.store.Fresh() {
		if _, err := s.ReloadTeams(ctx); err != nil {
			s.logger.WarnContext(ctx, "team reload before players failed", "error", err)
		}
	}
	return s.loadPlayers(ctx)
}

// Reload runs a reload set in order: teams, players, then both tournament
// views together. It returns the views whose reload failed.
func (s *Synchronizer) Reload(ctx context.Context, set ReloadSet) ReloadSet {
	ctx, span := startUsecaseSpan(ctx, "usecase.Synchronizer.Reload")
	defer span.End()

	var failed ReloadSet
	if set.Has(ReloadTeams) {
		if _, err := s.ReloadTeams(ctx); err != nil {
			failed |= ReloadTeams
		}
	}
	if set.Has(ReloadPlayers) {
		var err error
		if set.Has(ReloadTeams) {
			_, err = s.loadPlayers(ctx)
		} else {
			_, err = s.ReloadPlayers(ctx)
		}
		if err != nil {
			failed |= ReloadPlayers
		}
	}
	if tournamentSet := set & ReloadTournament; tournamentSet != 0 && s.reconciler != nil {
		failed |= s.reconciler.RefreshTournament(ctx, tournamentSet)
	}

	if failed != 0 {
		s.logger.WarnContext(ctx, "reload incomplete, views left stale", "requested", set.String(), "failed", failed.String())
	}
	return failed
}

func (s *Synchronizer) loadPlayers(ctx context.Context) ([]player.Player, error) {
	players, err := s.players.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reload players: %w", err)
	}
	s.view.RenderPlayerTable(render.NewPlayerTable(players, s.store.TeamName))
	return players, nil
}

// commit runs after the server accepted a write. Reload failures are logged
// and reported in the outcome; reads are never retried here.
func (s *Synchronizer) commit(ctx context.Context, m Mutation, message string) MutationOutcome {
	s.store.Invalidate()
	s.notifier.Success(ctx, message)

	set := ReloadSetFor(m)
	failed := s.Reload(ctx, set)
	s.logger.InfoContext(ctx, "mutation committed",
		"entity", string(m.Entity),
		"op", string(m.Op),
		"id", m.ID,
		"reloaded", (set &^ failed).String(),
	)
	return MutationOutcome{Mutation: m, Reloaded: set &^ failed, Failed: failed}
}

func (s *Synchronizer) requireID(ctx context.Context, entity string, id int64) error {
	if id > 0 {
		return nil
	}
	message := fmt.Sprintf("Invalid %s id: %d", entity, id)
	s.notifier.Error(ctx, message)
	return fmt.Errorf("%w: %s id must be positive", ErrInvalidInput, entity)
}

func (s *Synchronizer) validate(ctx context.Context, entity string, payload any) error {
	err := s.validator.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}
	message := fmt.Sprintf("Invalid %s: %s", entity, describeValidation(err))
	s.notifier.Error(ctx, message)
	return fmt.Errorf("%w: %s", ErrInvalidInput, message)
}

func describeValidation(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "max":
			parts = append(parts, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		case "gt":
			parts = append(parts, fe.Field()+" must be positive")
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
