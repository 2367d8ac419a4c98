package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/mahotsav/championship-admin/internal/domain/team"
	"github.com/mahotsav/championship-admin/internal/domain/tournament"
	"github.com/mahotsav/championship-admin/internal/platform/logging"
	"github.com/mahotsav/championship-admin/internal/render"
	"github.com/sourcegraph/conc/pool"
)

type ReconcilerConfig struct {
	Teams      team.Repository
	Tournament tournament.Repository
	View       ViewSink
	Logger     *logging.Logger
	TopN       int
}

// Reconciler keeps the views derived from the Team collection in step with it:
// the institute filter and the two tournament views.
type Reconciler struct {
	teams      team.Repository
	tournament tournament.Repository
	view       ViewSink
	logger     *logging.Logger
	topN       int

	mu         sync.Mutex
	institutes []string
	selected   string
}

func NewReconciler(cfg ReconcilerConfig) *Reconciler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	view := cfg.View
	if view == nil {
		view = discardView{}
	}
	return &Reconciler{
		teams:      cfg.Teams,
		tournament: cfg.Tournament,
		view:       view,
		logger:     logger.With("component", "reconciler"),
		topN:       tournament.NormalizeTopN(cfg.TopN),
	}
}

func (r *Reconciler) TopN() int {
	return r.topN
}

// Selection is the active institute filter; empty means all institutes.
func (r *Reconciler) Selection() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selected
}

func (r *Reconciler) Institutes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.institutes)
}

// TeamsReloaded rebuilds the institute filter from a fresh Team collection and
// renders the team table. A selection that is still offered is kept and the
// table is rendered from a scoped read; otherwise the filter falls back to all.
func (r *Reconciler) TeamsReloaded(ctx context.Context, teams []team.Team) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Reconciler.TeamsReloaded")
	defer span.End()

	names := team.InstituteNames(teams)

	r.mu.Lock()
	previous := r.selected
	r.institutes = names
	if previous != "" && !slices.Contains(names, previous) {
		r.selected = ""
	}
	selected := r.selected
	r.mu.Unlock()

	if previous != "" && selected == "" {
		r.logger.InfoContext(ctx, "institute filter reset, selection no longer offered", "institute", previous)
	}

	r.view.RenderInstituteSelect(render.InstituteSelect(names, selected))
	if selected == "" {
		r.view.RenderTeamTable(render.NewTeamTable("", teams))
		return
	}

	scoped, err := r.teams.ListByInstitute(ctx, selected)
	if err != nil {
		r.logger.WarnContext(ctx, "scoped team read failed, showing all institutes", "institute", selected, "error", err)
		r.reset()
		r.view.RenderInstituteSelect(render.InstituteSelect(names, ""))
		r.view.RenderTeamTable(render.NewTeamTable("", teams))
		return
	}
	r.view.RenderTeamTable(render.NewTeamTable(selected, scoped))
}

// SelectInstitute applies a filter value. Only the team table is re-rendered;
// the tournament views keep showing the unfiltered collection.
func (r *Reconciler) SelectInstitute(ctx context.Context, name string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Reconciler.SelectInstitute")
	defer span.End()

	name = strings.TrimSpace(name)

	var (
		teams []team.Team
		err   error
	)
	if name == "" {
		teams, err = r.teams.List(ctx)
	} else {
		teams, err = r.teams.ListByInstitute(ctx, name)
	}
	if err != nil {
		return nil, fmt.Errorf("select institute %q: %w", name, err)
	}

	r.mu.Lock()
	r.selected = name
	names := slices.Clone(r.institutes)
	r.mu.Unlock()

	r.view.RenderInstituteSelect(render.InstituteSelect(names, name))
	r.view.RenderTeamTable(render.NewTeamTable(name, teams))
	return teams, nil
}

// RefreshTournament fetches the requested tournament views concurrently and
// renders each from the raw server response. It returns the views that failed.
func (r *Reconciler) RefreshTournament(ctx context.Context, set ReloadSet) ReloadSet {
	ctx, span := startUsecaseSpan(ctx, "usecase.Reconciler.RefreshTournament")
	defer span.End()

	var (
		mu     sync.Mutex
		failed ReloadSet
	)
	markFailed := func(bit ReloadSet) {
		mu.Lock()
		failed |= bit
		mu.Unlock()
	}

	p := pool.New().WithErrors().WithContext(ctx)
	if set.Has(ReloadPools) {
		p.Go(func(ctx context.Context) error {
			if _, err := r.LoadDrawSheets(ctx); err != nil {
				markFailed(ReloadPools)
				return err
			}
			return nil
		})
	}
	if set.Has(ReloadPromotion) {
		p.Go(func(ctx context.Context) error {
			if _, err := r.LoadPromotion(ctx, r.topN); err != nil {
				markFailed(ReloadPromotion)
				return err
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		r.logger.WarnContext(ctx, "tournament views left stale", "views", failed.String(), "error", err)
	}
	return failed
}

func (r *Reconciler) LoadDrawSheets(ctx context.Context) ([]tournament.Pool, error) {
	pools, err := r.tournament.DrawSheets(ctx)
	if err != nil {
		return nil, fmt.Errorf("load draw sheets: %w", err)
	}
	r.view.RenderPools(render.NewPoolsView(pools))
	return pools, nil
}

func (r *Reconciler) LoadPromotion(ctx context.Context, topN int) (tournament.PromotionResult, error) {
	result, err := r.tournament.PromotionResults(ctx, tournament.NormalizeTopN(topN))
	if err != nil {
		return tournament.PromotionResult{}, fmt.Errorf("load promotion results: %w", err)
	}
	r.view.RenderPromotion(render.NewPromotionView(result))
	return result, nil
}

func (r *Reconciler) reset() {
	r.mu.Lock()
	r.selected = ""
	r.mu.Unlock()
}
