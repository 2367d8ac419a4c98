package memory

import (
	"context"

	"github.com/mahotsav/championship-admin/internal/domain/tournament"
)

// TournamentRepository derives draw sheets and promotion from the team rows in
// insertion order.
type TournamentRepository struct {
	db *Database
}

func (r *TournamentRepository) DrawSheets(ctx context.Context) ([]tournament.Pool, error) {
	teams, err := r.db.Teams().List(ctx)
	if err != nil {
		return nil, err
	}
	return tournament.Partition(teams, tournament.PoolSize), nil
}

func (r *TournamentRepository) PromotionResults(ctx context.Context, topN int) (tournament.PromotionResult, error) {
	teams, err := r.db.Teams().List(ctx)
	if err != nil {
		return tournament.PromotionResult{}, err
	}
	return tournament.Promote(teams, topN), nil
}

var _ tournament.Repository = (*TournamentRepository)(nil)
