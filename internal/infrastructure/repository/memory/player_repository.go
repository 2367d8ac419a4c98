package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/mahotsav/championship-admin/internal/domain/player"
	"github.com/mahotsav/championship-admin/internal/usecase"
)

type PlayerRepository struct {
	db *Database
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]player.Player, 0, len(r.db.players))
	for _, row := range r.db.players {
		out = append(out, r.db.playerView(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	idx := r.db.playerIndex(playerID)
	if idx < 0 {
		return player.Player{}, fmt.Errorf("%w: player=%d", usecase.ErrNotFound, playerID)
	}
	return r.db.playerView(r.db.players[idx]), nil
}

func (r *PlayerRepository) Create(_ context.Context, in player.Input) (player.Player, error) {
	in = in.Normalize()
	if err := requirePlayerFields(in); err != nil {
		return player.Player{}, err
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if err := r.db.checkPlayer(0, in); err != nil {
		return player.Player{}, err
	}
	row := newPlayerRow(r.db.playerIDs.NextID(), in)
	r.db.players = append(r.db.players, row)
	return r.db.playerView(row), nil
}

func (r *PlayerRepository) Update(_ context.Context, playerID int64, in player.Input) (player.Player, error) {
	in = in.Normalize()
	if err := requirePlayerFields(in); err != nil {
		return player.Player{}, err
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	idx := r.db.playerIndex(playerID)
	if idx < 0 {
		return player.Player{}, fmt.Errorf("%w: player=%d", usecase.ErrNotFound, playerID)
	}
	if err := r.db.checkPlayer(playerID, in); err != nil {
		return player.Player{}, err
	}
	r.db.players[idx] = newPlayerRow(playerID, in)
	return r.db.playerView(r.db.players[idx]), nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	idx := r.db.playerIndex(playerID)
	if idx < 0 {
		return fmt.Errorf("%w: player=%d", usecase.ErrNotFound, playerID)
	}
	r.db.players = append(r.db.players[:idx], r.db.players[idx+1:]...)
	return nil
}

func requirePlayerFields(in player.Input) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.RegistrationNumber) == "" {
		return fmt.Errorf("%w: player name and registrationNumber are required", usecase.ErrInvalidInput)
	}
	return nil
}

var _ player.Repository = (*PlayerRepository)(nil)
