package championship

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	crerr "github.com/cockroachdb/errors"
	"github.com/mahotsav/championship-admin/internal/domain/player"
	"github.com/mahotsav/championship-admin/internal/domain/team"
	"github.com/mahotsav/championship-admin/internal/domain/tournament"
	"github.com/mahotsav/championship-admin/internal/usecase"
)

var nullBody = []byte("null")

// TeamRepository implements team.Repository over /teams.
type TeamRepository struct {
	client *Client
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	return r.listFrom(ctx, "/teams")
}

func (r *TeamRepository) ListByInstitute(ctx context.Context, instituteName string) ([]team.Team, error) {
	query := url.Values{}
	query.Set("instituteName", instituteName)
	return r.listFrom(ctx, "/teams/by-institute?"+query.Encode())
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, error) {
	endpoint := teamPath(id)
	res, err := r.client.Read(ctx, endpoint)
	if err != nil {
		return team.Team{}, err
	}
	if isMissing(res) {
		return team.Team{}, r.client.fail(ctx, missingFailure(http.MethodGet, endpoint, fmt.Errorf("%w: team=%d", usecase.ErrNotFound, id)))
	}

	var payload teamPayload
	if err := r.client.decode(ctx, http.MethodGet, endpoint, res, &payload); err != nil {
		return team.Team{}, err
	}
	return payload.toDomain(), nil
}

func (r *TeamRepository) Create(ctx context.Context, in team.Input) (team.Team, error) {
	return r.write(ctx, http.MethodPost, "/teams", in)
}

func (r *TeamRepository) Update(ctx context.Context, id int64, in team.Input) (team.Team, error) {
	return r.write(ctx, http.MethodPut, teamPath(id), in)
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.client.Mutate(ctx, http.MethodDelete, teamPath(id), nil)
	return err
}

func (r *TeamRepository) listFrom(ctx context.Context, endpoint string) ([]team.Team, error) {
	res, err := r.client.Read(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if isMissing(res) {
		return []team.Team{}, nil
	}

	var payload []teamPayload
	if err := r.client.decode(ctx, http.MethodGet, endpoint, res, &payload); err != nil {
		return nil, err
	}
	return mapTeams(payload), nil
}

func (r *TeamRepository) write(ctx context.Context, method, endpoint string, in team.Input) (team.Team, error) {
	res, err := r.client.Mutate(ctx, method, endpoint, newTeamWritePayload(in))
	if err != nil {
		return team.Team{}, err
	}
	if isMissing(res) {
		return team.Team{}, r.client.fail(ctx, missingFailure(method, endpoint, fmt.Errorf("%w: %s returned no team", usecase.ErrNotFound, endpoint)))
	}

	var payload teamPayload
	if err := r.client.decode(ctx, method, endpoint, res, &payload); err != nil {
		return team.Team{}, err
	}
	return payload.toDomain(), nil
}

// PlayerRepository implements player.Repository over /players.
type PlayerRepository struct {
	client *Client
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	const endpoint = "/players"
	res, err := r.client.Read(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if isMissing(res) {
		return []player.Player{}, nil
	}

	var payload []playerPayload
	if err := r.client.decode(ctx, http.MethodGet, endpoint, res, &payload); err != nil {
		return nil, err
	}
	return mapPlayers(payload), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, error) {
	endpoint := playerPath(id)
	res, err := r.client.Read(ctx, endpoint)
	if err != nil {
		return player.Player{}, err
	}
	if isMissing(res) {
		return player.Player{}, r.client.fail(ctx, missingFailure(http.MethodGet, endpoint, fmt.Errorf("%w: player=%d", usecase.ErrNotFound, id)))
	}

	var payload playerPayload
	if err := r.client.decode(ctx, http.MethodGet, endpoint, res, &payload); err != nil {
		return player.Player{}, err
	}
	return payload.toDomain(), nil
}

func (r *PlayerRepository) Create(ctx context.Context, in player.Input) (player.Player, error) {
	return r.write(ctx, http.MethodPost, "/players", in)
}

func (r *PlayerRepository) Update(ctx context.Context, id int64, in player.Input) (player.Player, error) {
	return r.write(ctx, http.MethodPut, playerPath(id), in)
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.client.Mutate(ctx, http.MethodDelete, playerPath(id), nil)
	return err
}

func (r *PlayerRepository) write(ctx context.Context, method, endpoint string, in player.Input) (player.Player, error) {
	res, err := r.client.Mutate(ctx, method, endpoint, newPlayerWritePayload(in))
	if err != nil {
		return player.Player{}, err
	}
	if isMissing(res) {
		return player.Player{}, r.client.fail(ctx, missingFailure(method, endpoint, fmt.Errorf("%w: %s returned no player", usecase.ErrNotFound, endpoint)))
	}

	var payload playerPayload
	if err := r.client.decode(ctx, method, endpoint, res, &payload); err != nil {
		return player.Player{}, err
	}
	return payload.toDomain(), nil
}

// TournamentRepository implements tournament.Repository. Responses are taken
// as-is; nothing about pooling or ranking is recomputed here.
type TournamentRepository struct {
	client *Client
}

func (r *TournamentRepository) DrawSheets(ctx context.Context) ([]tournament.Pool, error) {
	const endpoint = "/teams/draw-sheets"
	res, err := r.client.Read(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if isMissing(res) {
		return []tournament.Pool{}, nil
	}

	var payload [][]teamPayload
	if err := r.client.decode(ctx, http.MethodGet, endpoint, res, &payload); err != nil {
		return nil, err
	}

	pools := make([]tournament.Pool, 0, len(payload))
	for idx, items := range payload {
		pools = append(pools, tournament.Pool{Number: idx + 1, Teams: mapTeams(items)})
	}
	return pools, nil
}

func (r *TournamentRepository) PromotionResults(ctx context.Context, topN int) (tournament.PromotionResult, error) {
	topN = tournament.NormalizeTopN(topN)
	endpoint := "/teams/promotion-results?topN=" + strconv.Itoa(topN)
	res, err := r.client.Read(ctx, endpoint)
	if err != nil {
		return tournament.PromotionResult{}, err
	}
	if isMissing(res) {
		return tournament.PromotionResult{TopN: topN, Teams: []team.Team{}}, nil
	}

	var payload []teamPayload
	if err := r.client.decode(ctx, http.MethodGet, endpoint, res, &payload); err != nil {
		return tournament.PromotionResult{}, err
	}
	return tournament.PromotionResult{TopN: topN, Teams: mapTeams(payload)}, nil
}

func teamPath(id int64) string {
	return "/teams/" + strconv.FormatInt(id, 10)
}

func playerPath(id int64) string {
	return "/players/" + strconv.FormatInt(id, 10)
}

// isMissing covers both 204/empty bodies and a literal JSON null, which the
// backend sends for unknown ids.
func isMissing(res Result) bool {
	return res.Empty || bytes.Equal(bytes.TrimSpace(res.Body), nullBody)
}

func missingFailure(method, endpoint string, cause error) *Failure {
	return &Failure{
		Kind:       FailureHTTP,
		Method:     method,
		Endpoint:   endpoint,
		StatusCode: http.StatusNotFound,
		Message:    failureMessage(method, endpoint),
		cause:      crerr.WithStack(cause),
	}
}

var (
	_ team.Repository       = (*TeamRepository)(nil)
	_ player.Repository     = (*PlayerRepository)(nil)
	_ tournament.Repository = (*TournamentRepository)(nil)
)
