package fakeapi

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/mahotsav/championship-admin/internal/domain/player"
	"github.com/mahotsav/championship-admin/internal/domain/team"
	"github.com/mahotsav/championship-admin/internal/domain/tournament"
	"github.com/mahotsav/championship-admin/internal/platform/logging"
	"github.com/mahotsav/championship-admin/internal/usecase"
)

const maxRequestBytes = 1 << 20

// Handler serves the championship REST contract over the repository ports.
type Handler struct {
	teams      team.Repository
	players    player.Repository
	tournament tournament.Repository
	logger     *logging.Logger
}

func NewHandler(teams team.Repository, players player.Repository, tournamentRepo tournament.Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		teams:      teams,
		players:    players,
		tournament: tournamentRepo,
		logger:     logger,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "fakeapi.Handler.ListTeams")
	defer span.End()

	items, err := h.teams.List(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, newTeamDocuments(items))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "fakeapi.Handler.GetTeam")
	defer span.End()

	teamID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	item, err := h.teams.GetByID(ctx, teamID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, newTeamDocument(item))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "fakeapi.Handler.CreateTeam")
	defer span.End()

	var req teamRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	item, err := h.teams.Create(ctx, req.toInput())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, newTeamDocument(item))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "fakeapi.Handler.UpdateTeam")
	defer span.End()

	teamID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req teamRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	item, err := h.teams.Update(ctx, teamID, req.toInput())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, newTeamDocument(item))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "fakeapi.Handler.DeleteTeam")
	defer span.End()

	teamID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.teams.Delete(ctx, teamID); err != nil {
		h.fail(w, r, err)
		return
	}
	writeNoContent(w)
}

func (h *Handler) ListTeamsByInstitute(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "fakeapi.Handler.ListTeamsByInstitute")
	defer span.End()

	items, err := h.teams.ListByInstitute(ctx, r.URL.Query().Get("instituteName"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, newTeamDocuments(items))
}

func (h *Handler) DrawSheets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "fakeapi.Handler.DrawSheets")
	defer span.End()

	pools, err := h.tournament.DrawSheets(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([][]teamDocument, 0, len(pools))
	for _, pool := range pools {
		out = append(out, newTeamDocuments(pool.Teams))
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) PromotionResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "fakeapi.Handler.PromotionResults")
	defer span.End()

	topN := tournament.DefaultTopN
	if raw := strings.TrimSpace(r.URL.Query().Get("topN")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.fail(w, r, fmt.Errorf("%w: topN must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		topN = parsed
	}

	result, err := h.tournament.PromotionResults(ctx, topN)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, newTeamDocuments(result.Teams))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "fakeapi.Handler.ListPlayers")
	defer span.End()

	items, err := h.players.List(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, newPlayerDocuments(items))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "fakeapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	item, err := h.players.GetByID(ctx, playerID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, newPlayerDocument(item))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "fakeapi.Handler.CreatePlayer")
	defer span.End()

	var req playerRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	item, err := h.players.Create(ctx, req.toInput())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, newPlayerDocument(item))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "fakeapi.Handler.UpdatePlayer")
	defer span.End()

	playerID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req playerRequest
	if err := decodeBody(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	item, err := h.players.Update(ctx, playerID, req.toInput())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, newPlayerDocument(item))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "fakeapi.Handler.DeletePlayer")
	defer span.End()

	playerID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.players.Delete(ctx, playerID); err != nil {
		h.fail(w, r, err)
		return
	}
	writeNoContent(w)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if mapError(err) == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	writeError(r.Context(), w, r, err)
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", usecase.ErrInvalidInput, raw)
	}
	return parsed, nil
}

func decodeBody(r *http.Request, target any) error {
	if err := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBytes)).Decode(target); err != nil {
		return fmt.Errorf("%w: malformed request body: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
