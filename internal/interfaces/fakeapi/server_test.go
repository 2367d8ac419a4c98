package fakeapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/mahotsav/championship-admin/internal/infrastructure/repository/memory"
	"github.com/mahotsav/championship-admin/internal/platform/logging"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db := memory.NewDatabase()
	if err := db.Seed(memory.SeedTeams(), memory.SeedPlayers()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	handler := NewHandler(db.Teams(), db.Players(), db.Tournament(), logging.NewNop())
	server := httptest.NewServer(NewRouter(handler, logging.NewNop()))
	t.Cleanup(server.Close)
	return server
}

func do(t *testing.T, method, url, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(raw)
}

func TestRouter_TeamListCarriesPlayerDetail(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	status, body := do(t, http.MethodGet, server.URL+"/api/teams", "")
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", status, body)
	}

	var teams []teamDocument
	if err := sonic.UnmarshalString(body, &teams); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(teams) != len(memory.SeedTeams()) {
		t.Fatalf("unexpected team count: %d", len(teams))
	}
	if teams[0].PlayerCount != 2 || len(teams[0].Players) != 2 {
		t.Fatalf("unexpected player detail: %+v", teams[0])
	}
	if teams[1].ViceCaptain != nil {
		t.Fatalf("missing vice captain must be null")
	}
}

func TestRouter_DeleteReturnsNoContent(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	status, body := do(t, http.MethodDelete, server.URL+"/api/teams/1", "")
	if status != http.StatusNoContent || body != "" {
		t.Fatalf("expected empty 204, got %d %q", status, body)
	}

	status, _ = do(t, http.MethodGet, server.URL+"/api/teams/1", "")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", status)
	}
	status, _ = do(t, http.MethodGet, server.URL+"/api/players/1", "")
	if status != http.StatusNotFound {
		t.Fatalf("expected cascaded player delete, got %d", status)
	}
}

func TestRouter_DuplicateRegistrationIsConflict(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	status, body := do(t, http.MethodPost, server.URL+"/api/players", `{"name":"Dup","registrationNumber":"21CS1001","team":null}`)
	if status != http.StatusConflict {
		t.Fatalf("expected 409, got %d", status)
	}
	if !strings.Contains(body, "registrationNumber") {
		t.Fatalf("conflict body must mention registrationNumber: %s", body)
	}
}

func TestRouter_PlayerLinksTeamByID(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	status, body := do(t, http.MethodPost, server.URL+"/api/players", `{"name":"Bob","registrationNumber":"NEW-1","team":{"id":2}}`)
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d body=%s", status, body)
	}

	var created playerDocument
	if err := sonic.UnmarshalString(body, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Team == nil || created.Team.ID != 2 || created.Team.TeamName != "Royal Challengers" {
		t.Fatalf("unexpected team link: %+v", created.Team)
	}
}

func TestRouter_TournamentViews(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	status, body := do(t, http.MethodGet, server.URL+"/api/teams/draw-sheets", "")
	if status != http.StatusOK {
		t.Fatalf("draw sheets status: %d", status)
	}
	var pools [][]teamDocument
	if err := sonic.UnmarshalString(body, &pools); err != nil {
		t.Fatalf("decode pools: %v", err)
	}
	if len(pools) != 1 || len(pools[0]) != len(memory.SeedTeams()) {
		t.Fatalf("unexpected pools: %d", len(pools))
	}

	status, body = do(t, http.MethodGet, server.URL+"/api/teams/promotion-results?topN=2", "")
	if status != http.StatusOK {
		t.Fatalf("promotion status: %d", status)
	}
	var promoted []teamDocument
	if err := sonic.UnmarshalString(body, &promoted); err != nil {
		t.Fatalf("decode promotion: %v", err)
	}
	if len(promoted) != 2 || promoted[0].ID != 1 {
		t.Fatalf("unexpected promotion: %+v", promoted)
	}

	status, _ = do(t, http.MethodGet, server.URL+"/api/teams/promotion-results?topN=zero", "")
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad topN, got %d", status)
	}

	status, body = do(t, http.MethodGet, server.URL+"/api/teams/by-institute?instituteName=NIT+Warangal", "")
	if status != http.StatusOK || strings.Count(body, `"teamName"`) < 2 {
		t.Fatalf("unexpected by-institute response: %d %s", status, body)
	}
}

func TestRouter_ProfilerMountedOnlyWhenEnabled(t *testing.T) {
	db := memory.NewDatabase()
	handler := NewHandler(db.Teams(), db.Players(), db.Tournament(), logging.NewNop())

	off := httptest.NewServer(NewRouter(handler, logging.NewNop()))
	defer off.Close()
	if status, _ := do(t, http.MethodGet, off.URL+"/debug/pprof/", ""); status != http.StatusNotFound {
		t.Fatalf("expected 404 without profiler, got %d", status)
	}

	on := httptest.NewServer(NewRouter(handler, logging.NewNop(), WithProfiler(true)))
	defer on.Close()
	if status, _ := do(t, http.MethodGet, on.URL+"/debug/pprof/", ""); status != http.StatusOK {
		t.Fatalf("expected 200 with profiler, got %d", status)
	}
}
