package usecase

import (
	"testing"

	"github.com/mahotsav/championship-admin/internal/domain/player"
	"github.com/mahotsav/championship-admin/internal/domain/team"
	"github.com/mahotsav/championship-admin/internal/render"
)

func TestTeamStore_SetReplacesWholesale(t *testing.T) {
	t.Parallel()

	store := NewTeamStore()
	if store.Loaded() || store.Fresh() {
		t.Fatalf("new store must be neither loaded nor fresh")
	}
	if got := store.Get(); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil snapshot, got %#v", got)
	}

	store.Set([]team.Team{{ID: 1, Name: "Alpha"}, {ID: 2, Name: "Beta"}})
	store.Set([]team.Team{{ID: 3, Name: "Gamma"}})

	got := store.Get()
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected full replace, got %+v", got)
	}
	got[0].Name = "mutated"
	if current, _ := store.Lookup(3); current.Name != "Gamma" {
		t.Fatalf("store leaked its snapshot to a reader")
	}
	if store.Version() != 2 {
		t.Fatalf("unexpected version: %d", store.Version())
	}
}

func TestTeamStore_TeamNameHonoursStaleness(t *testing.T) {
	t.Parallel()

	store := NewTeamStore()
	store.Set([]team.Team{{ID: 1, Name: "Alpha Renamed"}})
	bob := player.Player{ID: 1, Name: "Bob", Team: &player.TeamRef{ID: 1, Name: "Alpha"}}

	if got := store.TeamName(bob); got != "Alpha Renamed" {
		t.Fatalf("fresh store should win, got %q", got)
	}

	store.Invalidate()
	if got := store.TeamName(bob); got != "Alpha" {
		t.Fatalf("stale store should defer to the server name, got %q", got)
	}

	bob.Team.Name = ""
	if got := store.TeamName(bob); got != "Alpha Renamed" {
		t.Fatalf("stale store is the last resort, got %q", got)
	}

	if got := store.TeamName(player.Player{ID: 2}); got != render.Unassigned {
		t.Fatalf("expected unassigned, got %q", got)
	}
	if got := store.TeamName(player.Player{ID: 3, Team: &player.TeamRef{ID: 99}}); got != render.Unassigned {
		t.Fatalf("unknown team without a name should be unassigned, got %q", got)
	}
}
