package usecase

import (
	"context"
	"sync"
	"testing"

	playermock "github.com/mahotsav/championship-admin/internal/mocks/domain/player"
	teammock "github.com/mahotsav/championship-admin/internal/mocks/domain/team"
	tournamentmock "github.com/mahotsav/championship-admin/internal/mocks/domain/tournament"
	"github.com/mahotsav/championship-admin/internal/platform/logging"
	"github.com/mahotsav/championship-admin/internal/render"
)

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(_ context.Context, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(_ context.Context, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func (n *recordingNotifier) lastSuccess() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.successes) == 0 {
		return ""
	}
	return n.successes[len(n.successes)-1]
}

func (n *recordingNotifier) errorCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.errors)
}

type fixture struct {
	teams      *teammock.Repository
	players    *playermock.Repository
	tournament *tournamentmock.Repository
	screen     *render.Screen
	notifier   *recordingNotifier
	reconciler *Reconciler
	sync       *Synchronizer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		teams:      teammock.NewRepository(t),
		players:    playermock.NewRepository(t),
		tournament: tournamentmock.NewRepository(t),
		screen:     render.NewScreen(),
		notifier:   &recordingNotifier{},
	}
	logger := logging.NewNop()
	f.reconciler = NewReconciler(ReconcilerConfig{
		Teams:      f.teams,
		Tournament: f.tournament,
		View:       f.screen,
		Logger:     logger,
		TopN:       4,
	})
	f.sync = NewSynchronizer(SynchronizerConfig{
		Teams:      f.teams,
		Players:    f.players,
		Reconciler: f.reconciler,
		View:       f.screen,
		Notifier:   f.notifier,
		Logger:     logger,
	})
	return f
}

func int64Ptr(v int64) *int64 {
	return &v
}
