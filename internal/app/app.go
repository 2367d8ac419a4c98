package app

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mahotsav/championship-admin/external/championship"
	"github.com/mahotsav/championship-admin/internal/config"
	"github.com/mahotsav/championship-admin/internal/infrastructure/repository/memory"
	"github.com/mahotsav/championship-admin/internal/interfaces/fakeapi"
	"github.com/mahotsav/championship-admin/internal/platform/logging"
	"github.com/mahotsav/championship-admin/internal/platform/notify"
	"github.com/mahotsav/championship-admin/internal/render"
	"github.com/mahotsav/championship-admin/internal/usecase"
)

// Admin is the wired client side: transport, entity store, synchronizer and
// reconciler, all rendering into one Screen.
type Admin struct {
	Client        *championship.Client
	Synchronizer  *usecase.Synchronizer
	Reconciler    *usecase.Reconciler
	Screen        *render.Screen
	Notifications *notify.Center
	ImportWorkers int
}

type Option func(*options)

type options struct {
	httpClient *http.Client
}

// WithHTTPClient replaces the instrumented default client, mainly for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

func NewAdmin(cfg config.Config, logger *logging.Logger, opts ...Option) *Admin {
	if logger == nil {
		logger = logging.Default()
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	center := notify.NewCenter(logger)
	screen := render.NewScreen()

	client := championship.NewClient(championship.ClientConfig{
		HTTPClient:     o.httpClient,
		BaseURL:        cfg.APIBaseURL,
		Timeout:        cfg.APITimeout,
		MaxRetries:     cfg.APIMaxRetries,
		Logger:         logger.Named("championship"),
		Notifier:       center,
		CircuitBreaker: cfg.APICircuit,
	})

	teams := client.Teams()
	reconciler := usecase.NewReconciler(usecase.ReconcilerConfig{
		Teams:      teams,
		Tournament: client.Tournament(),
		View:       screen,
		Logger:     logger,
		TopN:       cfg.PromotionTopN,
	})
	synchronizer := usecase.NewSynchronizer(usecase.SynchronizerConfig{
		Teams:      teams,
		Players:    client.Players(),
		Store:      usecase.NewTeamStore(),
		Reconciler: reconciler,
		View:       screen,
		Notifier:   center,
		Logger:     logger,
		Validator:  validator.New(),
	})

	return &Admin{
		Client:        client,
		Synchronizer:  synchronizer,
		Reconciler:    reconciler,
		Screen:        screen,
		Notifications: center,
		ImportWorkers: cfg.ImportWorkers,
	}
}

// NewFakeAPIHandler builds the in-memory backend, seeded when requested.
func NewFakeAPIHandler(seed bool, logger *logging.Logger, opts ...fakeapi.RouterOption) (http.Handler, *memory.Database, error) {
	db := memory.NewDatabase()
	if seed {
		if err := db.Seed(memory.SeedTeams(), memory.SeedPlayers()); err != nil {
			return nil, nil, fmt.Errorf("seed fake api: %w", err)
		}
	}
	handler := fakeapi.NewHandler(db.Teams(), db.Players(), db.Tournament(), logger)
	return fakeapi.NewRouter(handler, logger, opts...), db, nil
}

func NewFakeAPIServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	handler, _, err := NewFakeAPIHandler(cfg.FakeAPISeed, logger, fakeapi.WithProfiler(cfg.FakeAPIPprof))
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr:         cfg.FakeAPIAddr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
