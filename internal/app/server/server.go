package server

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"salestrack/internal/domain/auth"
	"salestrack/internal/domain/kpi"
	"salestrack/internal/domain/reports"
	"salestrack/internal/domain/roster"
	"salestrack/internal/domain/tasks"
	"salestrack/internal/platform/config"
	"salestrack/internal/platform/db"
	"salestrack/internal/platform/jobs"
	"salestrack/internal/platform/metrics"
	"salestrack/internal/platform/seed"
	"salestrack/internal/platform/sheets"
	"salestrack/internal/transport/http/api"
	authhandler "salestrack/internal/transport/http/handlers/auth"
	evaluationshandler "salestrack/internal/transport/http/handlers/evaluations"
	reportshandler "salestrack/internal/transport/http/handlers/reports"
	rosterhandler "salestrack/internal/transport/http/handlers/roster"
	taskshandler "salestrack/internal/transport/http/handlers/tasks"
	"salestrack/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Router http.Handler
	Sync   *jobs.Service

	collector *metrics.Collector
	closers   []func()
}

// New wires stores, services, the sync backend and the router. It does not
// start the sync worker or listen; Run does that.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	app := &App{Config: cfg}

	if cfg.MetricsEnabled {
		app.collector = metrics.New()
	}

	evalStore := kpi.NewStore()
	configStore := kpi.NewConfigStore(kpi.DefaultConfiguration())
	rosterStore := roster.NewStore()
	taskStore := tasks.NewStore()

	backend, err := app.buildBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	syncSvc := jobs.New(backend, jobs.Stores{
		Evaluations: evalStore,
		Roster:      rosterStore,
		Tasks:       taskStore,
	})
	syncSvc.SetMetrics(app.collector)
	app.Sync = syncSvc

	// Pull whatever the backend already holds before deciding whether the
	// default dataset is needed.
	if err := syncSvc.Refresh(ctx); err != nil {
		slog.Warn("initial refresh failed, continuing with local state", "err", err)
	}
	if cfg.RunSeed {
		seed.Apply(rosterStore, taskStore, evalStore, configStore.Get())
		app.applySeedAdminPassword(rosterStore, cfg)
	}

	kpiSvc := kpi.NewService(evalStore, configStore, syncSvc)
	rosterSvc := roster.NewService(rosterStore, syncSvc)
	tasksSvc := tasks.NewService(taskStore, syncSvc)
	reportsSvc := reports.NewService(evalStore, rosterStore, configStore)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.Logger(app.collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if syncSvc.Status() == jobs.StatusError {
			http.Error(w, "sync backend unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

		r.Group(func(r chi.Router) {
			r.Use(middleware.LoginRateLimit(cfg.RateLimitPerMinute, time.Minute))
			authhandler.NewHandler(rosterSvc, cfg.JWTSecret).RegisterRoutes(r)
		})

		evaluationshandler.NewHandler(kpiSvc, rosterSvc).RegisterRoutes(r)
		rosterhandler.NewHandler(rosterSvc).RegisterRoutes(r)
		taskshandler.NewHandler(tasksSvc).RegisterRoutes(r)
		reportshandler.NewHandler(reportsSvc).RegisterRoutes(r)

		r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, map[string]string{
				"backend": cfg.SyncBackend,
				"status":  syncSvc.Status(),
			}, middleware.GetRequestID(r.Context()))
		})

		r.With(middleware.RequirePermission(auth.PermAdminMetrics)).Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			if app.collector == nil {
				api.Fail(w, http.StatusNotFound, "metrics_disabled", "metrics collection is disabled", middleware.GetRequestID(r.Context()))
				return
			}
			api.Success(w, app.collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	})

	app.Router = router
	return app, nil
}

func (a *App) buildBackend(ctx context.Context, cfg config.Config) (jobs.Backend, error) {
	switch cfg.SyncBackend {
	case config.SyncBackendSheets:
		return sheets.New(cfg.SheetsScriptURL), nil
	case config.SyncBackendPostgres:
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		return db.NewRecordStore(pool), nil
	default:
		return nil, nil
	}
}

// applySeedAdminPassword hashes the configured admin password onto the
// seeded admin account so production deployments are not password-less.
func (a *App) applySeedAdminPassword(rosterStore *roster.Store, cfg config.Config) {
	if cfg.SeedAdminPassword == "" {
		return
	}
	for _, u := range rosterStore.ListUsers() {
		if u.Role != auth.RoleAdmin {
			continue
		}
		hash, err := auth.HashPassword(cfg.SeedAdminPassword)
		if err != nil {
			slog.Warn("seed admin password hash failed", "err", err)
			return
		}
		u.PasswordHash = hash
		if u.FullName == "ADMIN USER" && cfg.SeedAdminName != "" {
			u.FullName = cfg.SeedAdminName
		}
		rosterStore.UpsertUser(u)
	}
}

func (a *App) Close() {
	for _, closeFn := range a.closers {
		closeFn()
	}
}

// Run loads config, builds the app and serves until interrupted.
func Run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	app.Sync.Start(ctx, cfg.SyncRefreshInterval)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.Addr, "backend", cfg.SyncBackend)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
