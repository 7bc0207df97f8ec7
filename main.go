package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/blogem/contest-jury/authenticator"
	"github.com/blogem/contest-jury/config"
	"github.com/blogem/contest-jury/controllers"
	"github.com/blogem/contest-jury/database"
	"github.com/blogem/contest-jury/metrics"
	authmiddleware "github.com/blogem/contest-jury/middleware"
	"github.com/blogem/contest-jury/repositories"
	"github.com/blogem/contest-jury/routes"
	"github.com/blogem/contest-jury/services"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app bundles everything a command needs once configuration is loaded
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	db       *sql.DB
	repos    *repositories.Repositories
	services *services.Services
	metrics  *metrics.Metrics
}

// newApp opens the database, runs pending migrations and wires the services
func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	db, err := database.InitializeDatabase(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	m := metrics.New()
	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos, services.Options{
		AuditLogPageSize:  cfg.AuditLogPageSize,
		DefaultTimeFormat: cfg.TimeFormat,
		Logger:            logger,
		Metrics:           m,
	})

	return &app{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		repos:    repos,
		services: srvs,
		metrics:  m,
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

func newRootCmd() *cobra.Command {
	var (
		envFile string
		dbPath  string
		cfg     *config.Config
		logger  *slog.Logger
	)

	rootCmd := &cobra.Command{
		Use:           "jury",
		Short:         "Contest jury console: audit log and public scoreboard",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(envFile); err != nil {
				return err
			}
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if dbPath != "" {
				loaded.DBPath = dbPath
			}
			cfg = loaded
			logger = cfg.NewLogger()
			slog.SetDefault(logger)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "sqlite database path (overrides DB_PATH)")

	// Subcommands open the app lazily so that --help never touches the database
	withApp := func(run func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()
			return run(cmd, args, a)
		}
	}

	rootCmd.AddCommand(
		newServeCmd(withApp),
		newMigrateCmd(withApp),
		newAuditLogCmd(withApp),
		newScoreboardCmd(withApp),
	)

	return rootCmd
}

type appRunner func(run func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error

func newServeCmd(withApp appRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the jury web console",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a)
		}),
	}
}

func serve(ctx context.Context, a *app) error {
	var provider authenticator.Provider
	if a.cfg.OIDC.Enabled() {
		p, err := authenticator.NewOpenIDProvider(ctx, a.cfg.OIDC)
		if err != nil {
			return fmt.Errorf("failed to initialize OIDC provider: %w", err)
		}
		provider = p
	} else {
		a.logger.Warn("OIDC is not configured; jury pages cannot be signed in to")
	}

	ctrl := controllers.NewControllers(a.services, controllers.Options{
		Provider:          provider,
		Logger:            a.logger,
		AdminRole:         a.cfg.AdminRole,
		ScoreboardRefresh: a.cfg.ScoreboardRefresh,
	})

	r, err := setupRouter(a, ctrl)
	if err != nil {
		return fmt.Errorf("failed to setup router: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("jury console starting", "port", a.cfg.Port, "database", a.cfg.DBPath)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// setupRouter configures all routes
func setupRouter(a *app, ctrl *controllers.Controllers) (*chi.Mux, error) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(middleware.Compress(5))
	r.Use(a.metrics.Middleware)

	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "jury_session",
		Secure:         a.cfg.UseHTTPS,
		Gclifetime:     3600,
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)
	r.Use(authmiddleware.LoadIdentity)

	// PUBLIC ROUTES (no authentication required)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, routes.MustURL(routes.PublicScoreboard, nil), http.StatusFound)
	})
	r.Get(routes.Pattern(routes.PublicScoreboard), ctrl.Scoreboard.Index)
	r.Get("/login", ctrl.Auth.Login)
	r.Get("/callback", ctrl.Auth.Callback)
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/health", healthHandler(a.db))
	r.Handle("/metrics", a.metrics.Handler())

	// JURY ROUTES (admin role required)
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireAuth)
		r.Use(authmiddleware.RequireRole(a.cfg.AdminRole))

		r.Get(routes.Pattern(routes.JuryHome), ctrl.Jury.Index)
		r.Get(routes.Pattern(routes.JuryAuditLog), ctrl.AuditLog.Index)
	})

	return r, nil
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, code := "healthy", http.StatusOK
		if err := db.PingContext(r.Context()); err != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": status, "service": "contest-jury"})
	}
}
