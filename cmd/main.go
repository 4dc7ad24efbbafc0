package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"tracking-number-generator/cmd/bootstrap"
	"tracking-number-generator/internal/handler/middleware"
	"tracking-number-generator/internal/infra/db"
	"tracking-number-generator/internal/infra/sqlitestore"
	"tracking-number-generator/internal/pkg/clock"
	"tracking-number-generator/internal/pkg/config"
	"tracking-number-generator/migrations"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func init() {
	// Never expose debug routes because of a missing setting.
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

var rootCmd = &cobra.Command{
	Use:          "tracking-number-generator",
	Short:        "Issue unique parcel tracking numbers",
	Long:         `Serves GET /next-tracking-number, issuing identifiers that are unique across all instances sharing a store.`,
	RunE:         serve,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	RunE:  serve,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply store schema migrations and exit",
	RunE:  migrate,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// @title           tracking-number-generator
// @version         1.0
// @description     Issues unique parcel tracking numbers.

// @BasePath  /
// @schemes http https
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting server", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return srv.Shutdown(ctx)
		},
	})
}

func serve(_ *cobra.Command, _ []string) error {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("application failed to start", "error", err)
		return err
	}

	<-app.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("application failed to stop cleanly", "error", err)
	}

	slog.Info("application stopped")
	return nil
}

func migrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	middleware.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	switch cfg.Store.Driver {
	case config.StoreDriverSQLite:
		st, err := sqlitestore.Open(cfg.Store.SQLitePath, clock.NewRealClock())
		if err != nil {
			return err
		}
		slog.Info("sqlite schema applied", "path", cfg.Store.SQLitePath)
		return st.Close()
	default:
		pool, cleanup, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer cleanup()

		slog.Info("running postgres migrations")
		if err := migrations.RunMigrationsUp(ctx, pool); err != nil {
			return err
		}
		slog.Info("postgres migrations completed")
		return nil
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
