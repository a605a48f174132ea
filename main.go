package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"showtracker/internal/api"
	"showtracker/internal/models"
	"showtracker/internal/repository"
	"showtracker/internal/service"
	"showtracker/internal/storage"
	"showtracker/pkg/config"
	"showtracker/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:          "showtracker",
		Short:        "REST API for tracking watched shows",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), configFile)
		},
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to config file")

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the show table in the configured SQL store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate(cmd.Context(), configFile)
		},
	})

	return root
}

// bootstrap 載入設定並建立記錄器
func bootstrap(configFile string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, logger.New(cfg.Log.Level, cfg.Log.Format), nil
}

// openRepositories 依照設定的驅動建立 repositories，回傳的 closer 負責關閉資料庫連線
func openRepositories(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*repository.Repositories, func(), error) {
	var seed []models.Show
	if cfg.Store.Seed {
		seed = models.SeedShows()
	}

	if cfg.Store.Driver == config.DriverMemory {
		return repository.NewMemoryRepositories(seed), func() {}, nil
	}

	db, err := storage.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close database")
		}
	}

	// 只有第一次建立資料表時才寫入初始資料
	if db.Migrator().HasTable(&models.Show{}) {
		seed = nil
	}

	// 自動遷移資料庫結構
	if err := db.AutoMigrate(&models.Show{}); err != nil {
		closer()
		return nil, nil, fmt.Errorf("failed to auto migrate database: %w", err)
	}
	if err := repository.Seed(ctx, db, seed); err != nil {
		closer()
		return nil, nil, err
	}

	return repository.NewRepositories(db), closer, nil
}

func serve(ctx context.Context, configFile string) error {
	cfg, log, err := bootstrap(configFile)
	if err != nil {
		return err
	}
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeDB, err := openRepositories(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.Store.Driver).Msg("failed to initialize store")
		return err
	}
	defer closeDB()

	services := service.NewServices(repos, log)
	if err := services.Show.SyncMetrics(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to sync show metrics")
	}

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: api.NewRouter(services, log),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", cfg.Server.Address).Str("driver", cfg.Store.Driver).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("failed to run server")
			return err
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	services.Feed.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func migrate(ctx context.Context, configFile string) error {
	cfg, log, err := bootstrap(configFile)
	if err != nil {
		return err
	}
	if cfg.Store.Driver == config.DriverMemory {
		log.Info().Msg("memory store needs no migration")
		return nil
	}

	_, closeDB, err := openRepositories(ctx, cfg, log)
	if err != nil {
		return err
	}
	closeDB()

	log.Info().Str("driver", cfg.Store.Driver).Msg("migration complete")
	return nil
}
