package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lgu-seal/sglgb-backend/infra"
	"github.com/lgu-seal/sglgb-backend/repositories"
	"github.com/lgu-seal/sglgb-backend/usecases"
	"github.com/lgu-seal/sglgb-backend/utils"
)

type AppConfiguration struct {
	env       string
	port      string
	logFormat string
	pgConfig  infra.PgConfig
}

func loadConfiguration() AppConfiguration {
	return AppConfiguration{
		env:       utils.GetStringEnv("ENV", "development"),
		port:      utils.GetStringEnv("PORT", "8080"),
		logFormat: utils.GetStringEnv("LOG_FORMAT", "text"),
		pgConfig: infra.PgConfig{
			ConnectionString:   utils.GetStringEnv("PG_CONNECTION_STRING", ""),
			Hostname:           utils.GetStringEnv("PG_HOSTNAME", "localhost"),
			Port:               utils.GetStringEnv("PG_PORT", "5432"),
			User:               utils.GetStringEnv("PG_USER", "postgres"),
			Password:           utils.GetStringEnv("PG_PASSWORD", ""),
			Database:           utils.GetStringEnv("PG_DATABASE", "sglgb"),
			MaxPoolConnections: utils.GetIntEnv("PG_MAX_POOL_SIZE", 20),
			SslMode:            utils.GetStringEnv("PG_SSL_MODE", "prefer"),
		},
	}
}

func runServer(ctx context.Context, conf AppConfiguration) error {
	logger := utils.LoggerFromContext(ctx)

	pool, err := infra.NewPostgresConnectionPool(ctx, conf.pgConfig)
	if err != nil {
		return err
	}
	defer pool.Close()

	uc, err := usecases.NewUsecases(repositories.NewRepositories(pool))
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", conf.port),
		Handler:      initRouter(ctx, conf, uc),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", "port", conf.port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "error serving the app", "error", err.Error())
		}
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "run database migrations")
	shouldRunServer := flag.Bool("server", false, "run the http server")
	flag.Parse()

	conf := loadConfiguration()
	logger := utils.NewLogger(conf.logFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	if *shouldRunMigrations {
		if err := repositories.RunMigrations(ctx, conf.pgConfig, logger); err != nil {
			logger.ErrorContext(ctx, "failed to run migrations", "error", err.Error())
			os.Exit(1)
		}
	}
	if *shouldRunServer {
		if err := runServer(ctx, conf); err != nil {
			logger.ErrorContext(ctx, "server exited with error", "error", err.Error())
			os.Exit(1)
		}
	}
}
