// server is the mood tracking service binary: it wires the Postgres mood
// history store, the Redis insight cache, the optional generative
// recommendation client, and the HTTP API.
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

	"github.com/redis/go-redis/v9"

	"moodmate/internal/ai"
	"moodmate/internal/api"
	"moodmate/internal/cache"
	"moodmate/internal/catalog"
	"moodmate/internal/config"
	"moodmate/internal/insights"
	"moodmate/internal/logging"
	"moodmate/internal/recommend"
	"moodmate/internal/storage"
)

func main() {
	var catalogPath string
	flag.StringVar(&catalogPath, "catalog", "", "optional YAML catalog override file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(logging.ParseLevel(cfg.Logging.Level))

	if err := run(cfg, catalogPath, logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, catalogPath string, logger logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat := catalog.Default()
	if catalogPath != "" {
		loaded, err := catalog.LoadFile(catalogPath)
		if err != nil {
			return fmt.Errorf("failed to load catalog override: %w", err)
		}
		cat = loaded
		logger.Info("loaded catalog override", "path", catalogPath)
	}

	dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	db, err := storage.Open(dbCtx, cfg.Database.DSN,
		cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns,
		time.Duration(cfg.Database.ConnMaxLifetime)*time.Minute)
	cancel()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	store := storage.NewPostgresStore(db, logger)
	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}
	logger.Info("database ready")

	var reportCache insights.ReportCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = redisClient.Close() }()

		pingCtx, cancelPing := context.WithTimeout(ctx, 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			logger.Warn("redis unreachable, insight caching disabled", "addr", cfg.Redis.Addr, "error", err)
		} else {
			reportCache = cache.New(redisClient, cfg.Insights.CacheTTL(), logger)
			logger.Info("insight cache enabled", "addr", cfg.Redis.Addr)
		}
		cancelPing()
	}

	var picker recommend.GenerativePicker
	if cfg.OpenAI.Enabled {
		client, err := ai.NewOpenAIClient(cfg.OpenAI)
		if err != nil {
			return fmt.Errorf("failed to build completion client: %w", err)
		}
		picker = ai.NewPicker(client, logger)
		logger.Info("generative recommendations enabled", "model", cfg.OpenAI.Model)
	}

	recommender := recommend.NewService(cat, store, store, picker,
		cfg.Recommend.ExerciseCount, cfg.Recommend.ActivityCount, logger)
	insightsSvc := insights.NewService(store, reportCache, cfg.Insights.HistoryDays, logger)

	router := api.NewRouter(store, store, recommender, insightsSvc, logger)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Handler(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.Server.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
