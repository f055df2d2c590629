package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cacheadapter "github.com/taskdeck/auth-service/internal/adapters/cache"
	httpadapter "github.com/taskdeck/auth-service/internal/adapters/http"
	"github.com/taskdeck/auth-service/internal/adapters/postgres"
	"github.com/taskdeck/auth-service/internal/adapters/security"
	"github.com/taskdeck/auth-service/internal/adapters/worker"
	"github.com/taskdeck/auth-service/internal/application"
	"github.com/taskdeck/auth-service/internal/ports"
)

type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	httpServer *http.Server
	sweeper    *worker.SessionSweeper
	cleanupFn  func(context.Context)
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	logger.Info("bootstrapping auth service", "service_id", cfg.ServiceID, "http_port", cfg.HTTPPort)

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.MaxDBConns)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	sqlDB, err := pool.DB()
	if err != nil {
		return nil, fmt.Errorf("gorm sql db: %w", err)
	}

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	redisClient, err := cacheadapter.Connect(ctx, cfg.RedisURL)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("init redis client: %w", err)
	}
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	repos := postgres.NewRepositories(pool)
	svc := application.NewService(application.Dependencies{
		Users:         repos.Users,
		Sessions:      repos.Sessions,
		LoginAttempts: repos.LoginAttempts,
		Hasher:        security.NewBcryptHasher(cfg.BcryptCost),
	})

	handler := httpadapter.NewHandler(svc)
	router := httpadapter.NewRouter(handler, httpadapter.RouterConfig{
		Limiter: cacheadapter.NewRedisRateLimiter(redisClient),
		LoginLimit: ports.RateLimitConfig{
			MaxRequests: cfg.LoginRateLimitThreshold,
			Window:      cfg.LoginRateLimitWindow,
		},
		RegisterLimit: ports.RateLimitConfig{
			MaxRequests: cfg.RegisterRateLimitThreshold,
			Window:      cfg.RegisterRateLimitWindow,
		},
	})
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sweeper := worker.NewSessionSweeper(logger, repos.Sessions, cfg.SweepInterval)

	return &Runtime{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		sweeper:    sweeper,
		cleanupFn: func(ctx context.Context) {
			_ = redisClient.Close()
			_ = sqlDB.Close()
		},
	}, nil
}

// Run serves HTTP and the session sweeper until a shutdown signal arrives.
func (r *Runtime) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("http server started", "addr", r.httpServer.Addr)
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()
	go func() {
		r.logger.Info("session sweeper started", "interval", r.cfg.SweepInterval.String())
		_ = r.sweeper.Run(ctx)
	}()

	select {
	case <-ctx.Done():
		r.logger.Info("shutdown signal received")
	case err := <-errCh:
		r.logger.Error("server failure", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = r.httpServer.Shutdown(shutdownCtx)
	r.cleanupFn(shutdownCtx)
	return nil
}
