package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"pricesplash/internal/adapters"
	"pricesplash/internal/adapters/cache"
	"pricesplash/internal/adapters/httpclient"
	"pricesplash/internal/adapters/objectstore"
	"pricesplash/internal/adapters/postgres"
	"pricesplash/internal/adapters/redisstore"
	"pricesplash/internal/api"
	"pricesplash/internal/config"
	"pricesplash/internal/domain"
	"pricesplash/internal/platform/db"
	httpserver "pricesplash/internal/platform/http"
	"pricesplash/internal/platform/scheduler"
	"pricesplash/internal/price"
	pricehandler "pricesplash/internal/price/handler"
	"pricesplash/internal/splash"
	splashhandler "pricesplash/internal/splash/handler"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Run wires the application components, starts HTTP servers and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations, pings)
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool, only when a store lives in postgres
	var pool *pgxpool.Pool
	if appCfg.UsesPostgres() {
		pool, err = db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
		if err != nil {
			logrus.WithError(err).Error("Error connecting to db")
			return err
		}
		defer pool.Close()
		logrus.Info("✅ Postgres connection successful")

		if err = db.Migrate(startupCtx, pool); err != nil {
			logrus.WithError(err).Error("Failed to apply migrations")
			return err
		}
	}

	// Stores
	kvStore, closeKV, err := newKVStore(startupCtx, appCfg, pool)
	if err != nil {
		logrus.WithError(err).Error("Failed to create kv store")
		return err
	}
	defer closeKV()
	logrus.Infof("✅ KV store ready (%s)", appCfg.KVStore.Driver)

	objectStore, err := newObjectStore(appCfg, pool)
	if err != nil {
		logrus.WithError(err).Error("Failed to create object store")
		return err
	}
	logrus.Infof("✅ Object store ready (%s)", appCfg.ObjectStore.Driver)

	// Upstream client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	priceClient := httpclient.NewCryptoCompareClient(
		strings.TrimSuffix(appCfg.PriceAPI.BaseURL, "/"),
		appCfg.PriceAPI.APIKey,
		httpTimeout,
	)

	// Jobs and services
	refresher := price.NewRefresher(priceClient, kvStore, nil)
	rotator := splash.NewRotator(objectStore, nil)
	priceService := price.NewService(kvStore)

	jobs := scheduler.NewScheduler(
		appCfg.Scheduler.RunOnStart,
		scheduler.Job{
			Name:     "refresh-prices",
			Cron:     appCfg.Scheduler.PricesCron,
			Run:      refresher.Run,
			Expected: []error{domain.ErrUpstreamUnavailable, domain.ErrMalformedResponse},
		},
		scheduler.Job{
			Name:     "rotate-splash",
			Cron:     appCfg.Scheduler.SplashCron,
			Run:      rotator.Run,
			Expected: []error{domain.ErrEmptyCandidateSet, domain.ErrObjectNotFound},
		},
	)
	// Ensure scheduler stops before stores close
	defer func() {
		if shutDownErr := jobs.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := jobs.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and routers
	priceRouter := api.NewPriceRouter(pricehandler.NewPriceHandler(priceService))
	splashRouter := api.NewSplashRouter(splashhandler.NewSplashHandler())
	opsRouter := api.NewOpsRouter()

	// Block until ctx is canceled or any server fails; the others follow.
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return httpserver.Start(groupCtx, "prices", appCfg.PriceServer, priceRouter)
	})
	group.Go(func() error {
		return httpserver.Start(groupCtx, "splash", appCfg.SplashServer, splashRouter)
	})
	group.Go(func() error {
		return httpserver.Start(groupCtx, "ops", appCfg.OpsServer, opsRouter)
	})
	if serverErr := group.Wait(); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

// newKVStore builds the configured KV backend and the func releasing it.
func newKVStore(ctx context.Context, cfg *config.AppConfig, pool *pgxpool.Pool) (adapters.KVStore, func(), error) {
	switch cfg.KVStore.Driver {
	case config.DriverRedis:
		client, err := redisstore.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Pass, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		store := redisstore.NewKVStore(client, cfg.KVStore.KeyPrefix)
		return store, func() {
			if closeErr := store.Close(); closeErr != nil {
				logrus.WithError(closeErr).Warn("Failed to close redis client")
			}
		}, nil
	case config.DriverPostgres:
		return postgres.NewKVStore(pool), func() {}, nil
	case config.DriverMemory:
		store, err := cache.NewKVStore(cfg.KVStore.MaxItems)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown kv store driver %q", cfg.KVStore.Driver)
	}
}

// newObjectStore builds the configured object backend.
func newObjectStore(cfg *config.AppConfig, pool *pgxpool.Pool) (adapters.ObjectStore, error) {
	switch cfg.ObjectStore.Driver {
	case config.DriverS3:
		return objectstore.NewS3Store(objectstore.S3Config{
			Endpoint:  cfg.ObjectStore.Endpoint,
			Bucket:    cfg.ObjectStore.Bucket,
			AccessKey: cfg.ObjectStore.AccessKey,
			SecretKey: cfg.ObjectStore.SecretKey,
			Region:    cfg.ObjectStore.Region,
			UseSSL:    cfg.ObjectStore.UseSSL,
		})
	case config.DriverPostgres:
		return postgres.NewObjectStore(pool), nil
	case config.DriverMemory:
		return objectstore.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown object store driver %q", cfg.ObjectStore.Driver)
	}
}
