package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/spa-scheduler/internal/catalog"
	"github.com/BruksfildServices01/spa-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/spa-scheduler/internal/db"
	"github.com/BruksfildServices01/spa-scheduler/internal/middleware"
	"github.com/BruksfildServices01/spa-scheduler/internal/notify"
	"github.com/BruksfildServices01/spa-scheduler/internal/routes"
	"github.com/BruksfildServices01/spa-scheduler/internal/store"
)

func main() {

	cfg := config.Load()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	st := newStore(cfg)
	dispatcher := notify.NewDispatcher(newNotifier(cfg))
	cat := catalog.New()

	r := gin.New()

	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.CORSMiddleware(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, cat, st, dispatcher)

	log.Info().
		Str("addr", cfg.Addr()).
		Str("store", cfg.StoreBackend).
		Msg("server running")

	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func newStore(cfg *config.Config) store.Store {
	switch cfg.StoreBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if _, err := client.Ping(ctx).Result(); err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}

		return store.NewRedisStore(client)

	case "postgres":
		return store.NewGormStore(dbpkg.NewDB(cfg))

	default:
		return store.NewMemoryStore()
	}
}

func newNotifier(cfg *config.Config) notify.Notifier {
	if cfg.AWSAccessKeyID == "" || cfg.EmailFrom == "" {
		log.Info().Msg("email not configured, confirmations will be logged")
		return notify.NewLogNotifier(cfg.BrandName)
	}

	notifier, err := notify.NewSESNotifier(
		cfg.AWSAccessKeyID,
		cfg.AWSSecretAccessKey,
		cfg.AWSRegion,
		cfg.EmailFrom,
		cfg.BrandName,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure ses")
	}

	return notifier
}
