package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"hotel_reservations/internal/adapters/console"
	server "hotel_reservations/internal/adapters/http_server"
	"hotel_reservations/internal/adapters/observability"
	redisad "hotel_reservations/internal/adapters/redis"
	"hotel_reservations/internal/app"
	"hotel_reservations/internal/clock"
	"hotel_reservations/internal/domain"
	"hotel_reservations/internal/shared"
	"hotel_reservations/internal/storage/jsonfile"
	mysqlstore "hotel_reservations/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// logs go to stderr; stdout belongs to the menu
	log.Logger = observability.NewLogger(os.Stderr, cfg.AppEnv, cfg.LogLevel)

	store, closeStore := openStore(ctx, cfg)
	defer closeStore()

	svc, err := app.Open(ctx, store, clock.NewSystem())
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("load collections failed")
	}
	for _, d := range svc.Reservations.Audit() {
		log.Warn().
			Int64("hotel_id", d.HotelID).
			Int("expected", d.Expected).
			Int("actual", d.Actual).
			Msg("availability drift")
	}
	observability.SetAvailability(svc.Hotels.ReadAll())

	// ops endpoint (metrics + health), off unless METRICS_ADDR is set
	if cfg.MetricsAddr != "" {
		srv := server.New()
		srv.Mount("/metrics", observability.MetricsHandler(observability.InitRegistry()))
		srv.MountHandlers(&server.Health{Store: store, Driver: cfg.StoreDriver})
		srv.Start(cfg.MetricsAddr)
		defer func() {
			sctx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(sctx)
		}()
	}

	if err := console.New(os.Stdin, os.Stdout, svc).Run(ctx); err != nil {
		log.Error().Err(err).Msg("read input failed")
	}
}

// openStore builds the configured store and its close func.
func openStore(ctx context.Context, cfg shared.Config) (domain.Store, func()) {
	switch cfg.StoreDriver {
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.PingContext(ctx); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		st := mysqlstore.New(db)
		if err := st.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("migrate failed")
		}
		log.Info().Msg("database connection ok")
		return st, func() { _ = db.Close() }
	case "redis":
		st := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.RedisPrefix)
		if err := st.Ping(ctx); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed")
		}
		return st, func() { _ = st.Close() }
	default:
		st, err := jsonfile.New(cfg.DataDir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("open data dir failed")
		}
		log.Debug().Str("dir", cfg.DataDir).Msg("using json files")
		return st, func() {}
	}
}
