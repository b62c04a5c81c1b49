package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"butler/internal/adapters/catalog"
	server "butler/internal/adapters/http_server"
	"butler/internal/adapters/observability"
	redisad "butler/internal/adapters/redis"
	"butler/internal/app"
	"butler/internal/domain"
	"butler/internal/shared"
	mysqlrepo "butler/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// catalog source: local file beats MySQL beats the HTTP backend
	var src domain.CatalogSource
	switch {
	case cfg.CatalogFile != "":
		src = catalog.NewFileSource(cfg.CatalogFile)
		log.Info().Str("path", cfg.CatalogFile).Msg("serving catalog from file")
	case cfg.MySQLDSN != "":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		src = mysqlrepo.New(db)
	default:
		src = catalog.New(cfg.CatalogBase, cfg.FetchTimeout, cfg.FetchRPS)
		log.Info().Str("base", cfg.CatalogBase).Msg("serving catalog from HTTP backend")
	}

	// optional shared snapshot tier
	var store domain.Cache
	if cfg.RedisAddr != "" {
		store = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}

	cache := app.NewCatalogCache(src, store, cfg.CatalogTTL)
	resolver := app.NewResolver(cache)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{E: resolver})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("concierge listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
