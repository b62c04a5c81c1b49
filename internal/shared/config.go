package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv       string
	HTTPAddr     string
	MetricsAddr  string
	CatalogBase  string
	CatalogFile  string
	MySQLDSN     string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	CatalogTTL   time.Duration
	FetchTimeout time.Duration
	FetchRPS     int
	Workers      int
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:       env("APP_ENV", "prod"),
		HTTPAddr:     env("HTTP_ADDR", ":8000"),
		MetricsAddr:  env("METRICS_ADDR", ":9100"),
		CatalogBase:  env("CATALOG_BASE_URL", "http://localhost:3000"),
		CatalogFile:  env("CATALOG_FILE", ""),
		MySQLDSN:     env("MYSQL_DSN", ""),
		RedisAddr:    env("REDIS_ADDR", ""),
		RedisPass:    env("REDIS_PASSWORD", ""),
		RedisDB:      atoi("REDIS_DB", 0),
		CatalogTTL:   time.Duration(atoi("CATALOG_TTL_SECONDS", 300)) * time.Second,
		FetchTimeout: time.Duration(atoi("FETCH_TIMEOUT_SECONDS", 5)) * time.Second,
		FetchRPS:     atoi("FETCH_RPS", 5),
		Workers:      atoi("REPLAY_WORKERS", 8),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
