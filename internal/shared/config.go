package shared

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	StoreDriver string // json|redis|mysql
	DataDir     string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	RedisPrefix string
}

// Load reads the environment, after merging an optional .env file. With no
// environment at all it yields JSON files in the working directory and no
// listener.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env ignored")
	}
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		LogLevel:    env("LOG_LEVEL", "info"),
		StoreDriver: env("STORE_DRIVER", "json"),
		DataDir:     env("DATA_DIR", "."),
		MetricsAddr: env("METRICS_ADDR", ""),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/hotelres?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		RedisPrefix: env("REDIS_PREFIX", "hotelres"),
	}
	switch c.StoreDriver {
	case "json", "redis", "mysql":
	default:
		log.Warn().Str("driver", c.StoreDriver).Msg("unknown STORE_DRIVER, using json")
		c.StoreDriver = "json"
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
