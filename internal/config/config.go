package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port string

	// StoreBackend selects where state persists: memory, file, postgres
	// or redis.
	StoreBackend string
	StoreDir     string
	DatabaseDSN  string
	RedisURL     string

	// RabbitURL is optional; without it checkout events are logged only.
	RabbitURL string

	LoginDelay time.Duration

	CORSAllowOrigins []string
}

func Load() Config {
	cfg := Config{
		Port: getenv("PORT", "8084"),

		StoreBackend: getenv("STORE_BACKEND", "file"),
		StoreDir:     getenv("STORE_DIR", "./data"),
		DatabaseDSN:  getenv("STOREFRONT_DB_DSN", ""),
		RedisURL:     getenv("REDIS_URL", ""),

		RabbitURL: getenv("RABBITMQ_URL", ""),

		LoginDelay: parseDuration(getenv("LOGIN_DELAY", "200ms"), 200*time.Millisecond),

		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
	}

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
