package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Store
	StoreDriver string // "file" (default) / "redis"
	DataDir     string

	// Redis (dipakai kalau StoreDriver = redis)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Logging
	LogLevel string
	LogJSON  bool
	LogFile  string // kosong = stdout saja
	LogMaxMB int

	// Opsional: dump data admin saat boot
	ExportPath string
}

func Load() Config {
	redisDB, _ := strconv.Atoi(get("REDIS_DB", "0"))
	maxMB, _ := strconv.Atoi(get("LOG_MAX_MB", "50"))
	return Config{
		StoreDriver:   get("STORE_DRIVER", "file"),
		DataDir:       get("DATA_DIR", "./data"),
		RedisAddr:     get("REDIS_ADDR", "localhost:6379"),
		RedisPassword: get("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		LogLevel:      get("LOG_LEVEL", "info"),
		LogJSON:       get("LOG_JSON", "false") == "true",
		LogFile:       get("LOG_FILE", ""),
		LogMaxMB:      maxMB,
		ExportPath:    get("EXPORT_PATH", ""),
	}
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
