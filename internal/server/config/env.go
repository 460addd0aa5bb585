package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvAddr          = "SONDAGE_ADDR"
	EnvStorage       = "SONDAGE_STORAGE"
	EnvDatabaseDSN   = "DATABASE_DSN"
	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"
	EnvRedisDB       = "REDIS_DB"
)

// loadEnv returns the variables from the given dotenv files overlaid with
// the process environment. Missing files are ignored.
func loadEnv(files ...string) map[string]string {
	env := map[string]string{}
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if err != nil {
			continue
		}
		for k, v := range vals {
			env[k] = v
		}
	}
	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		env[k] = v
	}
	return env
}

// parseEnv overlays cfg with the non-empty variables found in env. A REDIS_DB
// that is not an integer panics, like any other malformed setting.
func parseEnv(cfg *Config, env map[string]string) {
	set := func(key string, dst *string) {
		if v := env[key]; v != "" {
			*dst = v
		}
	}

	set(EnvAddr, &cfg.Addr)
	set(EnvStorage, &cfg.Storage)
	set(EnvDatabaseDSN, &cfg.DatabaseDSN)
	set(EnvRedisAddr, &cfg.RedisAddr)
	set(EnvRedisPassword, &cfg.RedisPassword)

	if v := env[EnvRedisDB]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		cfg.RedisDB = n
	}
}
