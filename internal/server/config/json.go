package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/sondage/internal/flagx"
	"github.com/dmitrijs2005/sondage/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for the shutdown timeout, which allows both string
// values such as "5s" and integer nanoseconds. Absent keys leave the current
// value untouched.
type JsonConfig struct {
	Addr            *string         `json:"addr"`
	Storage         *string         `json:"storage"`
	DatabaseDSN     *string         `json:"database_dsn"`
	RedisAddr       *string         `json:"redis_addr"`
	RedisPassword   *string         `json:"redis_password"`
	RedisDB         *int            `json:"redis_db"`
	CORSOrigin      *string         `json:"cors_origin"`
	ShutdownTimeout *timex.Duration `json:"shutdown_timeout"`
}

// parseJson loads configuration values from the JSON file named by the -c
// or -config flag. Without the flag nothing is loaded. Read or decode
// errors panic.
func parseJson(config *Config, args []string) {

	jsonConfigFile := flagx.JsonConfigFlags(args)

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	copyIfSet(&config.Addr, c.Addr)
	copyIfSet(&config.Storage, c.Storage)
	copyIfSet(&config.DatabaseDSN, c.DatabaseDSN)
	copyIfSet(&config.RedisAddr, c.RedisAddr)
	copyIfSet(&config.RedisPassword, c.RedisPassword)
	copyIfSet(&config.RedisDB, c.RedisDB)
	copyIfSet(&config.CORSOrigin, c.CORSOrigin)
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}

func copyIfSet[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
