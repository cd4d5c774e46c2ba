// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing):
//
//	type Config struct {
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Each configuration type is parsed once per process and cached; ResetCache clears the
// cache in tests. LoadEnv reads additional .env files before the first Load.
package config
