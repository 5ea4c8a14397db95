// Package config loads configuration structs from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for parsing and github.com/joho/godotenv
// for .env files:
//
//   - Load parses each config type once and caches a copy; later calls for
//     the same type are served from the cache.
//   - Parse reads the environment every time and accepts options such as
//     WithPrefix and WithEnvironment.
//   - LoadEnv loads one or more .env files into the process environment.
//   - ForceReload and ResetCache drop cached values, mostly for tests.
//
// A ./.env file is loaded once per process when present.
//
// # Usage
//
//	type Config struct {
//		Env      string `env:"APP_ENV" envDefault:"development"`
//		Currency string `env:"CURRENCY" envDefault:"BRL"`
//		AppKey   string `env:"STORAGE_APP_KEY,required"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// # Error Handling
//
// Parsing failures wrap ErrParsingConfig and file failures wrap
// ErrLoadingEnvFile; match them with errors.Is. A failed Load is not cached,
// so it can be retried after the environment is fixed.
package config
