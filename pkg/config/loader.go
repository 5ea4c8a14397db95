package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores one parsed copy per config type.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	defaultEnvLoaded sync.Once
)

// Option adjusts how a single Parse call reads the environment.
type Option func(*env.Options)

// WithPrefix reads every variable with the given prefix, e.g. "CASHFLOW_".
func WithPrefix(prefix string) Option {
	return func(o *env.Options) { o.Prefix = prefix }
}

// WithEnvironment reads from vars instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) { o.Environment = vars }
}

// LoadEnv loads the given .env files into the process environment, later
// files overriding earlier ones. Without paths it loads ./.env.
// Variables already set in the process are overridden too.
func LoadEnv(paths ...string) error {
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is LoadEnv that panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Parse reads the environment into v without touching the cache.
// It also loads ./.env once per process when present.
func Parse[T any](v *T, opts ...Option) error {
	loadDefaultEnv()
	if v == nil {
		return ErrNilPointer
	}

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}
	if err := env.ParseWithOptions(v, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// Load parses the environment into v once per config type and serves later
// calls for the same type from the cache.
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		AppKey   string `env:"STORAGE_APP_KEY,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	loadDefaultEnv()
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()
	if cachedInto(typeName, v) {
		return nil
	}

	globalCache.mu.Lock()
	once, exists := globalCache.onces[typeName]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[typeName] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		if err = Parse(v); err != nil {
			// allow a retry once the environment is fixed
			globalCache.mu.Lock()
			delete(globalCache.onces, typeName)
			globalCache.mu.Unlock()
			return
		}

		globalCache.mu.Lock()
		globalCache.values[typeName] = *v
		globalCache.mu.Unlock()
	})
	if err != nil {
		return err
	}

	if cachedInto(typeName, v) {
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReload drops the cached value of T and loads it again.
func ForceReload[T any](v *T) error {
	typeName := getTypeName[T]()

	globalCache.mu.Lock()
	delete(globalCache.values, typeName)
	delete(globalCache.onces, typeName)
	globalCache.mu.Unlock()

	return Load(v)
}

// ResetCache drops every cached config.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
}

func loadDefaultEnv() {
	defaultEnvLoaded.Do(func() {
		// .env is optional
		_ = godotenv.Load()
	})
}

func cachedInto[T any](typeName string, v *T) bool {
	globalCache.mu.RLock()
	defer globalCache.mu.RUnlock()
	cached, ok := globalCache.values[typeName]
	if ok {
		*v = cached.(T)
	}
	return ok
}

func getTypeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t.PkgPath() + "." + t.String()
}
