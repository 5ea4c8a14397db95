package config

import "errors"

var (
	// ErrParsingConfig is returned when the environment cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrConfigNotLoaded is returned when a cached config is missing after loading.
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is provided to the loader.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrLoadingEnvFile is returned when a .env file cannot be read.
	ErrLoadingEnvFile = errors.New("failed to load env file")
)
