package config

import "errors"

var (
	// ErrLoadingEnvFile is returned when an explicitly named env file exists
	// but cannot be loaded.
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrParsingSettings is returned when environment variables cannot be
	// parsed into the settings struct.
	ErrParsingSettings = errors.New("failed to parse environment variables into settings")
)
