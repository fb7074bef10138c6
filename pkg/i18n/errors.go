package i18n

import "errors"

var (
	// Bundle construction
	ErrNilAdapter           = errors.New("adapter is nil")
	ErrEmptyLanguageCode    = errors.New("empty language code found")
	ErrNilLanguageTemplates = errors.New("nil template map for language")

	// Loading
	ErrLoadingCancelled      = errors.New("loading templates cancelled")
	ErrFailedToReadFile      = errors.New("failed to read template file")
	ErrFailedToParseFile     = errors.New("failed to parse template file")
	ErrFailedToReadDirectory = errors.New("failed to read template directory")

	// Parsing
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
)
