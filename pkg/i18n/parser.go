package i18n

import "context"

// Parser turns raw file content into locale-keyed template maps.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)
	SupportsFileExtension(ext string) bool
}
