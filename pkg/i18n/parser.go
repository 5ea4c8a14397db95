package i18n

import (
	"context"
	"path/filepath"
	"strings"
)

// Parser turns the content of a catalog file into messages keyed by language.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension accepts the extension with or without its leading dot.
	SupportsFileExtension(ext string) bool
}

// ParserFor returns the parser for filename's extension, or nil.
func ParserFor(filename string) Parser {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if p := NewYAMLParser(); p.SupportsFileExtension(ext) {
		return p
	}
	return nil
}
