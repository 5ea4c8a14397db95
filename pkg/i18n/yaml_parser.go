package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser reads catalogs whose top-level keys are language tags:
//
//	en:
//	  validation:
//	    required: "This field is required."
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if len(doc) == 0 {
		return nil, ErrInvalidCatalog
	}

	out := make(map[string]map[string]any, len(doc))
	for lang, messages := range doc {
		m, ok := messages.(map[string]any)
		if !ok {
			return nil, errors.Join(ErrInvalidCatalog,
				fmt.Errorf("language %q holds %T", lang, messages))
		}
		out[lang] = m
	}
	return out, nil
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
