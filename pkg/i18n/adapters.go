package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// TranslationAdapter loads every message of every language.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves messages from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return map[string]map[string]any{}, nil
	}
	return a.Data, nil
}

// FsAdapter reads every catalog file in a directory of an fs.FS, such as an
// embed.FS. Files whose extension the parser does not support are skipped;
// messages of the same language in several files are merged in name order,
// later files replacing top-level keys of earlier ones.
type FsAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFsAdapter returns nil when parser or fsys is nil. An empty dir means the root.
func NewFsAdapter(parser Parser, fsys fs.FS, dir string) *FsAdapter {
	if parser == nil || fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &FsAdapter{parser: parser, fsys: fsys, dir: dir}
}

func (a *FsAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	all := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", name, err))
		}
		parsed, err := a.parser.Parse(ctx, string(content))
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
		}

		for lang, messages := range parsed {
			if all[lang] == nil {
				all[lang] = make(map[string]any, len(messages))
			}
			maps.Copy(all[lang], messages)
		}
		loaded++
	}

	if loaded == 0 {
		return nil, errors.Join(ErrNoTranslationsFound, fmt.Errorf("directory %q", a.dir))
	}
	return all, nil
}
