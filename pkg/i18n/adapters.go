package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
)

// TranslationAdapter loads translations keyed by language, then by message key.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from an in-memory map.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads translations from a single file on disk.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter returns nil if parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, a.path)
	}

	translations, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}

	return translations, nil
}

// EmbedAdapter loads every supported file in a directory of an fs.FS,
// typically an embed.FS, and merges them per language.
type EmbedAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewEmbedAdapter returns nil if parser or fsys is nil or dir is empty.
func NewEmbedAdapter(parser Parser, fsys fs.FS, dir string) *EmbedAdapter {
	if parser == nil || fsys == nil || dir == "" {
		return nil
	}
	return &EmbedAdapter{parser: parser, fsys: fsys, dir: dir}
}

// Load skips files that fail to parse as long as at least one file succeeds.
// Files are merged in directory order, so a later file wins on duplicate keys.
func (a *EmbedAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(map[string]map[string]any)
	var fileErrs []error
	loaded := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := path.Ext(entry.Name())
		if ext == "" || !a.parser.SupportsFileExtension(ext) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingFileCancelled, err)
		}

		filePath := path.Join(a.dir, entry.Name())
		if err := a.loadFile(ctx, filePath, all); err != nil {
			fileErrs = append(fileErrs, fmt.Errorf("%s: %w", filePath, err))
			continue
		}
		loaded++
	}

	if loaded == 0 {
		return nil, errors.Join(append([]error{fmt.Errorf("%w in %s", ErrNoTranslationFiles, a.dir)}, fileErrs...)...)
	}

	return all, nil
}

func (a *EmbedAdapter) loadFile(ctx context.Context, filePath string, all map[string]map[string]any) error {
	content, err := fs.ReadFile(a.fsys, filePath)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return ErrEmptyFile
	}

	translations, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return errors.Join(ErrFailedToParseFile, err)
	}

	for lang, values := range translations {
		if all[lang] == nil {
			all[lang] = make(map[string]any)
		}
		maps.Copy(all[lang], values)
	}
	return nil
}
