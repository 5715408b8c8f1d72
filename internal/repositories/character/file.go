package character

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// charactersSubdir is searched inside each data directory after the
// directory itself.
const charactersSubdir = "characters"

// FileConfig configures the file loader
type FileConfig struct {
	DataDirs []string
	// Skip lists file base names that are never characters. Defaults to
	// the catalog kinds.
	Skip []string
}

// Validate ensures there is somewhere to read from
func (c *FileConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if len(c.DataDirs) == 0 {
		vb.RequiredField("DataDirs")
	}
	return vb.Build()
}

type fileRepository struct {
	dirs []string
	skip map[string]bool
}

// NewFile creates a file-backed character repository
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	skip := cfg.Skip
	if skip == nil {
		for _, k := range catalog.Kinds() {
			skip = append(skip, string(k))
		}
		skip = append(skip, "packs")
	}
	r := &fileRepository{dirs: cfg.DataDirs, skip: make(map[string]bool, len(skip))}
	for _, name := range skip {
		r.skip[strings.ToLower(name)] = true
	}
	return r, nil
}

// cleanID strips a leading data/ or ./ and a known extension. The second
// return is the extension the caller asked for, if any.
func cleanID(id string) (string, string, error) {
	id = strings.TrimSpace(id)
	id = strings.TrimPrefix(id, "./")
	id = strings.TrimPrefix(id, "/")
	id = strings.TrimPrefix(id, "data/")
	ext := strings.ToLower(filepath.Ext(id))
	if slices.Contains(catalog.Extensions(), ext) {
		id = strings.TrimSuffix(id, filepath.Ext(id))
	} else {
		ext = ""
	}
	if id == "" {
		return "", "", errors.InvalidArgument("character ID is required")
	}
	if strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return "", "", errors.InvalidArgumentf("invalid character ID %q", id)
	}
	return id, ext, nil
}

func (r *fileRepository) candidates(id, ext string) []string {
	exts := catalog.Extensions()
	if ext != "" {
		exts = []string{ext}
	}
	names := []string{id}
	if slug := entities.Slug(id); slug != "" && slug != id {
		names = append(names, slug)
	}

	var out []string
	for _, dir := range r.dirs {
		for _, base := range []string{dir, filepath.Join(dir, charactersSubdir)} {
			for _, name := range names {
				for _, e := range exts {
					out = append(out, filepath.Join(base, name+e))
				}
			}
		}
	}
	return out
}

func (r *fileRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	id, ext, err := cleanID(input.ID)
	if err != nil {
		return nil, err
	}

	for _, path := range r.candidates(id, ext) {
		if err := ctx.Err(); err != nil {
			return nil, errors.FromContext(err, "character lookup cancelled")
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}

		c, err := decodeCharacter(path, data)
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInternal, "failed to decode %s", path)
		}
		slog.DebugContext(ctx, "Character loaded", "id", id, "path", path)
		return &GetOutput{Character: c, Path: path}, nil
	}

	return nil, errors.NotFoundf("character %s not found", id)
}

func (r *fileRepository) List(ctx context.Context) (*ListOutput, error) {
	seen := make(map[string]bool)
	var out []*entities.Character

	for _, dir := range r.dirs {
		for _, base := range []string{dir, filepath.Join(dir, charactersSubdir)} {
			entries, err := os.ReadDir(base)
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					slog.Warn("Failed to read data directory", "dir", base, "error", err)
				}
				continue
			}
			for _, entry := range entries {
				if err := ctx.Err(); err != nil {
					return nil, errors.FromContext(err, "character listing cancelled")
				}
				c, ok := r.loadEntry(base, entry)
				if !ok || seen[c.GetID()] {
					continue
				}
				seen[c.GetID()] = true
				out = append(out, c)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return &ListOutput{Characters: out}, nil
}

func (r *fileRepository) loadEntry(dir string, entry fs.DirEntry) (*entities.Character, bool) {
	if entry.IsDir() {
		return nil, false
	}
	name := entry.Name()
	ext := strings.ToLower(filepath.Ext(name))
	if !slices.Contains(catalog.Extensions(), ext) {
		return nil, false
	}
	if r.skip[strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))] {
		return nil, false
	}

	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("Failed to read character file", "path", path, "error", err)
		return nil, false
	}
	c, err := decodeCharacter(path, data)
	if err != nil {
		slog.Debug("Skipping non-character file", "path", path, "error", err)
		return nil, false
	}
	return c, true
}

func decodeCharacter(path string, data []byte) (*entities.Character, error) {
	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		doc = entities.StringKeys(doc)
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	}
	raw, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.InvalidArgument("character file must hold an object")
	}
	return entities.NormalizeCharacter(raw)
}
