package uischema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formguard/pkg/model"
)

// LoadFS walks the provided filesystem and parses JSON/YAML form documents.
// When fsys is nil or no documents are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{forms: make(map[string]Config)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uischema: read %s: %w", path, err)
		}

		cfg, err := Parse(data, path)
		if err != nil {
			return err
		}
		if _, exists := store.forms[cfg.Form.ID]; exists {
			return fmt.Errorf("uischema: duplicate form %q (file %s)", cfg.Form.ID, path)
		}
		store.forms[cfg.Form.ID] = cfg
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Load reads a single document from disk.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("uischema: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Default returns the bundled signup configuration.
func Default() (Config, error) {
	store, err := LoadFS(EmbeddedFS())
	if err != nil {
		return Config{}, err
	}
	cfg, ok := store.Form(DefaultFormID)
	if !ok {
		return Config{}, fmt.Errorf("uischema: embedded form %q missing", DefaultFormID)
	}
	return cfg, nil
}

// Parse decodes one JSON or YAML document. Field keys must name signup
// fields and the reset delay, when set, must be a non-negative Go duration.
func Parse(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("uischema: file %s is empty", source)
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err != nil {
		if yamlErr := yaml.Unmarshal(data, &doc); yamlErr != nil {
			return Config{}, fmt.Errorf("uischema: parse %s: invalid JSON or YAML: %w", source, yamlErr)
		}
	}
	return normalise(doc, source)
}

// Form returns the configuration for the supplied form id.
func (s *Store) Form(id string) (Config, bool) {
	if s == nil {
		return Config{}, false
	}
	cfg, ok := s.forms[strings.TrimSpace(id)]
	return cfg, ok
}

// IDs lists the loaded form ids in sorted order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.forms))
	for id := range s.forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any forms.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

type documentFile struct {
	Form   FormConfig             `json:"form" yaml:"form"`
	Fields map[string]FieldConfig `json:"fields" yaml:"fields"`
}

func normalise(doc documentFile, source string) (Config, error) {
	cfg := Config{
		Source: source,
		Form: FormConfig{
			ID:         strings.TrimSpace(doc.Form.ID),
			Title:      strings.TrimSpace(doc.Form.Title),
			ResetDelay: strings.TrimSpace(doc.Form.ResetDelay),
			Theme:      strings.TrimSpace(doc.Form.Theme),
			Variant:    strings.TrimSpace(doc.Form.Variant),
		},
		Fields: make(map[model.FieldName]FieldConfig, len(doc.Fields)),
	}
	if cfg.Form.ID == "" {
		cfg.Form.ID = DefaultFormID
	}

	if cfg.Form.ResetDelay != "" {
		delay, err := time.ParseDuration(cfg.Form.ResetDelay)
		if err != nil {
			return Config{}, fmt.Errorf("%w: file %s: %q: %v", ErrInvalidDelay, source, cfg.Form.ResetDelay, err)
		}
		if delay < 0 {
			return Config{}, fmt.Errorf("%w: file %s: %q is negative", ErrInvalidDelay, source, cfg.Form.ResetDelay)
		}
		cfg.delay = delay
	}

	for key, field := range doc.Fields {
		name := model.FieldName(strings.TrimSpace(key))
		if !name.Valid() {
			return Config{}, fmt.Errorf("uischema: file %s field %q: %w", source, key, model.ErrUnknownField)
		}
		if _, exists := cfg.Fields[name]; exists {
			return Config{}, fmt.Errorf("uischema: file %s defines duplicate field %q", source, name)
		}
		cfg.Fields[name] = FieldConfig{
			Label:       strings.TrimSpace(field.Label),
			Placeholder: strings.TrimSpace(field.Placeholder),
			HelpText:    strings.TrimSpace(field.HelpText),
		}
	}

	return cfg, nil
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
