package declfile

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	Entities map[string]entityFile `json:"entities" yaml:"entities"`
}

type entityFile struct {
	Fields map[string]FieldDecl `json:"fields" yaml:"fields"`
}

// LoadFS walks the provided filesystem and parses JSON/YAML declaration
// files. When fsys is nil or holds no declaration files, the store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := newStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDeclarationFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("declfile: read %s: %w", path, err)
		}
		return store.add(data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFile parses a single declaration file from disk.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("declfile: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse builds a store from one JSON or YAML document. source names the
// document in error messages.
func Parse(data []byte, source string) (*Store, error) {
	store := newStore()
	if err := store.add(data, source); err != nil {
		return nil, err
	}
	return store, nil
}

// Entity returns the overlay declared for name.
func (s *Store) Entity(name string) (Entity, bool) {
	if s == nil {
		return Entity{}, false
	}
	e, ok := s.entities[name]
	return e, ok
}

// Empty reports whether the store holds any entity.
func (s *Store) Empty() bool {
	return s == nil || len(s.entities) == 0
}

func newStore() *Store {
	return &Store{entities: make(map[string]Entity)}
}

func (s *Store) add(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}

	for rawName, raw := range doc.Entities {
		name := strings.TrimSpace(rawName)
		if name == "" {
			return fmt.Errorf("declfile: file %s defines an empty entity name", source)
		}
		if existing, exists := s.entities[name]; exists {
			return fmt.Errorf("declfile: duplicate entity %q (files %s and %s)", name, existing.Source, source)
		}

		entity := Entity{Name: name, Source: source, Fields: make(map[string]FieldDecl, len(raw.Fields))}
		for rawField, decl := range raw.Fields {
			field := strings.TrimSpace(rawField)
			if field == "" {
				return fmt.Errorf("declfile: entity %q (file %s) defines an empty field name", name, source)
			}
			if _, exists := entity.Fields[field]; exists {
				return fmt.Errorf("declfile: entity %q (file %s) defines field %q twice", name, source, field)
			}
			entity.Fields[field] = decl
		}
		s.entities[name] = entity
	}
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("declfile: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("declfile: parse %s: invalid JSON or YAML", source)
}

func isDeclarationFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
