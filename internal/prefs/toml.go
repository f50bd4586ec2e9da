package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/tidenote/internal/logger"
)

// tomlDocument is the on-disk layout: one table per value type.
type tomlDocument struct {
	Strings map[string]string `toml:"strings"`
	Ints    map[string]int64  `toml:"ints"`
}

// TOMLStore keeps preferences in a TOML file, rewritten atomically on Commit.
type TOMLStore struct {
	path string
	doc  tomlDocument
}

var _ Store = (*TOMLStore)(nil)

// OpenTOML loads path if it exists; a missing file is an empty store.
func OpenTOML(path string) (*TOMLStore, error) {
	if path == "" {
		return nil, errors.New("toml preferences need a file path")
	}
	s := &TOMLStore{
		path: path,
		doc:  tomlDocument{Strings: map[string]string{}, Ints: map[string]int64{}},
	}

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		logger.Debugf("Prefs: '%s' not found, starting empty", path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error checking preferences file '%s': %w", path, err)
	}

	metadata, err := toml.DecodeFile(path, &s.doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse preferences file '%s': %w", path, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Prefs: '%s' has unrecognized keys: %v", path, undecoded)
	}
	if s.doc.Strings == nil {
		s.doc.Strings = map[string]string{}
	}
	if s.doc.Ints == nil {
		s.doc.Ints = map[string]int64{}
	}
	logger.Debugf("Prefs: Loaded %d strings and %d ints from '%s'", len(s.doc.Strings), len(s.doc.Ints), path)
	return s, nil
}

func (s *TOMLStore) PutString(key, v string) {
	delete(s.doc.Ints, key)
	s.doc.Strings[key] = v
}

func (s *TOMLStore) PutInt(key string, v int) {
	delete(s.doc.Strings, key)
	s.doc.Ints[key] = int64(v)
}

func (s *TOMLStore) GetString(key string) (string, bool) {
	v, ok := s.doc.Strings[key]
	return v, ok
}

func (s *TOMLStore) GetInt(key string) (int, bool) {
	v, ok := s.doc.Ints[key]
	return int(v), ok
}

func (s *TOMLStore) Remove(key string) {
	delete(s.doc.Strings, key)
	delete(s.doc.Ints, key)
}

// Commit writes the whole document to a temp file and renames it into place.
func (s *TOMLStore) Commit() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create '%s': %w", tmp, err)
	}
	if err := toml.NewEncoder(f).Encode(s.doc); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write '%s': %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace '%s': %w", s.path, err)
	}
	logger.Debugf("Prefs: Committed %d keys to '%s'", len(s.doc.Strings)+len(s.doc.Ints), s.path)
	return nil
}

func (s *TOMLStore) Close() error { return nil }
