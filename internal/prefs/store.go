// Package prefs implements the key/value preferences store the editor saves
// its history into. Writes are staged until Commit.
package prefs

import (
	"fmt"
	"strings"
)

// Store is a typed string/int key/value store.
type Store interface {
	PutString(key, value string)
	PutInt(key string, value int)
	GetString(key string) (string, bool)
	GetInt(key string) (int, bool)
	Remove(key string)

	// Commit persists staged writes.
	Commit() error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendTOML   = "toml"
	BackendSQLite = "sqlite"
)

// Open creates a store for the named backend. path is ignored for memory.
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(backend) {
	case BackendMemory, "":
		return NewMemoryStore(), nil
	case BackendTOML:
		s, err := OpenTOML(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendSQLite:
		s, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown preferences backend '%s'", backend)
	}
}

// value is one staged or stored entry; exactly one of str/num is meaningful.
type value struct {
	isInt bool
	str   string
	num   int
	del   bool
}
