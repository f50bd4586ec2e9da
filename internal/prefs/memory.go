package prefs

// MemoryStore keeps preferences for the life of the process only.
type MemoryStore struct {
	values map[string]value
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]value)}
}

func (m *MemoryStore) PutString(key, v string) { m.values[key] = value{str: v} }

func (m *MemoryStore) PutInt(key string, v int) { m.values[key] = value{isInt: true, num: v} }

func (m *MemoryStore) GetString(key string) (string, bool) {
	v, ok := m.values[key]
	if !ok || v.isInt {
		return "", false
	}
	return v.str, true
}

func (m *MemoryStore) GetInt(key string) (int, bool) {
	v, ok := m.values[key]
	if !ok || !v.isInt {
		return 0, false
	}
	return v.num, true
}

func (m *MemoryStore) Remove(key string) { delete(m.values, key) }

func (m *MemoryStore) Commit() error { return nil }

func (m *MemoryStore) Close() error { return nil }
