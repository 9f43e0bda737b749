package tokenstore

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	token string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() (string, error) { return s.token, nil }

func (s *MemoryStore) Set(token string) error {
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	s.token = ""
	return nil
}
