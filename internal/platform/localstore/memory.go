package localstore

import "sync"

// MemoryKV is the ephemeral store, scoped to the process lifetime
// (the sessionStorage analog). Zero value is not usable; call NewMemory.
type MemoryKV struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemory() *MemoryKV {
	return &MemoryKV{m: make(map[string]string)}
}

func (s *MemoryKV) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *MemoryKV) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *MemoryKV) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}
