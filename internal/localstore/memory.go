package localstore

import "sync"

type memoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStorage - непересистентное хранилище для тестов
func NewMemoryStorage() Storage {
	return &memoryStorage{values: make(map[string]string)}
}

func (s *memoryStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	return value, ok
}

func (s *memoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *memoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

func (s *memoryStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]string)
	return nil
}
