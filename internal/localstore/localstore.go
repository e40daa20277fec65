package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Ключи персистентного состояния клиента
const (
	KeyAuthToken = "auth_token"
	KeyAuthUser  = "auth_user"
)

// Storage - персистентное key-value хранилище клиента (аналог localStorage)
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
	Clear() error
}

const storageFileName = "session.json"

type fileStorage struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFileStorage открывает хранилище в каталоге dir, повреждённый файл отбрасывается
func NewFileStorage(dir string) (Storage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("ошибка создания каталога хранилища: %w", err)
	}

	s := &fileStorage{
		path:   filepath.Join(dir, storageFileName),
		values: make(map[string]string),
	}

	data, err := os.ReadFile(s.path)
	if err == nil {
		if err := json.Unmarshal(data, &s.values); err != nil {
			// повреждённое состояние равносильно пустому
			s.values = make(map[string]string)
		}
	}

	return s, nil
}

func (s *fileStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	return value, ok
}

func (s *fileStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return s.persist()
}

func (s *fileStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return s.persist()
}

func (s *fileStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]string)
	return s.persist()
}

func (s *fileStorage) persist() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("ошибка сериализации хранилища: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("ошибка записи хранилища: %w", err)
	}

	return nil
}
