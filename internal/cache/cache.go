package cache

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Key - структурированный ключ запроса: путь эндпоинта плюс параметры фильтра
type Key struct {
	Path   string
	Params map[string]string
}

// NewKey создаёт ключ без параметров
func NewKey(path string) Key {
	return Key{Path: path}
}

// WithParam возвращает копию ключа с добавленным параметром
func (k Key) WithParam(name, value string) Key {
	params := make(map[string]string, len(k.Params)+1)
	for key, val := range k.Params {
		params[key] = val
	}
	params[name] = value
	return Key{Path: k.Path, Params: params}
}

// String - каноничная форма ключа, параметры в отсортированном порядке
func (k Key) String() string {
	if len(k.Params) == 0 {
		return k.Path
	}

	names := make([]string, 0, len(k.Params))
	for name := range k.Params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(k.Path)
	b.WriteByte('?')
	for i, name := range names {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(k.Params[name])
	}
	return b.String()
}

// Cache - типизированный кэш запросов с инвалидацией по ключам
type Cache interface {
	Get(key Key) (interface{}, bool)
	Put(key Key, value interface{}, ttl time.Duration)
	Invalidate(keys ...Key)
	InvalidatePath(path string)
	Clear()
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemory() Cache {
	return &memoryCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (c *memoryCache) Get(key Key) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.entries[key.String()]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key.String())
		c.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (c *memoryCache) Put(key Key, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key.String()] = entry{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
}

func (c *memoryCache) Invalidate(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		delete(c.entries, key.String())
	}
}

// InvalidatePath сбрасывает все варианты ключа с данным путём,
// независимо от параметров
func (c *memoryCache) InvalidatePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for stored := range c.entries {
		if stored == path || strings.HasPrefix(stored, path+"?") {
			delete(c.entries, stored)
		}
	}
}

func (c *memoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
}
