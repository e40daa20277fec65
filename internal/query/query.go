package query

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"solidaire/internal/cache"
)

// Client связывает кэш и удалённые вызовы: чтение через кэш,
// мутация с инвалидацией зависимых ключей при успехе.
type Client struct {
	cache  cache.Cache
	ttl    time.Duration
	logger zerolog.Logger
}

func NewClient(c cache.Cache, ttl time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// Fetch возвращает свежее закэшированное значение или выполняет fetch и
// заполняет кэш. Поздний ответ по отменённому контексту в кэш не попадает:
// время жизни запроса привязано к странице, которая его запустила.
func Fetch[T any](ctx context.Context, c *Client, key cache.Key, fetch func(context.Context) (T, error)) (T, error) {
	if cached, ok := c.cache.Get(key); ok {
		if value, ok := cached.(T); ok {
			return value, nil
		}
	}

	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if ctx.Err() != nil {
		var zero T
		return zero, ctx.Err()
	}

	c.cache.Put(key, value, c.ttl)
	c.logger.Debug().Str("key", key.String()).Msg("кэш запроса заполнен")
	return value, nil
}

// Mutate выполняет мутацию и при успехе инвалидирует перечисленные ключи
func (c *Client) Mutate(ctx context.Context, invalidate []cache.Key, mutate func(context.Context) error) error {
	if err := mutate(ctx); err != nil {
		return err
	}

	c.cache.Invalidate(invalidate...)
	for _, key := range invalidate {
		c.logger.Debug().Str("key", key.String()).Msg("ключ кэша инвалидирован")
	}
	return nil
}

func (c *Client) Invalidate(keys ...cache.Key) {
	c.cache.Invalidate(keys...)
}

func (c *Client) InvalidatePath(path string) {
	c.cache.InvalidatePath(path)
}
