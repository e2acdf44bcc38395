package calendar

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/artemkls/HMS-BookingService/internal/domain"
)

// cacheKey единственный документ конфигурации - единственный ключ
const cacheKey = "hms:calendar_config"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// ConfigStore интерфейс хранилища конфигурации (реализуется репозиторием)
type ConfigStore interface {
	Get(ctx context.Context) (*domain.CalendarConfig, error)
	Put(ctx context.Context, cfg *domain.CalendarConfig) (*domain.CalendarConfig, error)
}

// CachedStore read-through кэш документа конфигурации поверх Postgres.
// Конфигурация читается на каждый запрос доступности, а меняется редко,
// поэтому держим её в Redis с коротким TTL и сбрасываем при записи.
//
// Ошибки Redis не фатальны: кэш деградирует до прямых чтений из БД.
type CachedStore struct {
	store  ConfigStore
	client *redis.Client
	ttl    time.Duration
	logger Logger
}

// NewCachedStore создает кэширующую обертку над хранилищем конфигурации
func NewCachedStore(store ConfigStore, client *redis.Client, ttl time.Duration, logger Logger) *CachedStore {
	return &CachedStore{
		store:  store,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get возвращает конфигурацию из кэша, при промахе - из БД с прогревом кэша
func (c *CachedStore) Get(ctx context.Context) (*domain.CalendarConfig, error) {
	payload, err := c.client.Get(ctx, cacheKey).Bytes()
	if err == nil {
		var cfg domain.CalendarConfig
		if err := json.Unmarshal(payload, &cfg); err == nil {
			return &cfg, nil
		}
		// Битое значение в кэше - игнорируем и перечитываем из БД
		c.logger.Warn("calendar cache: corrupted payload, falling back to database")
	} else if err != redis.Nil {
		c.logger.Warn("calendar cache: redis get failed: %v", err)
	}

	cfg, err := c.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	c.warm(ctx, cfg)
	return cfg, nil
}

// Put записывает конфигурацию в БД и сбрасывает кэш
func (c *CachedStore) Put(ctx context.Context, cfg *domain.CalendarConfig) (*domain.CalendarConfig, error) {
	saved, err := c.store.Put(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Инвалидация вместо перезаписи: следующий читатель прогреет кэш
	// уже закоммиченным значением
	if err := c.client.Del(ctx, cacheKey).Err(); err != nil {
		c.logger.Warn("calendar cache: redis del failed: %v", err)
	}

	return saved, nil
}

func (c *CachedStore) warm(ctx context.Context, cfg *domain.CalendarConfig) {
	payload, err := json.Marshal(cfg)
	if err != nil {
		c.logger.Warn("calendar cache: failed to encode config: %v", err)
		return
	}
	if err := c.client.Set(ctx, cacheKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("calendar cache: redis set failed: %v", err)
	}
}
