package summary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

const (
	keyPrefix = "slots:summary:"

	// DefaultTTL время жизни закешированной сводки
	DefaultTTL = 10 * time.Minute

	// invalidateTimeout ограничивает сброс версии, который не зависит от отмены запроса
	invalidateTimeout = 2 * time.Second
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Cache кеш сводок доступности в Redis.
// Ключи сводок включают версию мастера; любое изменение его слотов увеличивает версию,
// и старые записи перестают читаться (и истекают по TTL).
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger Logger
}

// NewCache создает кеш; ttl <= 0 заменяется на DefaultTTL
func NewCache(client *redis.Client, ttl time.Duration, logger Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl, logger: logger}
}

// Version возвращает текущую версию сводок мастера (0, если изменений еще не было)
func (c *Cache) Version(ctx context.Context, merchantID int64) (int64, error) {
	version, err := c.client.Get(ctx, versionKey(merchantID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("summary: get version: %w", err)
	}
	return version, nil
}

// Get читает сводку; ok = false при промахе
func (c *Cache) Get(ctx context.Context, merchantID, version int64, from, to types.Date) (domain.AvailabilitySummary, bool, error) {
	raw, err := c.client.Get(ctx, dataKey(merchantID, version, from, to)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("summary: get: %w", err)
	}

	var summary domain.AvailabilitySummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, false, fmt.Errorf("summary: decode: %w", err)
	}
	return summary, true, nil
}

// Set сохраняет сводку, посчитанную при версии version
func (c *Cache) Set(ctx context.Context, merchantID, version int64, from, to types.Date, summary domain.AvailabilitySummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("summary: encode: %w", err)
	}
	if err := c.client.Set(ctx, dataKey(merchantID, version, from, to), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("summary: set: %w", err)
	}
	return nil
}

// Invalidate делает все сводки мастера устаревшими
func (c *Cache) Invalidate(ctx context.Context, merchantID int64) error {
	if err := c.client.Incr(ctx, versionKey(merchantID)).Err(); err != nil {
		return fmt.Errorf("summary: bump version: %w", err)
	}
	return nil
}

// Notify сбрасывает сводки мастера по событию его слота.
// Событие приходит после коммита, поэтому отмена запроса клиентом не должна оставить старую сводку.
func (c *Cache) Notify(ctx context.Context, event domain.SlotEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), invalidateTimeout)
	defer cancel()

	if err := c.Invalidate(ctx, event.MerchantID); err != nil {
		c.logger.Warn("summary.Cache: failed to invalidate merchant=%d after %s: %v", event.MerchantID, event.Type, err)
	}
}

func versionKey(merchantID int64) string {
	return fmt.Sprintf("%sver:%d", keyPrefix, merchantID)
}

func dataKey(merchantID, version int64, from, to types.Date) string {
	return fmt.Sprintf("%s%d:v%d:%s:%s", keyPrefix, merchantID, version, from, to)
}
