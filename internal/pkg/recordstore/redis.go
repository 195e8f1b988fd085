package recordstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
)

const DefaultKeyPrefix = "flight"

type RedisClient interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	LLen(ctx context.Context, key string) *redis.IntCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

// RedisStore keeps one Redis list of JSON records per kind. Appends are
// durable as soon as they return.
type RedisStore struct {
	redis  RedisClient
	prefix string
}

func NewRedisStore(redis RedisClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &RedisStore{
		redis:  redis,
		prefix: prefix,
	}
}

// GetListKey returns the list key for kind, e.g. "flight:chegadas".
func (s *RedisStore) GetListKey(kind dto.RecordKind) string {
	if kind == dto.KindDeparture {
		return s.prefix + ":partidas"
	}

	return s.prefix + ":chegadas"
}

// AppendBatch pushes arrivals then departures. The two lists are not
// updated atomically.
func (s *RedisStore) AppendBatch(ctx context.Context, arrivals, departures []dto.FlightRecord) error {
	if err := s.push(ctx, dto.KindArrival, arrivals); err != nil {
		return err
	}

	return s.push(ctx, dto.KindDeparture, departures)
}

func (s *RedisStore) push(ctx context.Context, kind dto.RecordKind, records []dto.FlightRecord) error {
	if len(records) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(records))
	for _, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", kind, err)
		}
		values = append(values, string(data))
	}

	if err := s.redis.RPush(ctx, s.GetListKey(kind), values...).Err(); err != nil {
		return fmt.Errorf("failed to push %s: %w", kind, err)
	}

	return nil
}

func (s *RedisStore) Len(ctx context.Context, kind dto.RecordKind) (int, error) {
	if err := checkKind(kind); err != nil {
		return 0, err
	}

	n, err := s.redis.LLen(ctx, s.GetListKey(kind)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", kind, err)
	}

	return int(n), nil
}

func (s *RedisStore) List(ctx context.Context, kind dto.RecordKind) ([]dto.FlightRecord, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}

	values, err := s.redis.LRange(ctx, s.GetListKey(kind), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}

	records := make([]dto.FlightRecord, 0, len(values))
	for _, value := range values {
		var record dto.FlightRecord
		if err := json.Unmarshal([]byte(value), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", kind, err)
		}
		records = append(records, record)
	}

	return records, nil
}

func (s *RedisStore) Save(context.Context) error {
	return nil
}
