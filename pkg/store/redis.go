package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis"
	"go.uber.org/zap"

	"github.com/mfcardoso/soure-transport/pkg/core/model"
)

const snapshotKey = "soure-transport:snapshot"

// RedisStore keeps the snapshot as a single JSON value under one key.
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisStore(addr, password string, db int, logger *zap.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping().Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &RedisStore{client: client, logger: logger}, nil
}

func (s *RedisStore) Load(ctx context.Context) (*model.Snapshot, error) {
	raw, err := s.client.Get(snapshotKey).Result()
	if err == redis.Nil {
		s.logger.Info("no snapshot found, seeding initial data")
		seed := SeedSnapshot()
		if err := s.save(seed); err != nil {
			return nil, err
		}
		return seed, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	snapshot := &model.Snapshot{}
	if err := json.Unmarshal([]byte(raw), snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return normalize(snapshot), nil
}

func (s *RedisStore) save(snapshot *model.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to serialise snapshot: %w", err)
	}
	if err := s.client.Set(snapshotKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}
	return nil
}

// mutate loads the current snapshot, applies fn and writes it back.
func (s *RedisStore) mutate(ctx context.Context, fn func(*model.Snapshot)) error {
	snapshot, err := s.Load(ctx)
	if err != nil {
		return err
	}
	fn(snapshot)
	return s.save(snapshot)
}

func (s *RedisStore) ReplaceDrivers(ctx context.Context, drivers []model.Driver) error {
	return s.mutate(ctx, func(snap *model.Snapshot) { snap.Drivers = drivers })
}

func (s *RedisStore) ReplaceBuses(ctx context.Context, buses []model.Bus) error {
	return s.mutate(ctx, func(snap *model.Snapshot) { snap.Buses = buses })
}

func (s *RedisStore) ReplaceRequests(ctx context.Context, requests []model.BusRequest) error {
	return s.mutate(ctx, func(snap *model.Snapshot) { snap.Requests = requests })
}

func (s *RedisStore) ReplaceUnavailabilities(ctx context.Context, unavailabilities []model.Unavailability) error {
	return s.mutate(ctx, func(snap *model.Snapshot) { snap.Unavailabilities = unavailabilities })
}

func (s *RedisStore) ReplaceEntities(ctx context.Context, entities []model.Entity) error {
	return s.mutate(ctx, func(snap *model.Snapshot) { snap.Entities = entities })
}

func (s *RedisStore) ReplaceShifts(ctx context.Context, shifts []model.Shift) error {
	return s.mutate(ctx, func(snap *model.Snapshot) { snap.Shifts = shifts })
}
