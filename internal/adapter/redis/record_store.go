// Package redis keeps the record book as one JSON document under a single
// redis key.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"agrofund/internal/config/configs"
	"agrofund/internal/core/domain"
)

// Connect initializes a Redis client from URL or host:port input.
func Connect(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(cfg.Addr, "redis://") || strings.HasPrefix(cfg.Addr, "rediss://") {
		opt, err := redis.ParseURL(cfg.Addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RecordStore implements port.RecordStore with WATCH/MULTI optimistic
// transactions on one key.
type RecordStore struct {
	client *redis.Client
	key    string
}

// NewRecordStore creates a store backed by client under key.
func NewRecordStore(client *redis.Client, key string) *RecordStore {
	return &RecordStore{client: client, key: key}
}

func (s *RecordStore) Load(ctx context.Context) (domain.Snapshot, error) {
	return s.get(ctx, s.client)
}

func (s *RecordStore) Save(ctx context.Context, snap domain.Snapshot) error {
	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := s.get(ctx, tx)
		if err != nil {
			return err
		}
		if current.Version != snap.Version {
			return domain.ErrStaleSnapshot
		}
		snap.Version++
		raw, err := json.Marshal(snap)
		if err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, s.key, raw, 0)
			return nil
		})
		return err
	}, s.key)
	if errors.Is(err, redis.TxFailedErr) {
		return domain.ErrStaleSnapshot
	}
	return err
}

// Close closes the redis client.
func (s *RecordStore) Close() error {
	return s.client.Close()
}

func (s *RecordStore) get(ctx context.Context, c getter) (domain.Snapshot, error) {
	raw, err := c.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.NewSnapshot(), nil
	}
	if err != nil {
		return domain.Snapshot{}, err
	}
	var snap domain.Snapshot
	if err = json.Unmarshal(raw, &snap); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	snap.Normalize()
	return snap, nil
}
