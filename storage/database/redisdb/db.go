package redisdb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/campusdesk/portal/core"
	"github.com/campusdesk/portal/core/record"
)

// DB stores each record as a plain Redis string.
type DB struct {
	client *redis.Client
}

var _ record.Store = (*DB)(nil) // interface compliance check

// Open connects to the configured Redis server and waits until it answers.
func Open(ctx context.Context, conf *core.Config) (*DB, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Store.RedisAddr,
		Password: conf.Store.RedisPassword,
		DB:       conf.Store.RedisDB,
	})
	if err := ping(ctx, client, 10); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &DB{client: client}, nil
}

// New wraps an existing client.
func New(client *redis.Client) *DB {
	return &DB{client: client}
}

// ping waits for the server to be ready. Waits 100ms longer between each attempt.
func ping(ctx context.Context, client *redis.Client, maxAttempts int) error {
	var err error
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = client.Ping(ctx).Err(); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "redis ping")
		case <-time.After(time.Duration(attempts) * 100 * time.Millisecond):
		}
	}
	return errors.Wrap(err, "redis ping timeout")
}

func (db *DB) Read(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := db.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get")
	}
	return val, true, nil
}

func (db *DB) Write(ctx context.Context, key string, value []byte) error {
	if err := db.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}
	return nil
}

func (db *DB) Remove(ctx context.Context, key string) error {
	if err := db.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "redis del")
	}
	return nil
}

func (db *DB) Close() error {
	return db.client.Close()
}
