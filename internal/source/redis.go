package source

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/redis/go-redis/v9"

	"github.com/seojun-lee/fob/pkg/record"
)

// RedisSource reads JSON documents staged in a Redis list and emits them as
// records, preserving list order. Useful for scripted inspection of object
// sets produced by other tooling.
type RedisSource struct {
	client *redis.Client
	key    string
	seq    atomic.Uint64
}

// NewRedisSource creates a source reading the list stored at key.
func NewRedisSource(addr, key string) *RedisSource {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisSource{
		client: rdb,
		key:    key,
	}
}

// Name returns the source identifier.
func (s *RedisSource) Name() string {
	return fmt.Sprintf("redis:%s", s.key)
}

// Start fetches the list and returns a channel of records.
// A missing key yields an empty stream, not an error.
func (s *RedisSource) Start(ctx context.Context) (<-chan record.Record, error) {
	vals, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange %s: %w", s.key, err)
	}

	ch := make(chan record.Record, 256)

	go func() {
		defer close(ch)
		defer s.client.Close()

		for _, v := range vals {
			select {
			case <-ctx.Done():
				return
			default:
			}

			r := recordFromLine(v, nil)
			r.Source = s.Name()
			r.Seq = s.seq.Add(1)
			ch <- r
		}
	}()

	return ch, nil
}
