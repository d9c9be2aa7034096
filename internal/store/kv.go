package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// 持久化只依赖一个极简的键值能力：整份快照读写，没有增量协议。
// Redis 是默认实现；测试用内存假实现。
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// ErrKeyNotFound 表示键不存在（首次运行的正常情况，不是故障）。
var ErrKeyNotFound = errors.New("kv: key not found")

// RedisKV 用 Redis 实现键值能力。
type RedisKV struct {
	client *redis.Client
	prefix string
}

// NewRedisKV 构造 RedisKV；prefix 为空时键名原样使用。
func NewRedisKV(client *redis.Client, prefix string) *RedisKV {
	return &RedisKV{client: client, prefix: prefix}
}

func (kv *RedisKV) fullKey(key string) string {
	if kv.prefix == "" {
		return key
	}
	return kv.prefix + ":" + key
}

// Get 读取整份值；键不存在映射为 ErrKeyNotFound。
func (kv *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := kv.client.Get(ctx, kv.fullKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kv get %q: %w", key, err)
	}
	return data, nil
}

// Set 覆盖写整份值，不设过期。
func (kv *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	if err := kv.client.Set(ctx, kv.fullKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}
