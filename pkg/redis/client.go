package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options Redis 연결 옵션
type Options struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

const pingTimeout = 3 * time.Second

// NewClient Redis 클라이언트를 생성하고 ping으로 연결을 확인한다.
// ping 실패 시 클라이언트를 닫고 에러를 반환한다 — 호출자는 Redis 없이 계속 동작할 수 있다.
func NewClient(opts Options) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       opts.DB,
		PoolSize: opts.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis %s:%d: %w", opts.Host, opts.Port, err)
	}

	return client, nil
}
