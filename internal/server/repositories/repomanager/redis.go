package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sondage/internal/server/repositories/users"
	"github.com/dmitrijs2005/sondage/internal/server/repositories/votes"
	"github.com/redis/go-redis/v9"
)

type RedisRepositoryManager struct {
	rdb   *redis.Client
	users *users.RedisRepository
	votes *votes.RedisRepository
}

// NewRedisRepositoryManager checks the connection and wraps rdb. The
// manager owns rdb from then on.
func NewRedisRepositoryManager(ctx context.Context, rdb *redis.Client) (*RedisRepositoryManager, error) {
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping error: %w", err)
	}
	return &RedisRepositoryManager{
		rdb:   rdb,
		users: users.NewRedisRepository(rdb),
		votes: votes.NewRedisRepository(rdb),
	}, nil
}

func (m *RedisRepositoryManager) Users() users.Repository { return m.users }
func (m *RedisRepositoryManager) Votes() votes.Repository { return m.votes }

func (m *RedisRepositoryManager) WithinTx(ctx context.Context, fn TxFunc) error {
	return fn(ctx, m.users, m.votes)
}

func (m *RedisRepositoryManager) Close() error {
	return m.rdb.Close()
}
