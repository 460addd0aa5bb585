// Package repomanager builds the storage backend selected in the server
// configuration and hands out its repositories.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sondage/internal/common"
	"github.com/dmitrijs2005/sondage/internal/server/config"
	"github.com/dmitrijs2005/sondage/internal/server/repositories/users"
	"github.com/dmitrijs2005/sondage/internal/server/repositories/votes"
	"github.com/redis/go-redis/v9"
)

// TxFunc receives repositories bound to one unit of work.
type TxFunc func(ctx context.Context, users users.Repository, votes votes.Repository) error

type RepositoryManager interface {
	Users() users.Repository
	Votes() votes.Repository
	// WithinTx runs fn in a transaction where the backend has them; other
	// backends run fn directly against their repositories.
	WithinTx(ctx context.Context, fn TxFunc) error
	Close() error
}

// New connects to the backend named by cfg.Storage.
func New(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return NewMemoryRepositoryManager(), nil

	case config.StoragePostgres:
		db, err := openPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return NewPostgresRepositoryManager(ctx, db)

	case config.StorageRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return NewRedisRepositoryManager(ctx, rdb)
	}

	return nil, fmt.Errorf("%w: %q", common.ErrorUnknownStorage, cfg.Storage)
}
