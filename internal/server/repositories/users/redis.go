package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sondage/internal/common"
	"github.com/dmitrijs2005/sondage/internal/server/models"
	"github.com/mitchellh/mapstructure"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "user:"

// RedisRepository keeps one hash per user under "user:<id>".
//
// The "id" field is claimed first with HSETNX; the other fields follow. A
// hash without an email is treated as not yet created.
type RedisRepository struct {
	rdb redis.Cmdable
}

func NewRedisRepository(rdb redis.Cmdable) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

func key(id string) string { return keyPrefix + id }

func (r *RedisRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	k := key(user.ID)

	ok, err := r.rdb.HSetNX(ctx, k, "id", user.ID).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if !ok {
		return nil, common.ErrorAlreadyExists
	}

	if err := r.rdb.HSet(ctx, k, "pseudo", user.Pseudo, "email", user.Email).Err(); err != nil {
		_ = r.rdb.Del(ctx, k).Err()
		return nil, fmt.Errorf("redis error: %w", err)
	}

	return user, nil
}

func (r *RedisRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	data, err := r.rdb.HGetAll(ctx, key(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if data["email"] == "" {
		return nil, common.ErrorNotFound
	}

	user := &models.User{}
	if err := mapstructure.Decode(data, user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return user, nil
}
