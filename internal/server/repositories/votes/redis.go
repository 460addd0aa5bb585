package votes

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/sondage/internal/common"
	"github.com/dmitrijs2005/sondage/internal/server/models"
	"github.com/mitchellh/mapstructure"
	"github.com/redis/go-redis/v9"
)

const (
	indexKey      = "votes"
	voteKeyPrefix = "vote:"
	userKeyPrefix = "vote:user:"
)

// RedisRepository stores each vote as a hash "vote:<id>", indexed by
// timestamp in the sorted set "votes". The key "vote:user:<userId>" holds
// the id of the user's vote and is claimed with SETNX.
//
// A vote becomes visible to List only once it is in the index, which is
// written last.
type RedisRepository struct {
	rdb redis.Cmdable
}

func NewRedisRepository(rdb redis.Cmdable) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

func (r *RedisRepository) Create(ctx context.Context, vote *models.Vote) (*models.Vote, error) {
	claim := userKeyPrefix + vote.UserID

	ok, err := r.rdb.SetNX(ctx, claim, vote.ID, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if !ok {
		return nil, common.ErrorAlreadyExists
	}

	k := voteKeyPrefix + vote.ID
	err = r.rdb.HSet(ctx, k,
		"id", vote.ID,
		"user_id", vote.UserID,
		"choice", vote.Choice,
		"ts", strconv.FormatInt(vote.Timestamp, 10),
	).Err()
	if err == nil {
		err = r.rdb.ZAdd(ctx, indexKey, redis.Z{Score: float64(vote.Timestamp), Member: vote.ID}).Err()
	}
	if err != nil {
		_ = r.rdb.Del(ctx, k, claim).Err()
		return nil, fmt.Errorf("redis error: %w", err)
	}

	return vote, nil
}

func (r *RedisRepository) List(ctx context.Context) ([]models.Vote, error) {
	ids, err := r.rdb.ZRevRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}

	votes := make([]models.Vote, 0, len(ids))
	for _, id := range ids {
		data, err := r.rdb.HGetAll(ctx, voteKeyPrefix+id).Result()
		if err != nil {
			return nil, fmt.Errorf("redis error: %w", err)
		}
		if len(data) == 0 {
			continue
		}

		v, err := decodeVote(data)
		if err != nil {
			return nil, err
		}
		votes = append(votes, v)
	}

	return votes, nil
}

// decodeVote converts a hash into a Vote; "ts" arrives as a string.
func decodeVote(data map[string]string) (models.Vote, error) {
	var v models.Vote
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &v,
	})
	if err != nil {
		return v, err
	}
	if err := dec.Decode(data); err != nil {
		return v, fmt.Errorf("decode vote: %w", err)
	}
	return v, nil
}
