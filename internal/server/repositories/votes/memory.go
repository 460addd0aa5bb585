package votes

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/sondage/internal/common"
	"github.com/dmitrijs2005/sondage/internal/server/models"
)

type MemoryRepository struct {
	mu     sync.RWMutex
	votes  []models.Vote
	byUser map[string]struct{}
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byUser: make(map[string]struct{})}
}

func (r *MemoryRepository) Create(ctx context.Context, vote *models.Vote) (*models.Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUser[vote.UserID]; ok {
		return nil, common.ErrorAlreadyExists
	}
	r.byUser[vote.UserID] = struct{}{}
	r.votes = append(r.votes, *vote)
	return vote, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.Vote, error) {
	r.mu.RLock()
	out := make([]models.Vote, len(r.votes))
	copy(out, r.votes)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}
