package repomanager

import (
	"context"

	"github.com/dmitrijs2005/sondage/internal/server/repositories/users"
	"github.com/dmitrijs2005/sondage/internal/server/repositories/votes"
)

type MemoryRepositoryManager struct {
	users *users.MemoryRepository
	votes *votes.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users: users.NewMemoryRepository(),
		votes: votes.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository { return m.users }
func (m *MemoryRepositoryManager) Votes() votes.Repository { return m.votes }

func (m *MemoryRepositoryManager) WithinTx(ctx context.Context, fn TxFunc) error {
	return fn(ctx, m.users, m.votes)
}

func (m *MemoryRepositoryManager) Close() error { return nil }
