package session

import (
	"context"

	"github.com/dmitrijs2005/sondage/internal/client/models"
)

// Reader is the read side of the session used by guards and views.
type Reader interface {
	Get(ctx context.Context) (*models.User, bool)
}

// Guard decides whether a protected view may render. It only checks that a
// session exists locally; the backend is never asked.
type Guard struct {
	sessions Reader
}

func NewGuard(sessions Reader) *Guard {
	return &Guard{sessions: sessions}
}

func (g *Guard) Allow(ctx context.Context) bool {
	_, ok := g.sessions.Get(ctx)
	return ok
}
