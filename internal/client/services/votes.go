package services

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/sondage/internal/client/client"
	"github.com/dmitrijs2005/sondage/internal/client/models"
	"github.com/dmitrijs2005/sondage/internal/logging"
)

// Board is the state behind the vote view: the vote list, the loading and
// submitting flags, and the current user's ballot.
//
// After Close, late responses are dropped instead of applied.
type Board struct {
	client   client.Client
	sessions SessionStore
	logger   logging.Logger

	loading    atomic.Bool
	submitting atomic.Bool
	closed     atomic.Bool

	mu    sync.RWMutex
	votes []models.Vote
}

func NewBoard(c client.Client, sessions SessionStore, logger logging.Logger) *Board {
	b := &Board{
		client:   c,
		sessions: sessions,
		logger:   logger.With("module", "votes"),
	}
	b.loading.Store(true)
	return b
}

// Load fetches all votes. A failure is logged and leaves the list empty.
func (b *Board) Load(ctx context.Context) {
	defer b.loading.Store(false)

	votes, err := b.client.ListVotes(ctx)
	if err != nil {
		b.logger.Error(ctx, "failed to fetch votes", "error", err)
		votes = nil
	}
	models.SortNewestFirst(votes)

	if b.closed.Load() {
		return
	}
	b.mu.Lock()
	b.votes = votes
	b.mu.Unlock()
}

func (b *Board) Loading() bool    { return b.loading.Load() }
func (b *Board) Submitting() bool { return b.submitting.Load() }

// Votes returns a copy of the list, newest first.
func (b *Board) Votes() []models.Vote {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]models.Vote, len(b.votes))
	copy(out, b.votes)
	return out
}

func (b *Board) Stats() models.Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return models.ComputeStats(b.votes)
}

// ExistingVote returns the vote of the session user, if any.
func (b *Board) ExistingVote(ctx context.Context) (models.Vote, bool) {
	u, ok := b.sessions.Get(ctx)
	if !ok {
		return models.Vote{}, false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return models.FindVote(b.votes, u.Email)
}

// Cast records choice for the session user and puts the new vote at the
// head of the list. Only one cast may be pending at a time.
func (b *Board) Cast(ctx context.Context, choice models.Choice) (*models.Vote, error) {
	u, ok := b.sessions.Get(ctx)
	if !ok {
		return nil, ErrNoSession
	}
	if _, voted := b.ExistingVote(ctx); voted {
		return nil, ErrAlreadyVoted
	}

	if !b.submitting.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer b.submitting.Store(false)

	v, err := b.client.CastVote(ctx, u.Email, choice)
	if err != nil {
		b.logger.Error(ctx, "failed to cast vote", "email", u.Email, "choice", choice, "error", err)
		return nil, err
	}

	if b.closed.Load() {
		return v, nil
	}
	b.mu.Lock()
	b.votes = models.PrependLatest(b.votes, *v)
	b.mu.Unlock()

	b.logger.Info(ctx, "vote cast", "email", u.Email, "choice", v.Choice)
	return v, nil
}

// Close detaches the board from its view.
func (b *Board) Close() { b.closed.Store(true) }

// Logout clears the session. It never fails from the user's point of view;
// a storage error is only logged.
func (b *Board) Logout(ctx context.Context) {
	if err := b.sessions.Clear(ctx); err != nil {
		b.logger.Error(ctx, "failed to clear session", "error", err)
	}
	b.Close()
}
