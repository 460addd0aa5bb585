package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/sondage/internal/client/models"
)

// fakeClient implements client.Client. When block is non-nil every call
// waits on it before returning, which lets tests hold a request in flight.
type fakeClient struct {
	mu    sync.Mutex
	calls int

	block   chan struct{}
	started chan struct{}

	user  *models.User
	votes []models.Vote
	vote  *models.Vote
	err   error

	lastEmail  string
	lastPseudo string
	lastChoice models.Choice
}

func (f *fakeClient) enter() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
}

func (f *fakeClient) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeClient) Login(ctx context.Context, email string) (*models.User, error) {
	f.lastEmail = email
	f.enter()
	return f.user, f.err
}

func (f *fakeClient) Register(ctx context.Context, pseudo, email string) (*models.User, error) {
	f.lastPseudo, f.lastEmail = pseudo, email
	f.enter()
	return f.user, f.err
}

func (f *fakeClient) ListVotes(ctx context.Context) ([]models.Vote, error) {
	f.enter()
	return f.votes, f.err
}

func (f *fakeClient) CastVote(ctx context.Context, userID string, choice models.Choice) (*models.Vote, error) {
	f.lastEmail, f.lastChoice = userID, choice
	f.enter()
	return f.vote, f.err
}

type fakeSessions struct {
	mu       sync.Mutex
	user     *models.User
	setErr   error
	clearErr error
}

func (s *fakeSessions) Get(ctx context.Context) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.user != nil
}

func (s *fakeSessions) Set(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.user = u
	return nil
}

func (s *fakeSessions) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return s.clearErr
}
