package client

import (
	"context"

	"github.com/dmitrijs2005/sondage/internal/client/models"
)

// Client is the backend API used by the authentication and voting flows.
type Client interface {
	Login(ctx context.Context, email string) (*models.User, error)
	Register(ctx context.Context, pseudo, email string) (*models.User, error)
	ListVotes(ctx context.Context) ([]models.Vote, error)
	CastVote(ctx context.Context, userID string, choice models.Choice) (*models.Vote, error)
}
