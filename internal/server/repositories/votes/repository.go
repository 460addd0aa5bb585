package votes

import (
	"context"

	"github.com/dmitrijs2005/sondage/internal/server/models"
)

// Repository stores votes. A user may hold at most one vote: a second Create
// for the same UserID fails with common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, vote *models.Vote) (*models.Vote, error)
	// List returns every vote, newest first.
	List(ctx context.Context) ([]models.Vote, error)
}
