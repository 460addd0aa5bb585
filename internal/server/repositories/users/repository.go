package users

import (
	"context"

	"github.com/dmitrijs2005/sondage/internal/server/models"
)

// Repository stores users keyed by ID.
//
// Create fails with common.ErrorAlreadyExists when the ID is taken;
// GetByID fails with common.ErrorNotFound when it is unknown.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
