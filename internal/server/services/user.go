// Package services contains server-side business logic on top of the
// repositories: user registration and lookup, and vote casting.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sondage/internal/common"
	"github.com/dmitrijs2005/sondage/internal/logging"
	"github.com/dmitrijs2005/sondage/internal/server/models"
	"github.com/dmitrijs2005/sondage/internal/server/repositories/repomanager"
)

type UserService struct {
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewUserService(m repomanager.RepositoryManager, logger logging.Logger) *UserService {
	return &UserService{repomanager: m, logger: logger.With("module", "users")}
}

// Register creates a user whose ID is its email. An existing email yields
// common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, pseudo, email string) (*models.User, error) {
	pseudo, email = strings.TrimSpace(pseudo), strings.TrimSpace(email)
	if pseudo == "" || email == "" {
		return nil, fmt.Errorf("%w: pseudo and email are required", common.ErrorValidation)
	}

	user, err := s.repomanager.Users().Create(ctx, &models.User{ID: email, Pseudo: pseudo, Email: email})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "email", email)
	return user, nil
}

// Login returns the user registered under email, or common.ErrorNotFound.
func (s *UserService) Login(ctx context.Context, email string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrorValidation)
	}
	return s.repomanager.Users().GetByID(ctx, email)
}
