package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sondage/internal/common"
	"github.com/dmitrijs2005/sondage/internal/logging"
	"github.com/dmitrijs2005/sondage/internal/server/models"
	"github.com/dmitrijs2005/sondage/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sondage/internal/server/repositories/users"
	"github.com/dmitrijs2005/sondage/internal/server/repositories/votes"
	"github.com/google/uuid"
)

type VoteService struct {
	repomanager repomanager.RepositoryManager
	logger      logging.Logger

	now   func() time.Time
	newID func() string
}

func NewVoteService(m repomanager.RepositoryManager, logger logging.Logger) *VoteService {
	return &VoteService{
		repomanager: m,
		logger:      logger.With("module", "votes"),
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Cast records choice for userID. The user must exist
// (common.ErrorNotFound) and must not have voted yet
// (common.ErrorAlreadyExists).
func (s *VoteService) Cast(ctx context.Context, userID, choice string) (*models.Vote, error) {
	if userID == "" || !models.ValidChoice(choice) {
		return nil, fmt.Errorf("%w: missing parameters or invalid choice", common.ErrorValidation)
	}

	vote := &models.Vote{
		ID:        s.newID(),
		UserID:    userID,
		Choice:    choice,
		Timestamp: s.now().Unix(),
	}

	err := s.repomanager.WithinTx(ctx, func(ctx context.Context, ur users.Repository, vr votes.Repository) error {
		if _, err := ur.GetByID(ctx, userID); err != nil {
			return err
		}
		_, err := vr.Create(ctx, vote)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "vote recorded", "user_id", userID, "choice", choice)
	return vote, nil
}

// List returns all votes, newest first.
func (s *VoteService) List(ctx context.Context) ([]models.Vote, error) {
	return s.repomanager.Votes().List(ctx)
}
