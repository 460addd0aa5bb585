package votes

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sondage/internal/common"
	"github.com/dmitrijs2005/sondage/internal/dbx"
	"github.com/dmitrijs2005/sondage/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, vote *models.Vote) (*models.Vote, error) {

	query :=
		`INSERT INTO votes (id, user_id, choice, ts)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, vote.ID, vote.UserID, vote.Choice, vote.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return nil, common.ErrorAlreadyExists
	}

	return vote, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Vote, error) {

	query :=
		`SELECT id, user_id, choice, ts FROM votes
		 ORDER BY ts DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	votes := make([]models.Vote, 0)
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.UserID, &v.Choice, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return votes, nil
}
