package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/sondage/internal/server/models"
	"github.com/dmitrijs2005/sondage/internal/server/repositories/users"
	"github.com/dmitrijs2005/sondage/internal/server/repositories/votes"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func stubGoose(t *testing.T, fn func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) {
	t.Helper()
	orig := gooseUpContext
	gooseUpContext = fn
	t.Cleanup(func() { gooseUpContext = orig })
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	})

	if err := RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestNewPostgresRepositoryManager_MigrationError(t *testing.T) {
	db, mock := newDB(t)
	mock.ExpectClose()

	stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	})

	_, err := NewPostgresRepositoryManager(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	require.NoError(t, mock.ExpectationsWereMet(), "db is closed on failure")
}

func newManager(t *testing.T) (*PostgresRepositoryManager, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newDB(t)
	stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error { return nil })

	m, err := NewPostgresRepositoryManager(context.Background(), db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m, mock
}

func TestPostgresFactories(t *testing.T) {
	m, _ := newManager(t)

	var _ RepositoryManager = m
	assert.IsType(t, &users.PostgresRepository{}, m.Users())
	assert.IsType(t, &votes.PostgresRepository{}, m.Votes())
}

func TestWithinTx_Commit(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, pseudo, email FROM users`).
		WithArgs("a@b.co").
		WillReturnRows(sqlmock.NewRows([]string{"id", "pseudo", "email"}).AddRow("a@b.co", "al", "a@b.co"))
	mock.ExpectExec(`INSERT INTO votes`).
		WithArgs("v1", "a@b.co", "Oui", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := m.WithinTx(context.Background(), func(ctx context.Context, u users.Repository, v votes.Repository) error {
		if _, err := u.GetByID(ctx, "a@b.co"); err != nil {
			return err
		}
		_, err := v.Create(ctx, &models.Vote{ID: "v1", UserID: "a@b.co", Choice: "Oui", Timestamp: 5})
		return err
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_Rollback(t *testing.T) {
	m, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := m.WithinTx(context.Background(), func(ctx context.Context, u users.Repository, v votes.Repository) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}
