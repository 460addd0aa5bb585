package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/sondage/internal/common"
	"github.com/dmitrijs2005/sondage/internal/logging"
	"github.com/dmitrijs2005/sondage/internal/server/models"
	"github.com/dmitrijs2005/sondage/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVoteFixture(t *testing.T) (*UserService, *VoteService) {
	t.Helper()
	m := repomanager.NewMemoryRepositoryManager()
	us := NewUserService(m, logging.Discard())
	vs := NewVoteService(m, logging.Discard())

	_, err := us.Register(context.Background(), "alice", "a@b.co")
	require.NoError(t, err)
	return us, vs
}

func TestVoteService_Cast(t *testing.T) {
	_, vs := newVoteFixture(t)
	vs.now = func() time.Time { return time.Unix(1700000000, 0) }

	v, err := vs.Cast(context.Background(), "a@b.co", models.ChoiceOui)
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", v.UserID)
	assert.Equal(t, models.ChoiceOui, v.Choice)
	assert.Equal(t, int64(1700000000), v.Timestamp)
	_, perr := uuid.Parse(v.ID)
	assert.NoError(t, perr, "id is a UUID")

	_, err = vs.Cast(context.Background(), "a@b.co", models.ChoiceNon)
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	list, err := vs.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestVoteService_Cast_Validation(t *testing.T) {
	_, vs := newVoteFixture(t)

	for _, c := range []struct{ user, choice string }{
		{"", models.ChoiceOui},
		{"a@b.co", "oui"},
		{"a@b.co", "Peut-être"},
	} {
		_, err := vs.Cast(context.Background(), c.user, c.choice)
		assert.ErrorIs(t, err, common.ErrorValidation, "%+v", c)
	}
}

func TestVoteService_Cast_UnknownUser(t *testing.T) {
	_, vs := newVoteFixture(t)

	_, err := vs.Cast(context.Background(), "ghost@example.com", models.ChoiceOui)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	list, err := vs.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

type failingManager struct {
	*repomanager.MemoryRepositoryManager
	err error
}

func (f failingManager) WithinTx(ctx context.Context, fn repomanager.TxFunc) error { return f.err }

func TestVoteService_Cast_StorageError(t *testing.T) {
	boom := errors.New("boom")
	vs := NewVoteService(failingManager{repomanager.NewMemoryRepositoryManager(), boom}, logging.Discard())

	_, err := vs.Cast(context.Background(), "a@b.co", models.ChoiceNon)
	assert.ErrorIs(t, err, boom)
}
