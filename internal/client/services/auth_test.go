package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/sondage/internal/client/client"
	"github.com/dmitrijs2005/sondage/internal/client/models"
	"github.com/dmitrijs2005/sondage/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(fc *fakeClient, fs *fakeSessions) *AuthService {
	return NewAuthService(fc, fs, logging.Discard())
}

func TestLogin_InvalidEmail_NoRequest(t *testing.T) {
	for _, email := range []string{"", "   ", "not-an-email", "a@", "@b.co"} {
		fc := &fakeClient{}
		s := newAuth(fc, &fakeSessions{})

		_, err := s.Login(context.Background(), email)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "email %q", email)
		assert.NotEmpty(t, verr.Field("email"))
		assert.Zero(t, fc.Calls(), "email %q must not reach the network", email)
	}
}

func TestLogin_Success_StoresSession(t *testing.T) {
	u := &models.User{ID: "a@b.co", Pseudo: "al", Email: "a@b.co"}
	fc := &fakeClient{user: u}
	fs := &fakeSessions{}
	s := newAuth(fc, fs)

	got, err := s.Login(context.Background(), "  a@b.co ")
	require.NoError(t, err)
	assert.Equal(t, u, got)
	assert.Equal(t, "a@b.co", fc.lastEmail, "email is trimmed")
	assert.Equal(t, u, fs.user)
	assert.False(t, s.Loading())
	assert.Empty(t, s.LoginError())
}

func TestLogin_NotFound(t *testing.T) {
	fc := &fakeClient{err: &client.StatusError{Code: 404, Body: "whatever"}}
	fs := &fakeSessions{}
	s := newAuth(fc, fs)

	_, err := s.Login(context.Background(), "x@example.com")

	var aerr *AuthError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "user not found", aerr.Message)
	assert.ErrorIs(t, err, client.ErrNotFound)
	assert.Equal(t, "user not found", s.LoginError())
	assert.Nil(t, fs.user, "session stays unset")
	assert.False(t, s.Loading())
}

func TestLogin_OtherStatus(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&client.StatusError{Code: 500, Body: "db down"}, "db down"},
		{&client.StatusError{Code: 503}, "error 503"},
		{errors.New("dial tcp: refused"), "dial tcp: refused"},
		{errors.New(""), "login error"},
	}
	for _, c := range cases {
		s := newAuth(&fakeClient{err: c.err}, &fakeSessions{})
		_, err := s.Login(context.Background(), "a@b.co")
		require.Error(t, err)
		assert.Equal(t, c.want, s.LoginError())
	}
}

func TestLogin_SessionWriteFailure(t *testing.T) {
	fc := &fakeClient{user: &models.User{Email: "a@b.co"}}
	fs := &fakeSessions{setErr: errors.New("disk full")}
	s := newAuth(fc, fs)

	_, err := s.Login(context.Background(), "a@b.co")
	require.Error(t, err)
	assert.Equal(t, "disk full", s.LoginError())
}

func TestRegister_Validation(t *testing.T) {
	fc := &fakeClient{}
	s := newAuth(fc, &fakeSessions{})

	_, err := s.Register(context.Background(), " a ", "bad")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "pseudo must be at least 2 characters", verr.Field("pseudo"))
	assert.Equal(t, "invalid email", verr.Field("email"))
	assert.Zero(t, fc.Calls())

	_, err = s.Register(context.Background(), "", "a@b.co")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "pseudo is required", verr.Field("pseudo"))
	assert.Empty(t, verr.Field("email"))
}

func TestRegister_PseudoCountsCharacters(t *testing.T) {
	u := &models.User{ID: "e@example.org", Pseudo: "éé", Email: "e@example.org"}
	fc := &fakeClient{user: u}
	s := newAuth(fc, &fakeSessions{})

	_, err := s.Register(context.Background(), "éé", "e@example.org")
	require.NoError(t, err)
	assert.Equal(t, "éé", fc.lastPseudo)
}

func TestRegister_Conflict(t *testing.T) {
	fc := &fakeClient{err: &client.StatusError{Code: 409}}
	fs := &fakeSessions{}
	s := newAuth(fc, fs)
	s.SwitchMode(ModeRegister)

	_, err := s.Register(context.Background(), "al", "a@b.co")
	require.ErrorIs(t, err, client.ErrConflict)
	assert.Equal(t, "user already exists", s.RegisterError())
	assert.Empty(t, s.LoginError(), "errors are scoped to their mode")
	assert.Nil(t, fs.user)
}

func TestRegister_EmptyErrorFallback(t *testing.T) {
	s := newAuth(&fakeClient{err: errors.New("")}, &fakeSessions{})
	_, err := s.Register(context.Background(), "al", "a@b.co")
	require.Error(t, err)
	assert.Equal(t, "registration error", s.RegisterError())
}

func TestSwitchMode_ClearsErrors(t *testing.T) {
	s := newAuth(&fakeClient{err: &client.StatusError{Code: 404}}, &fakeSessions{})
	_, _ = s.Login(context.Background(), "a@b.co")
	require.NotEmpty(t, s.LoginError())

	s.SwitchMode(ModeRegister)
	assert.Equal(t, ModeRegister, s.Mode())
	assert.Equal(t, "register", s.Mode().String())
	assert.Empty(t, s.LoginError())
	assert.Empty(t, s.RegisterError())
}

func TestLogin_BusyWhilePending(t *testing.T) {
	fc := &fakeClient{
		user:    &models.User{Email: "a@b.co"},
		block:   make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	s := newAuth(fc, &fakeSessions{})

	done := make(chan error, 1)
	go func() {
		_, err := s.Login(context.Background(), "a@b.co")
		done <- err
	}()
	<-fc.started
	assert.True(t, s.Loading())

	_, err := s.Login(context.Background(), "a@b.co")
	assert.ErrorIs(t, err, ErrBusy)
	_, err = s.Register(context.Background(), "al", "a@b.co")
	assert.ErrorIs(t, err, ErrBusy, "both forms share the loading flag")

	close(fc.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, fc.Calls())
	assert.False(t, s.Loading())
}

func TestSubmit_ValidationFailureClearsPreviousError(t *testing.T) {
	fc := &fakeClient{err: &client.StatusError{Code: 404}}
	s := newAuth(fc, &fakeSessions{})
	ctx := context.Background()

	_, err := s.Login(ctx, "x@example.com")
	require.Error(t, err)
	require.Equal(t, "user not found", s.LoginError())

	_, err = s.Login(ctx, "not-an-email")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, s.LoginError())
	assert.Equal(t, 1, fc.Calls())

	fc.err = &client.StatusError{Code: 409}
	_, err = s.Register(ctx, "alice", "alice@example.com")
	require.Error(t, err)
	require.Equal(t, "user already exists", s.RegisterError())

	_, err = s.Register(ctx, "a", "alice@example.com")
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, s.RegisterError())
}
