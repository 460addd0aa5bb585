// Package services holds the client-side application logic behind the
// terminal views: authentication and the vote board.
package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/sondage/internal/client/client"
	"github.com/dmitrijs2005/sondage/internal/client/models"
	"github.com/dmitrijs2005/sondage/internal/logging"
	"github.com/go-playground/validator/v10"
)

const (
	msgUserNotFound      = "user not found"
	msgUserAlreadyExists = "user already exists"
	msgLoginFallback     = "login error"
	msgRegisterFallback  = "registration error"
)

// Mode selects which form the authentication view shows.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

func (m Mode) String() string {
	if m == ModeRegister {
		return "register"
	}
	return "login"
}

// SessionStore persists the authenticated user between runs.
type SessionStore interface {
	Get(ctx context.Context) (*models.User, bool)
	Set(ctx context.Context, user *models.User) error
	Clear(ctx context.Context) error
}

type loginForm struct {
	Email string `validate:"required,email"`
}

type registerForm struct {
	Pseudo string `validate:"required,min=2"`
	Email  string `validate:"required,email"`
}

// AuthService drives the login and register forms. Both forms share one
// loading flag; error messages are kept per mode.
type AuthService struct {
	client   client.Client
	sessions SessionStore
	logger   logging.Logger
	validate *validator.Validate

	loading atomic.Bool

	mu          sync.Mutex
	mode        Mode
	loginErr    string
	registerErr string
}

func NewAuthService(c client.Client, sessions SessionStore, logger logging.Logger) *AuthService {
	return &AuthService{
		client:   c,
		sessions: sessions,
		logger:   logger.With("module", "auth"),
		validate: validator.New(),
	}
}

func (s *AuthService) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SwitchMode changes the active form and clears the error messages of both.
func (s *AuthService) SwitchMode(m Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
	s.loginErr = ""
	s.registerErr = ""
}

func (s *AuthService) Loading() bool { return s.loading.Load() }

func (s *AuthService) LoginError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loginErr
}

func (s *AuthService) RegisterError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registerErr
}

// Login looks up an existing user by email and stores it as the session.
// An invalid email is reported as *ValidationError without any request.
func (s *AuthService) Login(ctx context.Context, email string) (*models.User, error) {
	form := loginForm{Email: strings.TrimSpace(email)}
	s.setError(ModeLogin, "")

	if err := s.check(form); err != nil {
		return nil, err
	}

	if !s.loading.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer s.loading.Store(false)

	u, err := s.client.Login(ctx, form.Email)
	if err == nil {
		err = s.sessions.Set(ctx, u)
	}
	if err != nil {
		aerr := &AuthError{Message: authMessage(err, msgUserNotFound, client.ErrNotFound, msgLoginFallback), Err: err}
		s.logger.Warn(ctx, "login failed", "email", form.Email, "error", err)
		s.setError(ModeLogin, aerr.Message)
		return nil, aerr
	}

	s.logger.Info(ctx, "logged in", "email", u.Email)
	return u, nil
}

// Register creates a user and stores it as the session.
func (s *AuthService) Register(ctx context.Context, pseudo, email string) (*models.User, error) {
	form := registerForm{Pseudo: strings.TrimSpace(pseudo), Email: strings.TrimSpace(email)}
	s.setError(ModeRegister, "")

	if err := s.check(form); err != nil {
		return nil, err
	}

	if !s.loading.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer s.loading.Store(false)

	u, err := s.client.Register(ctx, form.Pseudo, form.Email)
	if err == nil {
		err = s.sessions.Set(ctx, u)
	}
	if err != nil {
		aerr := &AuthError{Message: authMessage(err, msgUserAlreadyExists, client.ErrConflict, msgRegisterFallback), Err: err}
		s.logger.Warn(ctx, "registration failed", "email", form.Email, "error", err)
		s.setError(ModeRegister, aerr.Message)
		return nil, aerr
	}

	s.logger.Info(ctx, "registered", "email", u.Email, "pseudo", u.Pseudo)
	return u, nil
}

func (s *AuthService) setError(m Mode, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m == ModeRegister {
		s.registerErr = msg
	} else {
		s.loginErr = msg
	}
}

func (s *AuthService) check(form any) error {
	err := s.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "invalid email"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	}
	return "invalid " + field
}

// authMessage turns a failed request into the text shown under the form.
// known is matched with errors.Is and reported as knownMsg; any other status
// shows the response body or "error <status>"; anything else shows the error
// text, or fallback when that is empty.
func authMessage(err error, knownMsg string, known error, fallback string) string {
	if errors.Is(err, known) {
		return knownMsg
	}
	var se *client.StatusError
	if errors.As(err, &se) {
		return se.Error()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
