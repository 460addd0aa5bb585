// Package session keeps the identity of the logged-in user across client
// restarts.
//
// The record is a JSON-encoded models.User stored under a single key in the
// local SQLite database. A missing key means "logged out". There is no
// expiry: the session lasts until Clear is called or the file is removed.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/sondage/internal/client/models"
	"github.com/dmitrijs2005/sondage/internal/client/repositories/metadata"
)

// Key is the metadata key holding the serialized user.
const Key = "user"

type Store struct {
	repo metadata.Repository
}

func NewStore(repo metadata.Repository) *Store {
	return &Store{repo: repo}
}

// Get returns the persisted user. It reports false when nothing is stored,
// when the store cannot be read, or when the stored value is not a valid
// user record.
func (s *Store) Get(ctx context.Context) (*models.User, bool) {
	raw, err := s.repo.Get(ctx, Key)
	if err != nil || raw == nil {
		return nil, false
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, false
	}
	return &u, true
}

// Set persists user, replacing any previous value.
func (s *Store) Set(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.repo.Set(ctx, Key, raw); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear removes the persisted user.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, Key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
