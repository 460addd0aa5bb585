package models

import (
	"encoding/json"
	"errors"
)

// ErrInvalidUser is returned when a serialized user is not a JSON object.
var ErrInvalidUser = errors.New("invalid user record")

// User is the authenticated account as returned by the backend. Fields other
// than id, pseudo and email are kept opaquely in Extra and written back
// unchanged when the user is persisted.
type User struct {
	ID     string
	Pseudo string
	Email  string
	Extra  map[string]any
}

func (u User) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(u.Extra)+3)
	for k, v := range u.Extra {
		m[k] = v
	}
	m["id"] = u.ID
	m["pseudo"] = u.Pseudo
	m["email"] = u.Email
	return json.Marshal(m)
}

func (u *User) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return ErrInvalidUser
	}

	u.ID = stringField(raw, "id")
	u.Pseudo = stringField(raw, "pseudo")
	u.Email = stringField(raw, "email")

	u.Extra = nil
	if len(raw) > 0 {
		u.Extra = raw
	}
	return nil
}

// stringField removes key from raw and returns its value if it is a string.
func stringField(raw map[string]any, key string) string {
	v, ok := raw[key]
	if !ok {
		return ""
	}
	delete(raw, key)
	s, _ := v.(string)
	return s
}
