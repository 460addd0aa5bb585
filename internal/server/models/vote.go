package models

const (
	ChoiceOui = "Oui"
	ChoiceNon = "Non"
)

// ValidChoice reports whether c is one of the two accepted answers.
// Matching is exact.
func ValidChoice(c string) bool {
	return c == ChoiceOui || c == ChoiceNon
}

// Vote is one user's answer. Timestamp is in unix seconds.
type Vote struct {
	ID        string `json:"id" mapstructure:"id"`
	UserID    string `json:"userId" mapstructure:"user_id"`
	Choice    string `json:"choice" mapstructure:"choice"`
	Timestamp int64  `json:"_ts" mapstructure:"ts"`
}
