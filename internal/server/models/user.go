package models

// User is a registered voter. ID always equals Email.
type User struct {
	ID     string `json:"id" mapstructure:"id"`
	Pseudo string `json:"pseudo" mapstructure:"pseudo"`
	Email  string `json:"email" mapstructure:"email"`
}
