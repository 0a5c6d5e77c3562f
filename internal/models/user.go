package models

// User represents a board member
type User struct {
	Username  string `json:"username" db:"username" validate:"required"`
	Name      string `json:"name" db:"name" validate:"required"`
	AvatarURL string `json:"avatar_url" db:"avatar_url"`
}
