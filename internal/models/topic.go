package models

// Topic represents a discussion topic, identified by its slug
type Topic struct {
	Slug        string `json:"slug" db:"slug" validate:"required"`
	Description string `json:"description" db:"description"`
}
