package domain

import (
	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	ProfilePicture *string   `json:"profile_picture,omitempty"`
	Interests      []string  `json:"interests"`
}
