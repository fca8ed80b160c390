package user

import (
	"time"

	"github.com/google/uuid"
)

// User carries the bcrypt hash in Password. The upstream API serializes the
// hash on registration, so it stays in the JSON shape.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"date"`
}
