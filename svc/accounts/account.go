package accounts

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID           uuid.UUID
	Firstname    string
	Surname      string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// RegisterInput is what the signup API receives.
type RegisterInput struct {
	Firstname string
	Surname   string
	Email     string
	Password  string
}

// Dummy is the development account seeded by `serve --dummy`.
var Dummy = RegisterInput{
	Firstname: "Real",
	Surname:   "Person",
	Email:     "person@email.com",
	Password:  "TestPassword123",
}
