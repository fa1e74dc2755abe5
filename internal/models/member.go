package models

import (
	"time"
)

// Member represents a registered member holding a spendable point balance
type Member struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Balance   float64   `json:"balance" db:"balance"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateMemberRequest is the payload for registering a member
type CreateMemberRequest struct {
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}
