package domain

import "time"

// User represents a registered account. Balance is the only field the
// opening flow ever writes, and only through the conditional debit.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Balance   Cents     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile is the user summary returned by the profile endpoint.
type Profile struct {
	ID               int64     `json:"id"`
	Email            string    `json:"email"`
	Username         string    `json:"username"`
	Balance          Cents     `json:"balance"`
	TotalCasesOpened int64     `json:"total_cases_opened"`
	CreatedAt        time.Time `json:"created_at"`
}
