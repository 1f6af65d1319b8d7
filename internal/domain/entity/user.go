// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// User represents an account that owns expenses and budgets.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User carrying an allocator-issued ID.
func NewUser(id int64, username, passwordHash, email, phone string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
		Phone:        phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// UserUpdate carries the profile fields to change. Nil fields are left untouched.
type UserUpdate struct {
	Username     *string
	Email        *string
	Phone        *string
	PasswordHash *string
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.Phone == nil && u.PasswordHash == nil
}
