package domain

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrUsernameTaken is returned when registering an already-used username
var ErrUsernameTaken = errors.New("username already exists")

// ErrInvalidCredentials is returned on a failed login
var ErrInvalidCredentials = errors.New("invalid credentials")

// User represents one operator account
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"` // bcrypt hash, never exposed
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// UserRepository defines the contract for credential data access
type UserRepository interface {
	Create(user *User) error
	FindByUsername(username string) (*User, error)
}
