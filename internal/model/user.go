package model

import "time"

// UserRole enumerates the access levels a user can hold.
type UserRole string

const (
	// RoleNormal is the default role assigned at signup.
	RoleNormal UserRole = "NORMAL"
	// RoleAdmin grants event create/update/delete access.
	RoleAdmin UserRole = "ADMIN"
)

// User represents an account able to authenticate against the API.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"size:50;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	HashedPassword string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role           UserRole  `json:"role" gorm:"size:10;not null;default:'NORMAL'"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Events []Event `json:"-" gorm:"foreignKey:CreatedByID"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
