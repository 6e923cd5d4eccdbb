package model

import "time"

// Event represents a scheduled event created by an admin user.
type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:100;not null"`
	Description string    `json:"description,omitempty" gorm:"size:1000"`
	Date        time.Time `json:"date" gorm:"not null"`
	Time        string    `json:"time" gorm:"size:5;not null"` // "HH:MM"
	ImageURL    string    `json:"image_url,omitempty" gorm:"size:512"`
	CreatedByID uint      `json:"created_by_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	CreatedBy *User `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
}
