package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	// Display-formatted text, kept for storage compatibility; sorting
	// rebuilds a calendar key from it instead of comparing the raw string.
	Date string `gorm:"size:10;not null" json:"date"` // DD/MM/YYYY
	Time string `gorm:"size:5;not null" json:"time"`  // HH:MM

	CreatedAt time.Time `json:"created_at"`
}
