package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone string `gorm:"size:11" json:"phone"`

	// 64-char hex SHA-256 digest, never the plaintext
	PasswordHash string `gorm:"size:64;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
