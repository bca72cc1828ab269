package model

import (
	"time"

	"gorm.io/gorm"
)

// Session records an issued login token for auditing and logout.
type Session struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"index"`
	SessionToken string    `json:"session_token" gorm:"size:512;index"`
	IP           string    `json:"ip" gorm:"size:45"`
	UserAgent    string    `json:"user_agent" gorm:"size:512"`
	ExpiresAt    time.Time `json:"expires_at"`
}
