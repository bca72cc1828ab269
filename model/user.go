package model

import "gorm.io/gorm"

// User is a front-office staff account. Its id is the "created_by" actor
// recorded on patients and registrations.
type User struct {
	gorm.Model
	Username       string `json:"username" gorm:"uniqueIndex;size:64"`
	Password       string `json:"-"`
	FullName       string `json:"full_name"`
	Role           string `json:"role" gorm:"size:32;default:receptionist"`
	IsActive       bool   `json:"is_active" gorm:"default:true"`
	FailedAttempts int    `json:"-"`
	LockedUntil    *int64 `json:"-"`
}
