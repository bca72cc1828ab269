package model

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedDoctors loads an initial consulting roster when the doctors table is
// empty. Safe to call on every startup.
func SeedDoctors(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Doctor{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	doctors := []Doctor{
		{Name: "Dr. Suresh Kumar", Specialization: "General Medicine", ConsultingFee: decimal.NewFromInt(300), IsAvailable: true},
		{Name: "Dr. Meena Iyer", Specialization: "Pediatrics", ConsultingFee: decimal.NewFromInt(400), IsAvailable: true},
		{Name: "Dr. Ravi Shankar", Specialization: "Orthopedics", ConsultingFee: decimal.NewFromInt(500), IsAvailable: true},
	}

	for _, doctor := range doctors {
		if err := db.Create(&doctor).Error; err != nil {
			return fmt.Errorf("failed to seed doctor %s: %w", doctor.Name, err)
		}
	}
	return nil
}

// SeedAdminUser creates the default admin account if no user with the given
// username exists. The password must already be hashed by the caller.
func SeedAdminUser(db *gorm.DB, username, hashedPassword string) error {
	var existing User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	admin := User{
		Username: username,
		Password: hashedPassword,
		FullName: "Administrator",
		Role:     "admin",
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	return nil
}
