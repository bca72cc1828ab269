package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReferringDoctorModel_Create(t *testing.T) {
	db := setupTestDB(t, "referring_doctor_create", &ReferringDoctor{})

	referringDoctor := ReferringDoctor{
		Name:           "Dr. Anil Mehta",
		HospitalClinic: "Mehta Clinic",
		Phone:          "9812345678",
		Email:          "anil@mehtaclinic.in",
		ReferralFee:    decimal.RequireFromString("250.00"),
	}

	err := db.Create(&referringDoctor).Error
	assert.NoError(t, err)
	assert.NotZero(t, referringDoctor.ID)

	var found ReferringDoctor
	assert.NoError(t, db.First(&found, referringDoctor.ID).Error)
	assert.True(t, found.ReferralFee.Equal(decimal.RequireFromString("250.00")))
}
