package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatientModel_Create(t *testing.T) {
	db := setupTestDB(t, "patient_create", &Patient{})

	patient := Patient{
		UHID:        "HOS25081234",
		PatientName: "Asha Rao",
		DOB:         "1990-01-01",
		Age:         35,
		Gender:      "Female",
		Phone:       "9876543210",
		QRCode:      "data:image/png;base64,abc",
	}

	err := db.Create(&patient).Error
	assert.NoError(t, err)
	assert.NotZero(t, patient.ID)
}

func TestPatientModel_Read(t *testing.T) {
	db := setupTestDB(t, "patient_read", &Patient{})

	patient := Patient{
		UHID:        "HOS25085678",
		PatientName: "Ravi Kumar",
		Phone:       "9876500001",
	}
	db.Create(&patient)

	var found Patient
	err := db.Where("uhid = ?", "HOS25085678").First(&found).Error
	assert.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", found.PatientName)
	assert.Equal(t, "9876500001", found.Phone)
}

func TestPatientModel_PhoneUnique(t *testing.T) {
	db := setupTestDB(t, "patient_phone_unique", &Patient{})

	first := Patient{UHID: "HOS25080001", PatientName: "First", Phone: "9876543210"}
	assert.NoError(t, db.Create(&first).Error)

	second := Patient{UHID: "HOS25080002", PatientName: "Second", Phone: "9876543210"}
	err := db.Create(&second).Error
	assert.Error(t, err, "second insert with the same phone must hit the unique index")
}

func TestPatientModel_UHIDUnique(t *testing.T) {
	db := setupTestDB(t, "patient_uhid_unique", &Patient{})

	first := Patient{UHID: "HOS25080003", PatientName: "First", Phone: "9000000001"}
	assert.NoError(t, db.Create(&first).Error)

	second := Patient{UHID: "HOS25080003", PatientName: "Second", Phone: "9000000002"}
	err := db.Create(&second).Error
	assert.Error(t, err, "second insert with the same uhid must hit the unique index")
}
