package model

import "gorm.io/gorm"

// Patient is a registered hospital patient. Identity is keyed two ways: the
// phone number (dedup key for repeat visits) and the generated UHID. Both
// carry unique indexes; the indexes are the authoritative guard against
// concurrent duplicate inserts.
type Patient struct {
	gorm.Model
	UHID          string `json:"uhid" gorm:"column:uhid;uniqueIndex;size:11"`
	PatientName   string `json:"patient_name" gorm:"column:patient_name"`
	DOB           string `json:"dob" gorm:"column:dob;size:10"`
	Age           int    `json:"age"`
	Gender        string `json:"gender" gorm:"size:16"`
	Address       string `json:"address"`
	Phone         string `json:"phone" gorm:"uniqueIndex;size:20"`
	AadharCard    string `json:"aadhar_card" gorm:"column:aadhar_card;size:16"`
	AttenderName  string `json:"attender_name"`
	AttenderPhone string `json:"attender_phone" gorm:"size:20"`
	CreatedBy     uint   `json:"created_by"`
	// QRCode holds a base64 PNG data URL encoding {uhid, name, phone}.
	// Generated once at first registration, never regenerated.
	QRCode string `json:"qr_code" gorm:"column:qr_code;type:text"`
}
