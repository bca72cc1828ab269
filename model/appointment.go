package model

import "gorm.io/gorm"

// Appointment is a scheduled consultation slot. Dates and times are stored as
// plain strings (YYYY-MM-DD, HH:MM) so day-bucket queries stay portable.
type Appointment struct {
	gorm.Model
	PatientID       uint   `json:"patient_id" gorm:"not null;index"`
	DoctorID        uint   `json:"doctor_id" gorm:"not null;index"`
	AppointmentDate string `json:"appointment_date" gorm:"size:10;index"`
	AppointmentTime string `json:"appointment_time" gorm:"size:8"`
	Status          string `json:"status" gorm:"size:20;default:scheduled"`
	Reason          string `json:"reason"`
}
