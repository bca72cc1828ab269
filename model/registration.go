package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Registration is one outpatient visit event. Fees are snapshotted at
// registration time, not live references; later fee changes on the doctor or
// referring doctor never rewrite history. CreatedAt is the registration date.
type Registration struct {
	gorm.Model
	PatientID         uint            `json:"patient_id" gorm:"not null;index"`
	UHID              string          `json:"uhid" gorm:"column:uhid;size:11;index"`
	DoctorID          *uint           `json:"doctor_id"`
	ReferringDoctorID *uint           `json:"referring_doctor_id"`
	ConsultingFee     decimal.Decimal `json:"consulting_fee" gorm:"type:numeric(10,2)"`
	ReferralFee       decimal.Decimal `json:"referral_fee" gorm:"type:numeric(10,2)"`
	TotalAmount       decimal.Decimal `json:"total_amount" gorm:"type:numeric(10,2)"`
	CreatedBy         uint            `json:"created_by"`
}
