package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReferringDoctor is an external practitioner credited with referring a
// patient, entitled to a referral fee per visit.
type ReferringDoctor struct {
	gorm.Model
	Name           string          `json:"name" gorm:"size:191"`
	HospitalClinic string          `json:"hospital_clinic" gorm:"size:191"`
	Phone          string          `json:"phone" gorm:"size:20"`
	Email          string          `json:"email" gorm:"size:191"`
	ReferralFee    decimal.Decimal `json:"referral_fee" gorm:"type:numeric(10,2)"`
}
