package endpoint

import (
	"time"

	"github.com/ariebrainware/hospital-front-office/util"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const recentRegistrationCap = 10

type recentRegistrationView struct {
	RegistrationID      uint            `json:"registration_id" gorm:"column:registration_id"`
	UHID                string          `json:"uhid" gorm:"column:uhid"`
	PatientName         string          `json:"patient_name" gorm:"column:patient_name"`
	Phone               string          `json:"phone" gorm:"column:phone"`
	DoctorName          *string         `json:"doctor_name" gorm:"column:doctor_name"`
	ReferringDoctorName *string         `json:"referring_doctor_name" gorm:"column:referring_doctor_name"`
	ConsultingFee       decimal.Decimal `json:"consulting_fee" gorm:"column:consulting_fee"`
	ReferralFee         decimal.Decimal `json:"referral_fee" gorm:"column:referral_fee"`
	TotalAmount         decimal.Decimal `json:"total_amount" gorm:"column:total_amount"`
	RegistrationDate    time.Time       `json:"registration_date" gorm:"column:registration_date"`
}

// RecentRegistrations godoc
// @Summary      Recent registrations
// @Description  Today's registrations with patient and doctor details, newest first
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse{data=object} "Registrations retrieved"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /registrations/recent [get]
func RecentRegistrations(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var registrations []recentRegistrationView
	err := db.Table("registrations").
		Select(`registrations.id AS registration_id,
			registrations.uhid AS uhid,
			patients.patient_name AS patient_name,
			patients.phone AS phone,
			doctors.name AS doctor_name,
			referring_doctors.name AS referring_doctor_name,
			registrations.consulting_fee AS consulting_fee,
			registrations.referral_fee AS referral_fee,
			registrations.total_amount AS total_amount,
			registrations.created_at AS registration_date`).
		Joins("JOIN patients ON patients.id = registrations.patient_id").
		Joins("LEFT JOIN doctors ON doctors.id = registrations.doctor_id").
		Joins("LEFT JOIN referring_doctors ON referring_doctors.id = registrations.referring_doctor_id").
		Where("registrations.created_at >= ?", startOfToday()).
		Order("registrations.created_at DESC").
		Limit(recentRegistrationCap).
		Scan(&registrations).Error
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve registrations",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Registrations retrieved",
		Data: map[string]interface{}{"total": len(registrations), "registrations": registrations},
	})
}
