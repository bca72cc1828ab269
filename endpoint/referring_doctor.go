package endpoint

import (
	"fmt"

	"github.com/ariebrainware/hospital-front-office/model"
	"github.com/ariebrainware/hospital-front-office/util"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var defaultReferralFee = decimal.NewFromInt(250)

type createReferringDoctorRequest struct {
	Name           string           `json:"name" example:"Dr. Anil Mehta"`
	HospitalClinic string           `json:"hospital_clinic" example:"Mehta Clinic"`
	Phone          string           `json:"phone" example:"9812345678"`
	Email          string           `json:"email" example:"anil@mehtaclinic.in"`
	ReferralFee    *decimal.Decimal `json:"referral_fee"`
}

// ListReferringDoctors godoc
// @Summary      List referring doctors
// @Description  Get all referring doctors ordered by name
// @Tags         ReferringDoctor
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse{data=object} "Referring doctors retrieved"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /referring-doctors [get]
func ListReferringDoctors(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var referringDoctors []model.ReferringDoctor
	if err := db.Order("name").Find(&referringDoctors).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve referring doctors",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Referring doctors retrieved",
		Data: map[string]interface{}{"total": len(referringDoctors), "referring_doctors": referringDoctors},
	})
}

// CreateReferringDoctor godoc
// @Summary      Create a referring doctor
// @Description  Register an external referring practitioner; the referral fee defaults to 250.00 when omitted
// @Tags         ReferringDoctor
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createReferringDoctorRequest true "Referring doctor information"
// @Success      201 {object} util.APIResponse{data=model.ReferringDoctor} "Referring doctor created"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /referring-doctors [post]
func CreateReferringDoctor(c *gin.Context) {
	req := createReferringDoctorRequest{}
	if !bindJSONOrRespond(c, &req, "Invalid request body") {
		return
	}

	req.Name = util.NormalizeName(req.Name)
	if req.Name == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Referring doctor name is required",
			Err: fmt.Errorf("invalid payload"),
		})
		return
	}

	// A zero fee is treated like an omitted one and takes the default.
	referralFee := defaultReferralFee
	if req.ReferralFee != nil && !req.ReferralFee.IsZero() {
		referralFee = *req.ReferralFee
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	referringDoctor := model.ReferringDoctor{
		Name:           req.Name,
		HospitalClinic: req.HospitalClinic,
		Phone:          req.Phone,
		Email:          req.Email,
		ReferralFee:    referralFee,
	}
	if err := db.Create(&referringDoctor).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to create referring doctor",
			Err: err,
		})
		return
	}

	// The assigned id is returned for immediate use in a registration.
	util.CallSuccessCreated(c, util.APISuccessParams{
		Msg:  "Referring doctor created",
		Data: referringDoctor,
	})
}
