package endpoint

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/ariebrainware/hospital-front-office/middleware"
	"github.com/ariebrainware/hospital-front-office/model"
	"github.com/ariebrainware/hospital-front-office/util"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// maxUHIDAttempts bounds the candidate-generation loop. The unique index on
// patients.uhid is the authoritative guard; the loop only keeps constraint
// violations rare, so exhaustion is a loud failure instead of a spin.
const maxUHIDAttempts = 25

var defaultConsultingFee = decimal.NewFromInt(300)

type registerPatientRequest struct {
	PatientName       string `json:"patient_name" example:"Asha Rao"`
	DOB               string `json:"dob" example:"1990-01-01"`
	Age               int    `json:"age" example:"35"`
	Gender            string `json:"gender" example:"Female"`
	Address           string `json:"address" example:"12 Gandhi Road"`
	Phone             string `json:"phone" example:"9876543210"`
	AadharCard        string `json:"aadhar_card" example:"123412341234"`
	AttenderName      string `json:"attender_name" example:"Ravi Rao"`
	AttenderPhone     string `json:"attender_phone" example:"9876500000"`
	DoctorID          *uint  `json:"doctor_id"`
	ReferringDoctorID *uint  `json:"referring_doctor_id"`
}

// registrationView is the denormalized read assembled after commit: patient
// demographics joined with the fresh registration's fee breakdown.
type registrationView struct {
	RegistrationID      uint            `json:"registration_id" gorm:"column:registration_id"`
	UHID                string          `json:"uhid" gorm:"column:uhid"`
	PatientName         string          `json:"patient_name" gorm:"column:patient_name"`
	DOB                 string          `json:"dob" gorm:"column:dob"`
	Age                 int             `json:"age" gorm:"column:age"`
	Gender              string          `json:"gender" gorm:"column:gender"`
	Address             string          `json:"address" gorm:"column:address"`
	Phone               string          `json:"phone" gorm:"column:phone"`
	DoctorName          *string         `json:"doctor_name" gorm:"column:doctor_name"`
	Specialization      *string         `json:"specialization" gorm:"column:specialization"`
	ReferringDoctorName *string         `json:"referring_doctor_name" gorm:"column:referring_doctor_name"`
	ConsultingFee       decimal.Decimal `json:"consulting_fee" gorm:"column:consulting_fee"`
	ReferralFee         decimal.Decimal `json:"referral_fee" gorm:"column:referral_fee"`
	TotalAmount         decimal.Decimal `json:"total_amount" gorm:"column:total_amount"`
	RegistrationDate    time.Time       `json:"registration_date" gorm:"column:registration_date"`
	QRCode              string          `json:"qr_code" gorm:"column:qr_code"`
}

type registrationResponse struct {
	Success      bool             `json:"success"`
	IsNewPatient bool             `json:"isNewPatient"`
	Data         registrationView `json:"data"`
}

// generateUHID produces one candidate identifier: HOS + 2-digit year +
// 2-digit month + 4-digit random suffix, e.g. HOS25081234.
func generateUHID() string {
	now := time.Now()
	return fmt.Sprintf("HOS%02d%02d%04d", now.Year()%100, int(now.Month()), rand.Intn(10000))
}

// nextAvailableUHID draws candidates until one is unused, each retry with a
// fresh random suffix.
func nextAvailableUHID(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < maxUHIDAttempts; attempt++ {
		candidate := generateUHID()
		var count int64
		if err := tx.Model(&model.Patient{}).Where("uhid = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free UHID found after %d attempts", maxUHIDAttempts)
}

// resolvePatient looks the patient up by phone. A match reuses the existing
// identity untouched; otherwise a new patient row is created with a fresh
// UHID and QR artifact. Returns the patient and whether it was newly created.
func resolvePatient(tx *gorm.DB, req registerPatientRequest, createdBy uint) (model.Patient, bool, error) {
	var existing model.Patient
	err := tx.Where("phone = ?", req.Phone).First(&existing).Error
	if err == nil {
		return existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return model.Patient{}, false, err
	}

	uhid, err := nextAvailableUHID(tx)
	if err != nil {
		return model.Patient{}, false, err
	}

	// QR failure is fatal to the new-patient path: the artifact is part of
	// the committed record, so the whole transaction rolls back.
	qrCode, err := util.GeneratePatientQR(uhid, req.PatientName, req.Phone)
	if err != nil {
		return model.Patient{}, false, err
	}

	patient := model.Patient{
		UHID:          uhid,
		PatientName:   req.PatientName,
		DOB:           req.DOB,
		Age:           req.Age,
		Gender:        req.Gender,
		Address:       req.Address,
		Phone:         req.Phone,
		AadharCard:    req.AadharCard,
		AttenderName:  req.AttenderName,
		AttenderPhone: req.AttenderPhone,
		CreatedBy:     createdBy,
		QRCode:        qrCode,
	}
	if err := tx.Create(&patient).Error; err != nil {
		return model.Patient{}, false, err
	}
	return patient, true, nil
}

// resolveFees snapshots the visit fees. Unresolvable ids degrade to defaults
// (consulting 300.00, referral 0.00) rather than failing the registration.
func resolveFees(tx *gorm.DB, doctorID, referringDoctorID *uint) (decimal.Decimal, decimal.Decimal, error) {
	consultingFee := defaultConsultingFee
	referralFee := decimal.Zero

	if doctorID != nil {
		var doctor model.Doctor
		err := tx.First(&doctor, *doctorID).Error
		switch err {
		case nil:
			consultingFee = doctor.ConsultingFee
		case gorm.ErrRecordNotFound:
			// fall through to the default fee
		default:
			return decimal.Zero, decimal.Zero, err
		}
	}

	if referringDoctorID != nil {
		var referringDoctor model.ReferringDoctor
		err := tx.First(&referringDoctor, *referringDoctorID).Error
		switch err {
		case nil:
			referralFee = referringDoctor.ReferralFee
		case gorm.ErrRecordNotFound:
			// fall through to the default fee
		default:
			return decimal.Zero, decimal.Zero, err
		}
	}

	return consultingFee, referralFee, nil
}

func loadRegistrationView(db *gorm.DB, registrationID uint) (registrationView, error) {
	var view registrationView
	err := db.Table("registrations").
		Select(`registrations.id AS registration_id,
			registrations.uhid AS uhid,
			patients.patient_name AS patient_name,
			patients.dob AS dob,
			patients.age AS age,
			patients.gender AS gender,
			patients.address AS address,
			patients.phone AS phone,
			patients.qr_code AS qr_code,
			registrations.consulting_fee AS consulting_fee,
			registrations.referral_fee AS referral_fee,
			registrations.total_amount AS total_amount,
			registrations.created_at AS registration_date,
			doctors.name AS doctor_name,
			doctors.specialization AS specialization,
			referring_doctors.name AS referring_doctor_name`).
		Joins("JOIN patients ON patients.id = registrations.patient_id").
		Joins("LEFT JOIN doctors ON doctors.id = registrations.doctor_id").
		Joins("LEFT JOIN referring_doctors ON referring_doctors.id = registrations.referring_doctor_id").
		Where("registrations.id = ?", registrationID).
		Scan(&view).Error
	return view, err
}

// RegisterPatient godoc
// @Summary      Register a patient visit
// @Description  Deduplicate the patient by phone, allocate a UHID and QR artifact for first-time patients, snapshot fees, and persist everything atomically
// @Tags         Registration
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body registerPatientRequest true "Patient demographics plus optional doctor/referring-doctor ids"
// @Success      201 {object} registrationResponse "Registration committed"
// @Failure      400 {object} util.APIResponse "Missing required fields"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      500 {object} util.APIResponse "Transaction rolled back"
// @Router       /patients/register [post]
func RegisterPatient(c *gin.Context) {
	req := registerPatientRequest{}
	if !bindJSONOrRespond(c, &req, "Invalid request body") {
		return
	}

	// Validation happens before any store interaction.
	req.PatientName = util.NormalizeName(req.PatientName)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.PatientName == "" || req.Phone == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Patient name and phone are required",
			Err: fmt.Errorf("invalid payload"),
		})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	createdBy, _ := middleware.GetUserID(c)

	var patient model.Patient
	var registration model.Registration
	isNewPatient := false

	// Patient resolution, fee resolution, and the registration insert commit
	// together or not at all.
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		patient, isNewPatient, err = resolvePatient(tx, req, createdBy)
		if err != nil {
			return err
		}

		consultingFee, referralFee, err := resolveFees(tx, req.DoctorID, req.ReferringDoctorID)
		if err != nil {
			return err
		}

		registration = model.Registration{
			PatientID:         patient.ID,
			UHID:              patient.UHID,
			DoctorID:          req.DoctorID,
			ReferringDoctorID: req.ReferringDoctorID,
			ConsultingFee:     consultingFee,
			ReferralFee:       referralFee,
			TotalAmount:       consultingFee.Add(referralFee),
			CreatedBy:         createdBy,
		}
		return tx.Create(&registration).Error
	})
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to register patient",
			Err: err,
		})
		return
	}

	util.LogPatientRegistered(createdBy, patient.UHID, isNewPatient, c.ClientIP())

	// The write is committed; this read only assembles the response.
	view, err := loadRegistrationView(db, registration.ID)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Registration saved but the confirmation view could not be loaded",
			Err: err,
		})
		return
	}

	c.JSON(http.StatusCreated, registrationResponse{
		Success:      true,
		IsNewPatient: isNewPatient,
		Data:         view,
	})
}
