package endpoint

import (
	"github.com/ariebrainware/hospital-front-office/util"
	"github.com/gin-gonic/gin"
)

type appointmentView struct {
	AppointmentID   uint   `json:"appointment_id" gorm:"column:appointment_id"`
	AppointmentDate string `json:"appointment_date" gorm:"column:appointment_date"`
	AppointmentTime string `json:"appointment_time" gorm:"column:appointment_time"`
	Status          string `json:"status" gorm:"column:status"`
	Reason          string `json:"reason" gorm:"column:reason"`
	PatientName     string `json:"patient_name" gorm:"column:patient_name"`
	Phone           string `json:"phone" gorm:"column:phone"`
	UHID            string `json:"uhid" gorm:"column:uhid"`
	DoctorName      string `json:"doctor_name" gorm:"column:doctor_name"`
	Specialization  string `json:"specialization" gorm:"column:specialization"`
}

// TodayAppointments godoc
// @Summary      List today's appointments
// @Description  Get today's appointments joined with patient and doctor details, ordered by time
// @Tags         Appointment
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse{data=object} "Appointments retrieved"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /appointments/today [get]
func TodayAppointments(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var appointments []appointmentView
	err := db.Table("appointments").
		Select(`appointments.id AS appointment_id,
			appointments.appointment_date AS appointment_date,
			appointments.appointment_time AS appointment_time,
			appointments.status AS status,
			appointments.reason AS reason,
			patients.patient_name AS patient_name,
			patients.phone AS phone,
			patients.uhid AS uhid,
			doctors.name AS doctor_name,
			doctors.specialization AS specialization`).
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
		Where("appointments.appointment_date = ?", today()).
		Order("appointments.appointment_time").
		Scan(&appointments).Error
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve appointments",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointments retrieved",
		Data: map[string]interface{}{"total": len(appointments), "appointments": appointments},
	})
}
