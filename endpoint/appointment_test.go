package endpoint

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ariebrainware/hospital-front-office/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayAppointments_OrderedByTime(t *testing.T) {
	r, db := setupEndpointTest(t)

	patient := seedPatient(t, db, "HOS25080020", "Appt Patient", "9222222220", time.Now())
	doctor := model.Doctor{Name: "Dr. Clinic", Specialization: "General Medicine", ConsultingFee: decimal.NewFromInt(500), IsAvailable: true}
	require.NoError(t, db.Create(&doctor).Error)

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	appointments := []model.Appointment{
		{PatientID: patient.ID, DoctorID: doctor.ID, AppointmentDate: today(), AppointmentTime: "14:30", Status: "scheduled", Reason: "Follow-up"},
		{PatientID: patient.ID, DoctorID: doctor.ID, AppointmentDate: today(), AppointmentTime: "09:15", Status: "scheduled", Reason: "Consultation"},
		{PatientID: patient.ID, DoctorID: doctor.ID, AppointmentDate: tomorrow, AppointmentTime: "10:00", Status: "scheduled"},
	}
	require.NoError(t, db.Create(&appointments).Error)

	w := doRequest(r, "GET", "/api/appointments/today", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Total        int               `json:"total"`
		Appointments []appointmentView `json:"appointments"`
	}
	buf, err := json.Marshal(decodeAPIResponse(t, w).Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(buf, &data))

	require.Equal(t, 2, data.Total, "tomorrow's slot must be excluded")
	assert.Equal(t, "09:15", data.Appointments[0].AppointmentTime)
	assert.Equal(t, "14:30", data.Appointments[1].AppointmentTime)
	assert.Equal(t, "Appt Patient", data.Appointments[0].PatientName)
	assert.Equal(t, "Dr. Clinic", data.Appointments[0].DoctorName)
	assert.Equal(t, "HOS25080020", data.Appointments[0].UHID)
}

func TestTodayAppointments_Empty(t *testing.T) {
	r, _ := setupEndpointTest(t)

	w := doRequest(r, "GET", "/api/appointments/today", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Total int `json:"total"`
	}
	buf, err := json.Marshal(decodeAPIResponse(t, w).Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(buf, &data))
	assert.Equal(t, 0, data.Total)
}
