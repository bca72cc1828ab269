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

func TestDashboardStats(t *testing.T) {
	r, db := setupEndpointTest(t)

	patient := seedPatient(t, db, "HOS25080010", "Stats Patient", "9111111110", time.Now())
	doctor := model.Doctor{Name: "Dr. Available", ConsultingFee: decimal.NewFromInt(500), IsAvailable: true}
	require.NoError(t, db.Create(&doctor).Error)
	require.NoError(t, db.Create(&model.Doctor{Name: "Dr. Away", ConsultingFee: decimal.NewFromInt(400), IsAvailable: false}).Error)

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	appointments := []model.Appointment{
		{PatientID: patient.ID, DoctorID: doctor.ID, AppointmentDate: today(), AppointmentTime: "09:30", Status: "scheduled"},
		{PatientID: patient.ID, DoctorID: doctor.ID, AppointmentDate: today(), AppointmentTime: "10:00", Status: "completed"},
		{PatientID: patient.ID, DoctorID: doctor.ID, AppointmentDate: yesterday, AppointmentTime: "11:00", Status: "scheduled"},
	}
	require.NoError(t, db.Create(&appointments).Error)

	registration := model.Registration{
		PatientID:     patient.ID,
		UHID:          patient.UHID,
		ConsultingFee: decimal.NewFromInt(300),
		ReferralFee:   decimal.Zero,
		TotalAmount:   decimal.NewFromInt(300),
		CreatedBy:     testActorID,
	}
	require.NoError(t, db.Create(&registration).Error)

	w := doRequest(r, "GET", "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TodayAppointments  int64 `json:"todayAppointments"`
		AvailableDoctors   int64 `json:"availableDoctors"`
		TodayRegistrations int64 `json:"todayRegistrations"`
	}
	buf, err := json.Marshal(decodeAPIResponse(t, w).Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(buf, &stats))

	assert.EqualValues(t, 1, stats.TodayAppointments, "only today's scheduled appointments count")
	assert.EqualValues(t, 1, stats.AvailableDoctors)
	assert.EqualValues(t, 1, stats.TodayRegistrations)
}

func TestDashboardStats_EmptyStore(t *testing.T) {
	r, _ := setupEndpointTest(t)

	w := doRequest(r, "GET", "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]int64
	buf, err := json.Marshal(decodeAPIResponse(t, w).Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(buf, &stats))

	assert.EqualValues(t, 0, stats["todayAppointments"])
	assert.EqualValues(t, 0, stats["availableDoctors"])
	assert.EqualValues(t, 0, stats["todayRegistrations"])
}
