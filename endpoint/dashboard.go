package endpoint

import (
	"github.com/ariebrainware/hospital-front-office/model"
	"github.com/ariebrainware/hospital-front-office/util"
	"github.com/gin-gonic/gin"
)

// DashboardStats godoc
// @Summary      Dashboard statistics
// @Description  Counts of today's scheduled appointments, available doctors, and today's registrations
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse{data=object} "Statistics retrieved"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /dashboard/stats [get]
func DashboardStats(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var todayAppointments int64
	if err := db.Model(&model.Appointment{}).
		Where("appointment_date = ? AND status = ?", today(), "scheduled").
		Count(&todayAppointments).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to fetch statistics", Err: err})
		return
	}

	var availableDoctors int64
	if err := db.Model(&model.Doctor{}).
		Where("is_available = ?", true).
		Count(&availableDoctors).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to fetch statistics", Err: err})
		return
	}

	var todayRegistrations int64
	if err := db.Model(&model.Registration{}).
		Where("created_at >= ?", startOfToday()).
		Count(&todayRegistrations).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to fetch statistics", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: "Statistics retrieved",
		Data: map[string]interface{}{
			"todayAppointments":  todayAppointments,
			"availableDoctors":   availableDoctors,
			"todayRegistrations": todayRegistrations,
		},
	})
}
