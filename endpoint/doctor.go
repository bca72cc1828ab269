package endpoint

import (
	"time"

	"github.com/ariebrainware/hospital-front-office/model"
	"github.com/ariebrainware/hospital-front-office/util"
	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
)

const doctorRosterKey = "available_doctors"

// The roster changes rarely and the front desk polls it on every form load,
// so responses are held in-process for a short window.
var doctorRosterCache = cache.New(30*time.Second, time.Minute)

// ListDoctors godoc
// @Summary      List available doctors
// @Description  Get all available doctors ordered by name
// @Tags         Doctor
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse{data=object} "Doctors retrieved"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /doctors [get]
func ListDoctors(c *gin.Context) {
	if cached, found := doctorRosterCache.Get(doctorRosterKey); found {
		if doctors, ok := cached.([]model.Doctor); ok {
			util.CallSuccessOK(c, util.APISuccessParams{
				Msg:  "Doctors retrieved",
				Data: map[string]interface{}{"total": len(doctors), "doctors": doctors},
			})
			return
		}
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var doctors []model.Doctor
	if err := db.Where("is_available = ?", true).Order("name").Find(&doctors).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve doctors",
			Err: err,
		})
		return
	}

	doctorRosterCache.Set(doctorRosterKey, doctors, cache.DefaultExpiration)

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Doctors retrieved",
		Data: map[string]interface{}{"total": len(doctors), "doctors": doctors},
	})
}

// flushDoctorRoster drops the cached roster. Used by tests and by any future
// doctor-management write path.
func flushDoctorRoster() {
	doctorRosterCache.Delete(doctorRosterKey)
}
