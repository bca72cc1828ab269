package endpoint

import (
	"fmt"
	"strings"

	"github.com/ariebrainware/hospital-front-office/model"
	"github.com/ariebrainware/hospital-front-office/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	searchMinQueryLen = 2
	searchResultCap   = 20
)

// SearchPatients godoc
// @Summary      Search patients
// @Description  Substring match over patient name, phone, and UHID; most recent first
// @Tags         Patient
// @Produce      json
// @Security     BearerAuth
// @Param        query query string true "Search term, minimum 2 characters"
// @Success      200 {object} util.APIResponse{data=object} "Patients retrieved"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patients/search [get]
func SearchPatients(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if len(query) < searchMinQueryLen {
		util.CallSuccessOK(c, util.APISuccessParams{
			Msg:  "Patients retrieved",
			Data: map[string]interface{}{"total": 0, "patients": []model.Patient{}},
		})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	keyword := "%" + query + "%"
	var patients []model.Patient
	err := db.
		Where("LOWER(patient_name) LIKE LOWER(?) OR phone LIKE ? OR uhid LIKE UPPER(?)", keyword, keyword, keyword).
		Order("created_at DESC").
		Limit(searchResultCap).
		Find(&patients).Error
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to search patients",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patients retrieved",
		Data: map[string]interface{}{"total": len(patients), "patients": patients},
	})
}

// GetPatientByUHID godoc
// @Summary      Get patient by UHID
// @Description  Fetch a single patient record by its UHID
// @Tags         Patient
// @Produce      json
// @Security     BearerAuth
// @Param        uhid path string true "Patient UHID"
// @Success      200 {object} util.APIResponse{data=model.Patient} "Patient retrieved"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patients/{uhid} [get]
func GetPatientByUHID(c *gin.Context) {
	uhid := c.Param("uhid")

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var patient model.Patient
	err := db.Where("uhid = ?", uhid).First(&patient).Error
	if err == gorm.ErrRecordNotFound {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Patient not found",
			Err: fmt.Errorf("no patient with uhid %s", uhid),
		})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to fetch patient",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient retrieved",
		Data: patient,
	})
}
