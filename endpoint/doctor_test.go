package endpoint

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ariebrainware/hospital-front-office/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doctorListData struct {
	Total   int            `json:"total"`
	Doctors []model.Doctor `json:"doctors"`
}

func decodeDoctorData(t *testing.T, raw interface{}) doctorListData {
	t.Helper()
	buf, err := json.Marshal(raw)
	require.NoError(t, err)
	var data doctorListData
	require.NoError(t, json.Unmarshal(buf, &data))
	return data
}

func TestListDoctors_OnlyAvailableOrderedByName(t *testing.T) {
	r, db := setupEndpointTest(t)

	require.NoError(t, db.Create(&model.Doctor{Name: "Dr. Zara Khan", ConsultingFee: decimal.NewFromInt(500), IsAvailable: true}).Error)
	require.NoError(t, db.Create(&model.Doctor{Name: "Dr. Anil Bose", ConsultingFee: decimal.NewFromInt(400), IsAvailable: true}).Error)
	require.NoError(t, db.Create(&model.Doctor{Name: "Dr. On Leave", ConsultingFee: decimal.NewFromInt(300), IsAvailable: false}).Error)

	w := doRequest(r, "GET", "/api/doctors", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeDoctorData(t, decodeAPIResponse(t, w).Data)
	require.Equal(t, 2, data.Total)
	assert.Equal(t, "Dr. Anil Bose", data.Doctors[0].Name)
	assert.Equal(t, "Dr. Zara Khan", data.Doctors[1].Name)
}

func TestListDoctors_ServesFromCache(t *testing.T) {
	r, db := setupEndpointTest(t)

	require.NoError(t, db.Create(&model.Doctor{Name: "Dr. First", ConsultingFee: decimal.NewFromInt(500), IsAvailable: true}).Error)

	w := doRequest(r, "GET", "/api/doctors", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, decodeDoctorData(t, decodeAPIResponse(t, w).Data).Total)

	// A roster change inside the cache window is not visible until the cache
	// expires or is flushed.
	require.NoError(t, db.Create(&model.Doctor{Name: "Dr. Second", ConsultingFee: decimal.NewFromInt(450), IsAvailable: true}).Error)

	w = doRequest(r, "GET", "/api/doctors", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decodeDoctorData(t, decodeAPIResponse(t, w).Data).Total)

	flushDoctorRoster()
	w = doRequest(r, "GET", "/api/doctors", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decodeDoctorData(t, decodeAPIResponse(t, w).Data).Total)
}
