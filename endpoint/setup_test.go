package endpoint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ariebrainware/hospital-front-office/middleware"
	"github.com/ariebrainware/hospital-front-office/model"
	"github.com/ariebrainware/hospital-front-office/util"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testActorID uint = 1

var endpointTestModels = []interface{}{
	&model.User{},
	&model.Session{},
	&model.Patient{},
	&model.Doctor{},
	&model.ReferringDoctor{},
	&model.Registration{},
	&model.Appointment{},
	&model.SecurityLog{},
}

func init() {
	gin.SetMode(gin.TestMode)
	util.SetJWTSecret("endpoint-test-secret")
}

// setupTestDB creates an in-memory SQLite database with all models migrated.
// The database name is uniquified per test to prevent cross-test contamination.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:endpoint_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(endpointTestModels...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

// actorMiddleware stands in for AuthRequired in tests, injecting a fixed
// authenticated actor the way the JWT middleware would.
func actorMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("username", "tester")
		c.Set("role", "receptionist")
		c.Next()
	}
}

// setupEndpointTest returns a gin engine with the full route table and the
// backing test database.
func setupEndpointTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	flushDoctorRoster()

	r := gin.New()
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(actorMiddleware(testActorID))

	api := r.Group("/api")
	api.POST("/auth/login", Login)
	api.POST("/auth/logout", Logout)
	api.GET("/doctors", ListDoctors)
	api.GET("/referring-doctors", ListReferringDoctors)
	api.POST("/referring-doctors", CreateReferringDoctor)
	api.GET("/patients/search", SearchPatients)
	api.GET("/patients/:uhid", GetPatientByUHID)
	api.POST("/patients/register", RegisterPatient)
	api.GET("/appointments/today", TodayAppointments)
	api.GET("/dashboard/stats", DashboardStats)
	api.GET("/registrations/recent", RecentRegistrations)

	return r, db
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registrationTestPhone(i int) string {
	return fmt.Sprintf("97%08d", i)
}

func decodeAPIResponse(t *testing.T, w *httptest.ResponseRecorder) util.APIResponse {
	t.Helper()
	var resp util.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return resp
}
