// main.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ariebrainware/hospital-front-office/config"
	"github.com/ariebrainware/hospital-front-office/endpoint"
	"github.com/ariebrainware/hospital-front-office/middleware"
	"github.com/ariebrainware/hospital-front-office/model"
	"github.com/ariebrainware/hospital-front-office/util"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration
	cfg := config.LoadConfig()

	// The secret may come from the .env file loaded above, which is too late
	// for package initializers.
	if secret := os.Getenv("JWTSECRET"); secret != "" {
		util.SetJWTSecret(secret)
	}

	db, err := config.ConnectPostgres()
	if err != nil {
		log.Fatalf("Error connecting to PostgreSQL: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.Patient{},
		&model.Doctor{},
		&model.ReferringDoctor{},
		&model.Registration{},
		&model.Appointment{},
		&model.SecurityLog{},
	); err != nil {
		log.Fatalf("Error migrating schema: %v", err)
	}

	if err := model.SeedDoctors(db); err != nil {
		log.Printf("Warning: seeding doctors failed: %v", err)
	}
	if adminPassword := os.Getenv("ADMIN_PASSWORD"); adminPassword != "" {
		if err := model.SeedAdminUser(db, "admin", util.HashPassword(adminPassword)); err != nil {
			log.Printf("Warning: seeding admin user failed: %v", err)
		}
	}

	util.SetSecurityLoggerDB(db)
	if err := util.InitGeoIP(""); err != nil {
		log.Printf("GeoIP disabled: %v", err)
	}
	if _, err := config.ConnectRedis(); err != nil {
		log.Printf("Redis unavailable, rate limiting and session mirroring disabled: %v", err)
	}

	// Set Gin mode from config
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DatabaseMiddleware(db))
	router.Use(middleware.EndpointCallLogger())

	api := router.Group("/api")
	api.GET("/health", endpoint.HealthCheck)
	api.POST("/auth/login", middleware.RateLimiter(middleware.RateLimitConfig{}), endpoint.Login)

	authorized := api.Group("")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/auth/logout", endpoint.Logout)
		authorized.GET("/doctors", endpoint.ListDoctors)
		authorized.GET("/referring-doctors", endpoint.ListReferringDoctors)
		authorized.POST("/referring-doctors", endpoint.CreateReferringDoctor)
		authorized.GET("/patients/search", endpoint.SearchPatients)
		authorized.GET("/patients/:uhid", endpoint.GetPatientByUHID)
		authorized.POST("/patients/register", endpoint.RegisterPatient)
		authorized.GET("/appointments/today", endpoint.TodayAppointments)
		authorized.GET("/dashboard/stats", endpoint.DashboardStats)
		authorized.GET("/registrations/recent", endpoint.RecentRegistrations)
	}

	// Start server on specified port
	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
