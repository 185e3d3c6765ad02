// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/configs"
	database "campushub_backend/internals/databases"
	academicsroute "campushub_backend/internals/features/academics/route"
	admissionsroute "campushub_backend/internals/features/admissions/route"
	enrollmentroute "campushub_backend/internals/features/enrollment/route"
	gradebookroute "campushub_backend/internals/features/gradebook/route"
	gradingroute "campushub_backend/internals/features/grading/route"
	gradingsvc "campushub_backend/internals/features/grading/service"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := database.DB.DB()
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    configs.AppEnv,
		})
	})

	api := app.Group("/api")

	gradeService := gradingsvc.NewGradeService(db, configs.PassingGrade)

	log.Println("[INFO] Mounting Academics routes...")
	academicsroute.AcademicsRoutes(api, db)

	log.Println("[INFO] Mounting Enrollment routes...")
	enrollmentroute.EnrollmentRoutes(api, db)

	log.Println("[INFO] Mounting GradeBook routes...")
	gradebookroute.GradeBookRoutes(api, db)

	log.Println("[INFO] Mounting Grading routes...")
	gradingroute.GradingRoutes(api, db, gradeService)

	log.Println("[INFO] Mounting Admission routes...")
	admissionsroute.AdmissionRoutes(api, db)
}
