// file: internals/features/enrollment/route/enrollment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "campushub_backend/internals/features/enrollment/controller"
)

/* =========================================================
   ENROLLMENT ROUTES
   Registration rows + the append-only status log trail
========================================================= */

func EnrollmentRoutes(r fiber.Router, db *gorm.DB) {
	enrollmentCtl := controller.NewEnrollmentController(db)
	logCtl := controller.NewEnrollmentLogController(db)

	enrollment := r.Group("/Enrollment")
	enrollment.Get("/academic-program/scholastic-filter/:academic_program_id", enrollmentCtl.ScholasticFilter)
	enrollment.Get("/academic-program/grouped-by-user/:academic_program_id", enrollmentCtl.GroupedByStudent)
	enrollment.Post("/create-multiple", enrollmentCtl.CreateMultiple)
	enrollment.Get("/", enrollmentCtl.List)
	enrollment.Get("/:id", enrollmentCtl.GetByID)
	enrollment.Post("/", enrollmentCtl.Create)
	enrollment.Put("/:id", enrollmentCtl.Update)
	enrollment.Delete("/:id", enrollmentCtl.Delete)

	log := r.Group("/EnrollmentLog")
	log.Get("/", logCtl.List)
	log.Get("/:id", logCtl.GetByID)
	log.Post("/", logCtl.Create)
	log.Delete("/:id", logCtl.Delete)
}
