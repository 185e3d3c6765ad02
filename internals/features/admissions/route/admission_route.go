// file: internals/features/admissions/route/admission_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "campushub_backend/internals/features/admissions/controller"
)

/* =========================================================
   ADMISSION ROUTES
   Admission windows, applications, criteria, scores
========================================================= */

func AdmissionRoutes(r fiber.Router, db *gorm.DB) {
	admissionCtl := controller.NewUniversityAdmissionController(db)
	applicationCtl := controller.NewAdmissionApplicationController(db)
	criteriaCtl := controller.NewAdmissionCriteriaController(db)
	scoreCtl := controller.NewAdmissionApplicationScoreController(db)

	admission := r.Group("/UniversityAdmission")
	admission.Get("/current-invitation/:user_id", admissionCtl.CurrentInvitation)
	admission.Get("/", admissionCtl.List)
	admission.Get("/:id", admissionCtl.GetByID)
	admission.Post("/", admissionCtl.Create)
	admission.Put("/:id", admissionCtl.Update)
	admission.Delete("/:id", admissionCtl.Delete)

	application := r.Group("/AdmissionApplication")
	application.Get("/", applicationCtl.List)
	application.Get("/:id", applicationCtl.GetByID)
	application.Post("/", applicationCtl.Create)
	application.Put("/:id", applicationCtl.Update)
	application.Delete("/:id", applicationCtl.Delete)

	criteria := r.Group("/AdmissionCriteria")
	criteria.Get("/", criteriaCtl.List)
	criteria.Get("/:id", criteriaCtl.GetByID)
	criteria.Post("/", criteriaCtl.Create)
	criteria.Put("/:id", criteriaCtl.Update)
	criteria.Delete("/:id", criteriaCtl.Delete)

	score := r.Group("/AdmissionApplicationScore")
	score.Post("/createOrUpdateMultiple", scoreCtl.CreateOrUpdateMultiple)
	score.Get("/", scoreCtl.List)
	score.Get("/:id", scoreCtl.GetByID)
	score.Delete("/:id", scoreCtl.Delete)
}
