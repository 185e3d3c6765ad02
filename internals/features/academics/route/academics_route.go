// file: internals/features/academics/route/academics_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "campushub_backend/internals/features/academics/controller"
)

/* =========================================================
   ACADEMICS ROUTES
   School years, sections, curriculum details
========================================================= */

func AcademicsRoutes(r fiber.Router, db *gorm.DB) {
	schoolYearCtl := controller.NewSchoolYearController(db)
	sectionCtl := controller.NewSectionController(db)
	curriculumDetailCtl := controller.NewCurriculumDetailController(db)

	schoolYear := r.Group("/SchoolYear")
	schoolYear.Get("/", schoolYearCtl.List)
	schoolYear.Get("/:id", schoolYearCtl.GetByID)
	schoolYear.Post("/", schoolYearCtl.Create)
	schoolYear.Put("/:id", schoolYearCtl.Update)
	schoolYear.Delete("/:id", schoolYearCtl.Delete)

	section := r.Group("/Section")
	section.Get("/", sectionCtl.List)
	section.Get("/:id", sectionCtl.GetByID)
	section.Post("/", sectionCtl.Create)
	section.Put("/:id", sectionCtl.Update)
	section.Delete("/:id", sectionCtl.Delete)

	curriculumDetail := r.Group("/CurriculumDetail")
	curriculumDetail.Get("/", curriculumDetailCtl.List)
	curriculumDetail.Get("/:id", curriculumDetailCtl.GetByID)
	curriculumDetail.Post("/", curriculumDetailCtl.Create)
	curriculumDetail.Put("/:id", curriculumDetailCtl.Update)
	curriculumDetail.Delete("/:id", curriculumDetailCtl.Delete)
}
