// file: internals/features/gradebook/route/gradebook_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "campushub_backend/internals/features/gradebook/controller"
)

/* =========================================================
   GRADEBOOK ROUTES
   Gradebook structure: books, grading periods, items, details
========================================================= */

func GradeBookRoutes(r fiber.Router, db *gorm.DB) {
	gradeBookCtl := controller.NewGradeBookController(db)
	periodCtl := controller.NewGradingPeriodController(db)
	itemCtl := controller.NewGradeBookItemController(db)
	detailCtl := controller.NewGradeBookItemDetailController(db)

	gradeBook := r.Group("/GradeBook")
	gradeBook.Post("/from-template/:section_id", gradeBookCtl.CreateFromTemplate)
	gradeBook.Get("/", gradeBookCtl.List)
	gradeBook.Get("/:id", gradeBookCtl.GetByID)
	gradeBook.Post("/", gradeBookCtl.Create)
	gradeBook.Put("/:id", gradeBookCtl.Update)
	gradeBook.Delete("/:id", gradeBookCtl.Delete)

	period := r.Group("/GradeBookGradingPeriod")
	period.Get("/", periodCtl.List)
	period.Get("/:id", periodCtl.GetByID)
	period.Post("/", periodCtl.Create)
	period.Put("/:id", periodCtl.Update)
	period.Delete("/:id", periodCtl.Delete)

	item := r.Group("/GradeBookItem")
	item.Get("/", itemCtl.List)
	item.Get("/:id", itemCtl.GetByID)
	item.Post("/", itemCtl.Create)
	item.Put("/:id", itemCtl.Update)
	item.Delete("/:id", itemCtl.Delete)

	detail := r.Group("/GradeBookItemDetail")
	detail.Get("/", detailCtl.List)
	detail.Get("/:id", detailCtl.GetByID)
	detail.Post("/", detailCtl.Create)
	detail.Put("/:id", detailCtl.Update)
	detail.Delete("/:id", detailCtl.Delete)
}
