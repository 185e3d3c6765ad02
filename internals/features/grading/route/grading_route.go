// file: internals/features/grading/route/grading_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradingctrl "campushub_backend/internals/features/grading/controller"
	gradingsvc "campushub_backend/internals/features/grading/service"
)

func GradingRoutes(r fiber.Router, db *gorm.DB, svc *gradingsvc.GradeService) {
	finalGrade := gradingctrl.NewFinalGradeController(db, svc)
	periodGrade := gradingctrl.NewGradingPeriodGradeController(db, svc)
	score := gradingctrl.NewGradeBookScoreController(db, svc)

	fg := r.Group("/FinalGrade")
	fg.Get("/get-sync/:section_id", finalGrade.GetSync)
	fg.Post("/sync-final-grade/:section_id", finalGrade.Sync)
	fg.Get("/", finalGrade.List)
	fg.Get("/:id", finalGrade.GetByID)
	fg.Post("/", finalGrade.Create)
	fg.Put("/:id", finalGrade.Update)
	fg.Delete("/:id", finalGrade.Delete)

	gpg := r.Group("/GradingPeriodGrade")
	gpg.Get("/get-sync/:section_id", periodGrade.GetSync)
	gpg.Post("/sync-grading-period-grade/:section_id", periodGrade.Sync)
	gpg.Get("/", periodGrade.List)
	gpg.Get("/:id", periodGrade.GetByID)
	gpg.Post("/", periodGrade.Create)
	gpg.Put("/:id", periodGrade.Update)
	gpg.Delete("/:id", periodGrade.Delete)

	gbs := r.Group("/GradeBookScore")
	gbs.Get("/get-sync/:section_id", score.GetSync)
	gbs.Post("/sync-score/:section_id", score.Sync)
	gbs.Get("/", score.List)
	gbs.Get("/:id", score.GetByID)
	gbs.Post("/", score.Create)
	gbs.Put("/:id", score.Update)
	gbs.Delete("/:id", score.Delete)
}
