// file: internals/features/grading/controller/grading_period_grade_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "campushub_backend/internals/features/grading/dto"
	model "campushub_backend/internals/features/grading/model"
	service "campushub_backend/internals/features/grading/service"
	helper "campushub_backend/internals/helpers"
	repository "campushub_backend/internals/repository"
)

type GradingPeriodGradeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.GradeService
	Repo      *repository.Repo[model.GradingPeriodGradeModel]
}

func NewGradingPeriodGradeController(db *gorm.DB, svc *service.GradeService) *GradingPeriodGradeController {
	return &GradingPeriodGradeController{
		DB:        db,
		Validator: validator.New(),
		Service:   svc,
		Repo:      repository.New[model.GradingPeriodGradeModel](db),
	}
}

// GET /api/GradingPeriodGrade
// Query (optional): page, rows, filter[enrollment_id],
// filter[gradebook_grading_period_id], filter[is_posted]
func (ctl *GradingPeriodGradeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.Repo.Query(c.UserContext()).Order("id ASC")
	if v := c.Query("filter[enrollment_id]"); v != "" {
		q = q.Where("enrollment_id = ?", v)
	}
	if v := c.Query("filter[gradebook_grading_period_id]"); v != "" {
		q = q.Where("gradebook_grading_period_id = ?", v)
	}
	if v := c.Query("filter[is_posted]"); v != "" {
		q = q.Where("is_posted = ?", v == "true")
	}

	var rows []model.GradingPeriodGradeModel
	pagination, err := ctl.Repo.Paginate(q, paging, &rows)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"grading_period_grades": rows,
		"pagination":            pagination,
	})
}

// GET /api/GradingPeriodGrade/:id
func (ctl *GradingPeriodGradeController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	row, err := ctl.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", row)
}

// POST /api/GradingPeriodGrade
func (ctl *GradingPeriodGradeController) Create(c *fiber.Ctx) error {
	var req dto.CreateGradingPeriodGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.GradingPeriodGradeModel{
		GradebookGradingPeriodID: req.GradebookGradingPeriodID,
		EnrollmentID:             req.EnrollmentID,
		Grade:                    req.Grade,
		IsPosted:                 req.IsPosted,
	}
	if err := ctl.Repo.Create(c.UserContext(), &row); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Grading period grade created", row)
}

// PUT /api/GradingPeriodGrade/:id
func (ctl *GradingPeriodGradeController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateGradingPeriodGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Grade != nil {
		updates["grade"] = *req.Grade
	}
	if req.IsPosted != nil {
		updates["is_posted"] = *req.IsPosted
	}

	row, err := ctl.Repo.Update(c.UserContext(), id, updates)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Grading period grade updated", row)
}

// DELETE /api/GradingPeriodGrade/:id
func (ctl *GradingPeriodGradeController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Grading period grade deleted", nil)
}

// GET /api/GradingPeriodGrade/get-sync/:section_id
// The densified (enrollment x period) sheet with recommended grades rolled
// up from raw scores.
func (ctl *GradingPeriodGradeController) GetSync(c *fiber.Ctx) error {
	sectionID, err := parseIDParam(c, "section_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	rows, err := ctl.Service.GetGradingPeriodGradeSync(c.UserContext(), sectionID)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", rows)
}

// POST /api/GradingPeriodGrade/sync-grading-period-grade/:section_id
func (ctl *GradingPeriodGradeController) Sync(c *fiber.Ctx) error {
	if _, err := parseIDParam(c, "section_id"); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var items []dto.GradingPeriodGradeSyncItem
	if err := c.BodyParser(&items); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	for _, it := range items {
		if err := ctl.Validator.Struct(it); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	synced, err := ctl.Service.SyncGradingPeriodGrades(c.UserContext(), items)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Grading period grades synced", synced)
}
