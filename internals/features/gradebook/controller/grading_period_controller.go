// file: internals/features/gradebook/controller/grading_period_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "campushub_backend/internals/features/gradebook/dto"
	model "campushub_backend/internals/features/gradebook/model"
	helper "campushub_backend/internals/helpers"
	repository "campushub_backend/internals/repository"
)

type GradingPeriodController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Repo      *repository.Repo[model.GradeBookGradingPeriodModel]
}

func NewGradingPeriodController(db *gorm.DB) *GradingPeriodController {
	return &GradingPeriodController{
		DB:        db,
		Validator: validator.New(),
		Repo:      repository.New[model.GradeBookGradingPeriodModel](db),
	}
}

// GET /api/GradeBookGradingPeriod
func (ctl *GradingPeriodController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.Repo.Query(c.UserContext()).Order("id ASC")
	if v := c.Query("filter[gradebook_id]"); v != "" {
		q = q.Where("gradebook_id = ?", v)
	}

	var rows []model.GradeBookGradingPeriodModel
	pagination, err := ctl.Repo.Paginate(q, paging, &rows)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"grading_periods": rows,
		"pagination":      pagination,
	})
}

// GET /api/GradeBookGradingPeriod/:id
func (ctl *GradingPeriodController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	row, err := ctl.Repo.GetByID(c.UserContext(), id, "Items", "Items.Details")
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", row)
}

// POST /api/GradeBookGradingPeriod
func (ctl *GradingPeriodController) Create(c *fiber.Ctx) error {
	var req dto.CreateGradingPeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.GradeBookGradingPeriodModel{
		GradebookID: req.GradebookID,
		Title:       req.Title,
		Weight:      req.Weight,
	}
	if err := ctl.Repo.Create(c.UserContext(), &row); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Grading period created", row)
}

// PUT /api/GradeBookGradingPeriod/:id
func (ctl *GradingPeriodController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateGradingPeriodRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Weight != nil {
		updates["weight"] = *req.Weight
	}

	row, err := ctl.Repo.Update(c.UserContext(), id, updates)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Grading period updated", row)
}

// DELETE /api/GradeBookGradingPeriod/:id
func (ctl *GradingPeriodController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Grading period deleted", nil)
}
