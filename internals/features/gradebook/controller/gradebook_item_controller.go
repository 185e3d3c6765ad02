// file: internals/features/gradebook/controller/gradebook_item_controller.go
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

type GradeBookItemController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Repo      *repository.Repo[model.GradeBookItemModel]
}

func NewGradeBookItemController(db *gorm.DB) *GradeBookItemController {
	return &GradeBookItemController{
		DB:        db,
		Validator: validator.New(),
		Repo:      repository.New[model.GradeBookItemModel](db),
	}
}

// GET /api/GradeBookItem
func (ctl *GradeBookItemController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.Repo.Query(c.UserContext()).Order("id ASC")
	if v := c.Query("filter[gradebook_grading_period_id]"); v != "" {
		q = q.Where("gradebook_grading_period_id = ?", v)
	}

	var rows []model.GradeBookItemModel
	pagination, err := ctl.Repo.Paginate(q, paging, &rows)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"gradebook_items": rows,
		"pagination":      pagination,
	})
}

// GET /api/GradeBookItem/:id
func (ctl *GradeBookItemController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	row, err := ctl.Repo.GetByID(c.UserContext(), id, "Details")
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", row)
}

// POST /api/GradeBookItem
func (ctl *GradeBookItemController) Create(c *fiber.Ctx) error {
	var req dto.CreateGradeBookItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.GradeBookItemModel{
		GradebookGradingPeriodID: req.GradebookGradingPeriodID,
		Title:                    req.Title,
		Weight:                   req.Weight,
	}
	if err := ctl.Repo.Create(c.UserContext(), &row); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Gradebook item created", row)
}

// PUT /api/GradeBookItem/:id
func (ctl *GradeBookItemController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateGradeBookItemRequest
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
	return helper.Success(c, "Gradebook item updated", row)
}

// DELETE /api/GradeBookItem/:id
func (ctl *GradeBookItemController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Gradebook item deleted", nil)
}
