// file: internals/features/gradebook/controller/gradebook_item_detail_controller.go
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

type GradeBookItemDetailController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Repo      *repository.Repo[model.GradeBookItemDetailModel]
}

func NewGradeBookItemDetailController(db *gorm.DB) *GradeBookItemDetailController {
	return &GradeBookItemDetailController{
		DB:        db,
		Validator: validator.New(),
		Repo:      repository.New[model.GradeBookItemDetailModel](db),
	}
}

// GET /api/GradeBookItemDetail
func (ctl *GradeBookItemDetailController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.Repo.Query(c.UserContext()).Order("id ASC")
	if v := c.Query("filter[gradebook_item_id]"); v != "" {
		q = q.Where("gradebook_item_id = ?", v)
	}

	var rows []model.GradeBookItemDetailModel
	pagination, err := ctl.Repo.Paginate(q, paging, &rows)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"gradebook_item_details": rows,
		"pagination":             pagination,
	})
}

// GET /api/GradeBookItemDetail/:id
func (ctl *GradeBookItemDetailController) GetByID(c *fiber.Ctx) error {
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

// POST /api/GradeBookItemDetail
func (ctl *GradeBookItemDetailController) Create(c *fiber.Ctx) error {
	var req dto.CreateGradeBookItemDetailRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.GradeBookItemDetailModel{
		GradebookItemID: req.GradebookItemID,
		Title:           req.Title,
		MinScore:        req.MinScore,
		MaxScore:        req.MaxScore,
		Weight:          req.Weight,
	}
	if err := ctl.Repo.Create(c.UserContext(), &row); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Gradebook item detail created", row)
}

// PUT /api/GradeBookItemDetail/:id
func (ctl *GradeBookItemDetailController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateGradeBookItemDetailRequest
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
	if req.MinScore != nil {
		updates["min_score"] = *req.MinScore
	}
	if req.MaxScore != nil {
		updates["max_score"] = *req.MaxScore
	}
	if req.Weight != nil {
		updates["weight"] = *req.Weight
	}

	row, err := ctl.Repo.Update(c.UserContext(), id, updates)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Gradebook item detail updated", row)
}

// DELETE /api/GradeBookItemDetail/:id
func (ctl *GradeBookItemDetailController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Gradebook item detail deleted", nil)
}
