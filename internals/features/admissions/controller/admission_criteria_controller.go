// file: internals/features/admissions/controller/admission_criteria_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "campushub_backend/internals/features/admissions/dto"
	model "campushub_backend/internals/features/admissions/model"
	helper "campushub_backend/internals/helpers"
	repository "campushub_backend/internals/repository"
)

type AdmissionCriteriaController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Repo      *repository.Repo[model.AdmissionCriteriaModel]
}

func NewAdmissionCriteriaController(db *gorm.DB) *AdmissionCriteriaController {
	return &AdmissionCriteriaController{
		DB:        db,
		Validator: validator.New(),
		Repo:      repository.New[model.AdmissionCriteriaModel](db),
	}
}

// GET /api/AdmissionCriteria
func (ctl *AdmissionCriteriaController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.Repo.Query(c.UserContext()).Order("id ASC")
	if v := c.Query("search"); v != "" {
		q = q.Where("title ILIKE ?", "%"+v+"%")
	}

	var rows []model.AdmissionCriteriaModel
	pagination, err := ctl.Repo.Paginate(q, paging, &rows)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"admission_criteria": rows,
		"pagination":         pagination,
	})
}

// GET /api/AdmissionCriteria/:id
func (ctl *AdmissionCriteriaController) GetByID(c *fiber.Ctx) error {
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

// POST /api/AdmissionCriteria
func (ctl *AdmissionCriteriaController) Create(c *fiber.Ctx) error {
	var req dto.CreateAdmissionCriteriaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.AdmissionCriteriaModel{Title: req.Title, Weight: req.Weight}
	if err := ctl.Repo.Create(c.UserContext(), &row); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Admission criteria created", row)
}

// PUT /api/AdmissionCriteria/:id
func (ctl *AdmissionCriteriaController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateAdmissionCriteriaRequest
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
	return helper.Success(c, "Admission criteria updated", row)
}

// DELETE /api/AdmissionCriteria/:id
func (ctl *AdmissionCriteriaController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Admission criteria deleted", nil)
}
