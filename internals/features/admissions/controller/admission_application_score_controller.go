// file: internals/features/admissions/controller/admission_application_score_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "campushub_backend/internals/features/admissions/dto"
	model "campushub_backend/internals/features/admissions/model"
	service "campushub_backend/internals/features/admissions/service"
	helper "campushub_backend/internals/helpers"
	repository "campushub_backend/internals/repository"
)

type AdmissionApplicationScoreController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.ScoreService
	Repo      *repository.Repo[model.AdmissionApplicationScoreModel]
}

func NewAdmissionApplicationScoreController(db *gorm.DB) *AdmissionApplicationScoreController {
	return &AdmissionApplicationScoreController{
		DB:        db,
		Validator: validator.New(),
		Service:   service.NewScoreService(db),
		Repo:      repository.New[model.AdmissionApplicationScoreModel](db),
	}
}

// GET /api/AdmissionApplicationScore
func (ctl *AdmissionApplicationScoreController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.Repo.Query(c.UserContext()).Order("id ASC")
	if v := c.Query("filter[admission_application_id]"); v != "" {
		q = q.Where("admission_application_id = ?", v)
	}
	if v := c.Query("filter[admission_criteria_id]"); v != "" {
		q = q.Where("admission_criteria_id = ?", v)
	}

	var rows []model.AdmissionApplicationScoreModel
	pagination, err := ctl.Repo.Paginate(q, paging, &rows)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"admission_application_scores": rows,
		"pagination":                   pagination,
	})
}

// GET /api/AdmissionApplicationScore/:id
func (ctl *AdmissionApplicationScoreController) GetByID(c *fiber.Ctx) error {
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

// POST /api/AdmissionApplicationScore/createOrUpdateMultiple
// Each element upserts by (admission_application_id, admission_criteria_id).
// The whole batch commits or none of it does.
func (ctl *AdmissionApplicationScoreController) CreateOrUpdateMultiple(c *fiber.Ctx) error {
	var items []dto.AdmissionApplicationScoreItem
	if err := c.BodyParser(&items); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if len(items) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Request body must be a non-empty array")
	}
	for _, it := range items {
		if err := ctl.Validator.Struct(it); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	rows, err := ctl.Service.CreateOrUpdateMultiple(c.UserContext(), items)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Admission application scores synced", rows)
}

// DELETE /api/AdmissionApplicationScore/:id
func (ctl *AdmissionApplicationScoreController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Admission application score deleted", nil)
}
