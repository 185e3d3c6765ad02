// file: internals/features/admissions/controller/admission_application_controller.go
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

type AdmissionApplicationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Repo      *repository.Repo[model.AdmissionApplicationModel]
}

func NewAdmissionApplicationController(db *gorm.DB) *AdmissionApplicationController {
	return &AdmissionApplicationController{
		DB:        db,
		Validator: validator.New(),
		Repo:      repository.New[model.AdmissionApplicationModel](db),
	}
}

// GET /api/AdmissionApplication
func (ctl *AdmissionApplicationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.Repo.Query(c.UserContext()).Order("id ASC")
	if v := c.Query("search"); v != "" {
		q = q.Where("application_ref ILIKE ?", "%"+v+"%")
	}
	if v := c.Query("filter[university_admission_id]"); v != "" {
		q = q.Where("university_admission_id = ?", v)
	}
	if v := c.Query("filter[user_id]"); v != "" {
		q = q.Where("user_id = ?", v)
	}

	var rows []model.AdmissionApplicationModel
	pagination, err := ctl.Repo.Paginate(q, paging, &rows)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"admission_applications": rows,
		"pagination":             pagination,
	})
}

// GET /api/AdmissionApplication/:id
func (ctl *AdmissionApplicationController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	row, err := ctl.Repo.GetByID(c.UserContext(), id, "Scores")
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", row)
}

// POST /api/AdmissionApplication
// A second application to the same admission by the same user is rejected.
func (ctl *AdmissionApplicationController) Create(c *fiber.Ctx) error {
	var req dto.CreateAdmissionApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	err := ctl.Repo.Query(c.UserContext()).
		Where("university_admission_id = ?", req.UniversityAdmissionID).
		Where("user_id = ?", req.UserID).
		Count(&count).Error
	if err != nil {
		return helper.FromDBError(c, err)
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusConflict, "User has already applied to this admission")
	}

	row := model.AdmissionApplicationModel{
		UniversityAdmissionID: req.UniversityAdmissionID,
		UserID:                req.UserID,
		ApplicationRef:        req.ApplicationRef,
	}
	if err := ctl.Repo.Create(c.UserContext(), &row); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Admission application created", row)
}

// PUT /api/AdmissionApplication/:id
func (ctl *AdmissionApplicationController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateAdmissionApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.ApplicationRef != nil {
		updates["application_ref"] = *req.ApplicationRef
	}

	row, err := ctl.Repo.Update(c.UserContext(), id, updates)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Admission application updated", row)
}

// DELETE /api/AdmissionApplication/:id
func (ctl *AdmissionApplicationController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Admission application deleted", nil)
}
