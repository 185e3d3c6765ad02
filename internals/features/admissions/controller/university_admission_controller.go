// file: internals/features/admissions/controller/university_admission_controller.go
package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "campushub_backend/internals/features/admissions/dto"
	model "campushub_backend/internals/features/admissions/model"
	service "campushub_backend/internals/features/admissions/service"
	helper "campushub_backend/internals/helpers"
	repository "campushub_backend/internals/repository"
)

type UniversityAdmissionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.AdmissionService
	Repo      *repository.Repo[model.UniversityAdmissionModel]
}

func NewUniversityAdmissionController(db *gorm.DB) *UniversityAdmissionController {
	return &UniversityAdmissionController{
		DB:        db,
		Validator: validator.New(),
		Service:   service.NewAdmissionService(db),
		Repo:      repository.New[model.UniversityAdmissionModel](db),
	}
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" is not a valid id")
	}
	return uint(id), nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// admissionDomainError maps the service's rule violations onto response
// codes: window violations are 422, the one-per-school-year rule is 409.
func admissionDomainError(c *fiber.Ctx, err error) error {
	var windowErr *service.WindowError
	switch {
	case errors.Is(err, service.ErrSchoolYearNotFound):
		return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrAdmissionExists):
		return helper.Error(c, fiber.StatusConflict, err.Error())
	case errors.As(err, &windowErr):
		return helper.Error(c, fiber.StatusUnprocessableEntity, windowErr.Message)
	default:
		return helper.FromDBError(c, err)
	}
}

// GET /api/UniversityAdmission
func (ctl *UniversityAdmissionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.Repo.Query(c.UserContext()).Preload("SchoolYear").Order("id ASC")
	if v := c.Query("filter[school_year_id]"); v != "" {
		q = q.Where("school_year_id = ?", v)
	}

	var rows []model.UniversityAdmissionModel
	pagination, err := ctl.Repo.Paginate(q, paging, &rows)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"university_admissions": rows,
		"pagination":            pagination,
	})
}

// GET /api/UniversityAdmission/:id
func (ctl *UniversityAdmissionController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	row, err := ctl.Repo.GetByID(c.UserContext(), id, "SchoolYear")
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", row)
}

// POST /api/UniversityAdmission
func (ctl *UniversityAdmissionController) Create(c *fiber.Ctx) error {
	var req dto.CreateUniversityAdmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	openDate, _ := parseDate(req.OpenDate)
	closeDate, _ := parseDate(req.CloseDate)

	if err := ctl.Service.ValidateAdmission(c.UserContext(), req.SchoolYearID, openDate, closeDate, 0); err != nil {
		return admissionDomainError(c, err)
	}

	row := model.UniversityAdmissionModel{
		SchoolYearID:   req.SchoolYearID,
		OpenDate:       openDate,
		CloseDate:      closeDate,
		IsOpenOverride: req.IsOpenOverride,
	}
	if err := ctl.Repo.Create(c.UserContext(), &row); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "University admission created", row)
}

// PUT /api/UniversityAdmission/:id
func (ctl *UniversityAdmissionController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateUniversityAdmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	openDate, _ := parseDate(req.OpenDate)
	closeDate, _ := parseDate(req.CloseDate)

	if err := ctl.Service.ValidateAdmission(c.UserContext(), req.SchoolYearID, openDate, closeDate, id); err != nil {
		return admissionDomainError(c, err)
	}

	updates := map[string]interface{}{
		"school_year_id": req.SchoolYearID,
		"open_date":      openDate,
		"close_date":     closeDate,
	}
	if req.IsOpenOverride != nil {
		updates["is_open_override"] = *req.IsOpenOverride
	}

	row, err := ctl.Repo.Update(c.UserContext(), id, updates)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "University admission updated", row)
}

// DELETE /api/UniversityAdmission/:id
func (ctl *UniversityAdmissionController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "University admission deleted", nil)
}

// GET /api/UniversityAdmission/current-invitation/:user_id
// data is null when every open admission has already been applied to.
func (ctl *UniversityAdmissionController) CurrentInvitation(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	admission, err := ctl.Service.CurrentInvitation(c.UserContext(), userID)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", admission)
}
