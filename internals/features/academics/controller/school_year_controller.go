// file: internals/features/academics/controller/school_year_controller.go
package controller

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "campushub_backend/internals/features/academics/dto"
	model "campushub_backend/internals/features/academics/model"
	helper "campushub_backend/internals/helpers"
	repository "campushub_backend/internals/repository"
)

type SchoolYearController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Repo      *repository.Repo[model.SchoolYearModel]
}

func NewSchoolYearController(db *gorm.DB) *SchoolYearController {
	return &SchoolYearController{
		DB:        db,
		Validator: validator.New(),
		Repo:      repository.New[model.SchoolYearModel](db),
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

func mustDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// GET /api/SchoolYear
func (ctl *SchoolYearController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.Repo.Query(c.UserContext()).Order("start_date DESC")
	if v := c.Query("search"); v != "" {
		q = q.Where("school_year_code ILIKE ? OR name ILIKE ?", "%"+v+"%", "%"+v+"%")
	}
	if v := c.Query("filter[is_active]"); v != "" {
		q = q.Where("is_active = ?", v == "true")
	}

	var rows []model.SchoolYearModel
	pagination, err := ctl.Repo.Paginate(q, paging, &rows)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"school_years": rows,
		"pagination":   pagination,
	})
}

// GET /api/SchoolYear/:id
func (ctl *SchoolYearController) GetByID(c *fiber.Ctx) error {
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

// POST /api/SchoolYear
func (ctl *SchoolYearController) Create(c *fiber.Ctx) error {
	var req dto.CreateSchoolYearRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	startDate := mustDate(req.StartDate)
	endDate := mustDate(req.EndDate)
	if endDate.Before(startDate) {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "End date must be after the start date")
	}

	row := model.SchoolYearModel{
		SchoolYearCode: req.SchoolYearCode,
		Name:           req.Name,
		StartDate:      startDate,
		EndDate:        endDate,
		IsActive:       req.IsActive,
	}
	if err := ctl.Repo.Create(c.UserContext(), &row); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "School year created", row)
}

// PUT /api/SchoolYear/:id
func (ctl *SchoolYearController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateSchoolYearRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.SchoolYearCode != nil {
		updates["school_year_code"] = *req.SchoolYearCode
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.StartDate != nil {
		updates["start_date"] = mustDate(*req.StartDate)
	}
	if req.EndDate != nil {
		updates["end_date"] = mustDate(*req.EndDate)
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	row, err := ctl.Repo.Update(c.UserContext(), id, updates)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "School year updated", row)
}

// DELETE /api/SchoolYear/:id
func (ctl *SchoolYearController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "School year deleted", nil)
}
