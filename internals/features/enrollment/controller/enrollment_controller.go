// file: internals/features/enrollment/controller/enrollment_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "campushub_backend/internals/features/enrollment/dto"
	model "campushub_backend/internals/features/enrollment/model"
	service "campushub_backend/internals/features/enrollment/service"
	helper "campushub_backend/internals/helpers"
	repository "campushub_backend/internals/repository"
)

type EnrollmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.EnrollmentService
	Repo      *repository.Repo[model.EnrollmentModel]
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{
		DB:        db,
		Validator: validator.New(),
		Service:   service.NewEnrollmentService(db),
		Repo:      repository.New[model.EnrollmentModel](db),
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

// GET /api/Enrollment
// Query (optional): page, rows, filter[user_id], filter[section_id]
func (ctl *EnrollmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.Repo.Query(c.UserContext()).
		Preload("Section").
		Preload("EnrollmentLogs").
		Order("id ASC")
	if v := c.Query("filter[user_id]"); v != "" {
		q = q.Where("user_id = ?", v)
	}
	if v := c.Query("filter[section_id]"); v != "" {
		q = q.Where("section_id = ?", v)
	}

	var rows []model.EnrollmentModel
	pagination, err := ctl.Repo.Paginate(q, paging, &rows)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"enrollments": dto.NewEnrollmentResponses(rows),
		"pagination":  pagination,
	})
}

// GET /api/Enrollment/:id
func (ctl *EnrollmentController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	row, err := ctl.Repo.GetByID(c.UserContext(), id,
		"Section", "EnrollmentLogs", "GradebookScores", "GradingPeriodGrades", "FinalGrade")
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", dto.NewEnrollmentResponse(row))
}

// POST /api/Enrollment
func (ctl *EnrollmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.EnrollmentModel{UserID: req.UserID, SectionID: req.SectionID}
	if err := ctl.Repo.Create(c.UserContext(), &row); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Enrollment created", row)
}

// POST /api/Enrollment/create-multiple
// Bulk enroll: the whole batch commits or none of it does.
func (ctl *EnrollmentController) CreateMultiple(c *fiber.Ctx) error {
	var reqs []dto.CreateEnrollmentRequest
	if err := c.BodyParser(&reqs); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if len(reqs) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Request body must be a non-empty array")
	}
	for _, req := range reqs {
		if err := ctl.Validator.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	created, err := ctl.Service.CreateMultiple(c.UserContext(), reqs)
	if err != nil {
		if errors.Is(err, service.ErrSectionFull) {
			return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.FromDBError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Enrollments created", created)
}

// PUT /api/Enrollment/:id
func (ctl *EnrollmentController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.UserID != nil {
		updates["user_id"] = *req.UserID
	}
	if req.SectionID != nil {
		updates["section_id"] = *req.SectionID
	}

	row, err := ctl.Repo.Update(c.UserContext(), id, updates)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Enrollment updated", row)
}

// DELETE /api/Enrollment/:id
func (ctl *EnrollmentController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Enrollment deleted", nil)
}

// GET /api/Enrollment/academic-program/scholastic-filter/:academic_program_id
// Query: filter[school_year_id] (required), filter[latest_status] (optional)
func (ctl *EnrollmentController) ScholasticFilter(c *fiber.Ctx) error {
	programID, err := parseIDParam(c, "academic_program_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	schoolYearID, err := strconv.ParseUint(c.Query("filter[school_year_id]"), 10, 64)
	if err != nil || schoolYearID == 0 {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "School year ID is required")
	}
	latestStatus := c.Query("filter[latest_status]")

	resp, err := ctl.Service.ScholasticFilter(c.UserContext(), programID, latestStatus, uint(schoolYearID))
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", resp)
}

// GET /api/Enrollment/academic-program/grouped-by-user/:academic_program_id
// Query: filter[school_year_id], filter[year_order], filter[term_order]
// (all required), filter[latest_status] (optional), page, rows
func (ctl *EnrollmentController) GroupedByStudent(c *fiber.Ctx) error {
	programID, err := parseIDParam(c, "academic_program_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	schoolYearID, err := strconv.ParseUint(c.Query("filter[school_year_id]"), 10, 64)
	yearOrder, errYear := strconv.Atoi(c.Query("filter[year_order]"))
	termOrder, errTerm := strconv.Atoi(c.Query("filter[term_order]"))
	if err != nil || schoolYearID == 0 || errYear != nil || errTerm != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity,
			"School year ID, year order and term order are required")
	}
	latestStatus := c.Query("filter[latest_status]")
	paging := helper.ResolvePaging(c, 10, 100)

	grouped, pagination, err := ctl.Service.GroupedByStudent(c.UserContext(),
		programID, latestStatus, uint(schoolYearID), yearOrder, termOrder, paging)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"students":   grouped,
		"pagination": pagination,
	})
}
