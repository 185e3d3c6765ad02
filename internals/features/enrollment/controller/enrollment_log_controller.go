// file: internals/features/enrollment/controller/enrollment_log_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "campushub_backend/internals/features/enrollment/dto"
	model "campushub_backend/internals/features/enrollment/model"
	helper "campushub_backend/internals/helpers"
	repository "campushub_backend/internals/repository"
)

type EnrollmentLogController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Repo      *repository.Repo[model.EnrollmentLogModel]
}

func NewEnrollmentLogController(db *gorm.DB) *EnrollmentLogController {
	return &EnrollmentLogController{
		DB:        db,
		Validator: validator.New(),
		Repo:      repository.New[model.EnrollmentLogModel](db),
	}
}

// GET /api/EnrollmentLog
func (ctl *EnrollmentLogController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.Repo.Query(c.UserContext()).Order("id ASC")
	if v := c.Query("filter[enrollment_id]"); v != "" {
		q = q.Where("enrollment_id = ?", v)
	}
	if v := c.Query("filter[user_id]"); v != "" {
		q = q.Where("user_id = ?", v)
	}
	if v := c.Query("filter[action]"); v != "" {
		q = q.Where("action = ?", v)
	}

	var rows []model.EnrollmentLogModel
	pagination, err := ctl.Repo.Paginate(q, paging, &rows)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"enrollment_logs": rows,
		"pagination":      pagination,
	})
}

// GET /api/EnrollmentLog/:id
func (ctl *EnrollmentLogController) GetByID(c *fiber.Ctx) error {
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

// POST /api/EnrollmentLog
// The trail is append-only. Duplicate (enrollment_id, action) pairs are
// rejected by the unique index and surface as 409.
func (ctl *EnrollmentLogController) Create(c *fiber.Ctx) error {
	var req dto.CreateEnrollmentLogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	action := model.EnrollmentLogAction(req.Action)
	if !action.Valid() {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Unknown action: "+req.Action)
	}

	row := model.EnrollmentLogModel{
		EnrollmentID:   req.EnrollmentID,
		UserID:         req.UserID,
		LoggedByUserID: req.LoggedByUserID,
		Action:         action,
		Meta:           req.Meta,
	}
	if err := ctl.Repo.Create(c.UserContext(), &row); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Enrollment log created", row)
}

// DELETE /api/EnrollmentLog/:id
func (ctl *EnrollmentLogController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Enrollment log deleted", nil)
}
