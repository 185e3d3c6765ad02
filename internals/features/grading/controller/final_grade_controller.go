// file: internals/features/grading/controller/final_grade_controller.go
package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "campushub_backend/internals/features/grading/dto"
	model "campushub_backend/internals/features/grading/model"
	service "campushub_backend/internals/features/grading/service"
	helper "campushub_backend/internals/helpers"
	repository "campushub_backend/internals/repository"
)

/* ========================================================
   Controller
======================================================== */
type FinalGradeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.GradeService
	Repo      *repository.Repo[model.FinalGradeModel]
}

func NewFinalGradeController(db *gorm.DB, svc *service.GradeService) *FinalGradeController {
	return &FinalGradeController{
		DB:        db,
		Validator: validator.New(),
		Service:   svc,
		Repo:      repository.New[model.FinalGradeModel](db),
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

/* ========================================================
   Handlers
======================================================== */

// GET /api/FinalGrade
// Query (optional): page, rows, filter[enrollment_id], filter[is_posted]
func (ctl *FinalGradeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.Repo.Query(c.UserContext()).Order("id ASC")
	if v := c.Query("filter[enrollment_id]"); v != "" {
		q = q.Where("enrollment_id = ?", v)
	}
	if v := c.Query("filter[is_posted]"); v != "" {
		q = q.Where("is_posted = ?", v == "true")
	}

	var rows []model.FinalGradeModel
	pagination, err := ctl.Repo.Paginate(q, paging, &rows)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"final_grades": rows,
		"pagination":   pagination,
	})
}

// GET /api/FinalGrade/:id
func (ctl *FinalGradeController) GetByID(c *fiber.Ctx) error {
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

// POST /api/FinalGrade
func (ctl *FinalGradeController) Create(c *fiber.Ctx) error {
	var req dto.CreateFinalGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.FinalGradeModel{
		EnrollmentID:  req.EnrollmentID,
		Grade:         req.Grade,
		CreditedUnits: req.CreditedUnits,
		IsPosted:      req.IsPosted,
	}
	if err := ctl.Repo.Create(c.UserContext(), &row); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Final grade created", row)
}

// PUT /api/FinalGrade/:id
func (ctl *FinalGradeController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateFinalGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Grade != nil {
		updates["grade"] = *req.Grade
	}
	if req.CreditedUnits != nil {
		updates["credited_units"] = *req.CreditedUnits
	}
	if req.IsPosted != nil {
		updates["is_posted"] = *req.IsPosted
	}

	row, err := ctl.Repo.Update(c.UserContext(), id, updates)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Final grade updated", row)
}

// DELETE /api/FinalGrade/:id
func (ctl *FinalGradeController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Final grade deleted", nil)
}

// GET /api/FinalGrade/get-sync/:section_id
// One row per active enrollment: stored override or the computed
// recommendation, never a gap.
func (ctl *FinalGradeController) GetSync(c *fiber.Ctx) error {
	sectionID, err := parseIDParam(c, "section_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	rows, err := ctl.Service.GetFinalGradeSync(c.UserContext(), sectionID)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", rows)
}

// POST /api/FinalGrade/sync-final-grade/:section_id
func (ctl *FinalGradeController) Sync(c *fiber.Ctx) error {
	if _, err := parseIDParam(c, "section_id"); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var items []dto.FinalGradeSyncItem
	if err := c.BodyParser(&items); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	for _, it := range items {
		if err := ctl.Validator.Struct(it); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	synced, err := ctl.Service.SyncFinalGrades(c.UserContext(), items)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Final grades synced", synced)
}
