// file: internals/features/gradebook/controller/gradebook_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "campushub_backend/internals/features/gradebook/dto"
	model "campushub_backend/internals/features/gradebook/model"
	service "campushub_backend/internals/features/gradebook/service"
	helper "campushub_backend/internals/helpers"
	repository "campushub_backend/internals/repository"
)

type GradeBookController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Templates *service.TemplateService
	Repo      *repository.Repo[model.GradeBookModel]
}

func NewGradeBookController(db *gorm.DB) *GradeBookController {
	return &GradeBookController{
		DB:        db,
		Validator: validator.New(),
		Templates: service.NewTemplateService(db),
		Repo:      repository.New[model.GradeBookModel](db),
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

// GET /api/GradeBook
// Query (optional): search, page, rows, filter[section_id],
// filter[academic_program_id], filter[is_template]
func (ctl *GradeBookController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.Repo.Query(c.UserContext()).Order("id ASC")
	if v := c.Query("search"); v != "" {
		q = q.Where("title ILIKE ?", "%"+v+"%")
	}
	if v := c.Query("filter[section_id]"); v != "" {
		q = q.Where("section_id = ?", v)
	}
	if v := c.Query("filter[academic_program_id]"); v != "" {
		q = q.Where("academic_program_id = ?", v)
	}
	if v := c.Query("filter[is_template]"); v != "" {
		q = q.Where("is_template = ?", v == "true")
	}

	var rows []model.GradeBookModel
	pagination, err := ctl.Repo.Paginate(q, paging, &rows)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"gradebooks": rows,
		"pagination": pagination,
	})
}

// GET /api/GradeBook/:id
// The full structure plus the fully_setup weight-sum check.
func (ctl *GradeBookController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	row, err := ctl.Repo.GetByID(c.UserContext(), id,
		"GradingPeriods", "GradingPeriods.Items", "GradingPeriods.Items.Details")
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", dto.NewGradeBookResponse(row))
}

// POST /api/GradeBook
func (ctl *GradeBookController) Create(c *fiber.Ctx) error {
	var req dto.CreateGradeBookRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.GradeBookModel{
		SectionID:         req.SectionID,
		AcademicProgramID: req.AcademicProgramID,
		IsTemplate:        req.IsTemplate,
		Title:             req.Title,
	}
	if err := ctl.Repo.Create(c.UserContext(), &row); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Gradebook created", row)
}

// PUT /api/GradeBook/:id
func (ctl *GradeBookController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateGradeBookRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.SectionID != nil {
		updates["section_id"] = *req.SectionID
	}
	if req.IsTemplate != nil {
		updates["is_template"] = *req.IsTemplate
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}

	row, err := ctl.Repo.Update(c.UserContext(), id, updates)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Gradebook updated", row)
}

// DELETE /api/GradeBook/:id
func (ctl *GradeBookController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Gradebook deleted", nil)
}

// POST /api/GradeBook/from-template/:section_id
func (ctl *GradeBookController) CreateFromTemplate(c *fiber.Ctx) error {
	sectionID, err := parseIDParam(c, "section_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.CreateFromTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	clone, err := ctl.Templates.CloneToSection(c.UserContext(), req.TemplateID, sectionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotATemplate):
			return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, service.ErrSectionHasGradebook):
			return helper.Error(c, fiber.StatusConflict, err.Error())
		default:
			return helper.FromDBError(c, err)
		}
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Gradebook created from template", clone)
}
