// file: internals/features/academics/controller/curriculum_detail_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "campushub_backend/internals/features/academics/dto"
	model "campushub_backend/internals/features/academics/model"
	helper "campushub_backend/internals/helpers"
	repository "campushub_backend/internals/repository"
)

type CurriculumDetailController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Repo      *repository.Repo[model.CurriculumDetailModel]
}

func NewCurriculumDetailController(db *gorm.DB) *CurriculumDetailController {
	return &CurriculumDetailController{
		DB:        db,
		Validator: validator.New(),
		Repo:      repository.New[model.CurriculumDetailModel](db),
	}
}

// GET /api/CurriculumDetail
func (ctl *CurriculumDetailController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.Repo.Query(c.UserContext()).Order("year_order ASC, term_order ASC, id ASC")
	if v := c.Query("filter[academic_program_id]"); v != "" {
		q = q.Where("academic_program_id = ?", v)
	}
	if v := c.Query("filter[curriculum_id]"); v != "" {
		q = q.Where("curriculum_id = ?", v)
	}
	if v := c.Query("filter[year_order]"); v != "" {
		q = q.Where("year_order = ?", v)
	}
	if v := c.Query("filter[term_order]"); v != "" {
		q = q.Where("term_order = ?", v)
	}

	var rows []model.CurriculumDetailModel
	pagination, err := ctl.Repo.Paginate(q, paging, &rows)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"curriculum_details": rows,
		"pagination":         pagination,
	})
}

// GET /api/CurriculumDetail/:id
func (ctl *CurriculumDetailController) GetByID(c *fiber.Ctx) error {
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

// POST /api/CurriculumDetail
func (ctl *CurriculumDetailController) Create(c *fiber.Ctx) error {
	var req dto.CreateCurriculumDetailRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.CurriculumDetailModel{
		CurriculumID:      req.CurriculumID,
		CourseID:          req.CourseID,
		AcademicProgramID: req.AcademicProgramID,
		YearOrder:         req.YearOrder,
		TermOrder:         req.TermOrder,
		TermAlias:         req.TermAlias,
		IsIncludeGWA:      req.IsIncludeGWA,
	}
	if err := ctl.Repo.Create(c.UserContext(), &row); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Curriculum detail created", row)
}

// PUT /api/CurriculumDetail/:id
func (ctl *CurriculumDetailController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateCurriculumDetailRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.YearOrder != nil {
		updates["year_order"] = *req.YearOrder
	}
	if req.TermOrder != nil {
		updates["term_order"] = *req.TermOrder
	}
	if req.TermAlias != nil {
		updates["term_alias"] = *req.TermAlias
	}
	if req.IsIncludeGWA != nil {
		updates["is_include_gwa"] = *req.IsIncludeGWA
	}

	row, err := ctl.Repo.Update(c.UserContext(), id, updates)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Curriculum detail updated", row)
}

// DELETE /api/CurriculumDetail/:id
func (ctl *CurriculumDetailController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Curriculum detail deleted", nil)
}
