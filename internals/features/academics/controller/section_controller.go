// file: internals/features/academics/controller/section_controller.go
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

type SectionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Repo      *repository.Repo[model.SectionModel]
}

func NewSectionController(db *gorm.DB) *SectionController {
	return &SectionController{
		DB:        db,
		Validator: validator.New(),
		Repo:      repository.New[model.SectionModel](db),
	}
}

// GET /api/Section
func (ctl *SectionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.Repo.Query(c.UserContext()).
		Preload("CurriculumDetail").
		Preload("SchoolYear").
		Order("id ASC")
	if v := c.Query("search"); v != "" {
		q = q.Where("section_ref ILIKE ? OR section_name ILIKE ?", "%"+v+"%", "%"+v+"%")
	}
	if v := c.Query("filter[school_year_id]"); v != "" {
		q = q.Where("school_year_id = ?", v)
	}
	if v := c.Query("filter[curriculum_detail_id]"); v != "" {
		q = q.Where("curriculum_detail_id = ?", v)
	}
	if v := c.Query("filter[is_posted]"); v != "" {
		q = q.Where("is_posted = ?", v == "true")
	}

	var rows []model.SectionModel
	pagination, err := ctl.Repo.Paginate(q, paging, &rows)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"sections":   rows,
		"pagination": pagination,
	})
}

// GET /api/Section/:id
func (ctl *SectionController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	row, err := ctl.Repo.GetByID(c.UserContext(), id, "CurriculumDetail", "SchoolYear")
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", row)
}

// POST /api/Section
func (ctl *SectionController) Create(c *fiber.Ctx) error {
	var req dto.CreateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.SectionModel{
		CurriculumDetailID: req.CurriculumDetailID,
		SchoolYearID:       req.SchoolYearID,
		SectionRef:         req.SectionRef,
		SectionName:        req.SectionName,
		MinStudents:        req.MinStudents,
		MaxStudents:        req.MaxStudents,
	}
	if err := ctl.Repo.Create(c.UserContext(), &row); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Section created", row)
}

// PUT /api/Section/:id
func (ctl *SectionController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.SectionRef != nil {
		updates["section_ref"] = *req.SectionRef
	}
	if req.SectionName != nil {
		updates["section_name"] = *req.SectionName
	}
	if req.MinStudents != nil {
		updates["min_students"] = *req.MinStudents
	}
	if req.MaxStudents != nil {
		updates["max_students"] = *req.MaxStudents
	}
	if req.IsPosted != nil {
		updates["is_posted"] = *req.IsPosted
	}

	row, err := ctl.Repo.Update(c.UserContext(), id, updates)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Section updated", row)
}

// DELETE /api/Section/:id
func (ctl *SectionController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Section deleted", nil)
}
