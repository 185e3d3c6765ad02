// file: internals/features/grading/controller/gradebook_score_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "campushub_backend/internals/features/grading/dto"
	model "campushub_backend/internals/features/grading/model"
	service "campushub_backend/internals/features/grading/service"
	helper "campushub_backend/internals/helpers"
	repository "campushub_backend/internals/repository"
)

type GradeBookScoreController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.GradeService
	Repo      *repository.Repo[model.GradeBookScoreModel]
}

func NewGradeBookScoreController(db *gorm.DB, svc *service.GradeService) *GradeBookScoreController {
	return &GradeBookScoreController{
		DB:        db,
		Validator: validator.New(),
		Service:   svc,
		Repo:      repository.New[model.GradeBookScoreModel](db),
	}
}

// GET /api/GradeBookScore
// Query (optional): page, rows, filter[enrollment_id],
// filter[gradebook_item_detail_id]
func (ctl *GradeBookScoreController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.Repo.Query(c.UserContext()).Order("id ASC")
	if v := c.Query("filter[enrollment_id]"); v != "" {
		q = q.Where("enrollment_id = ?", v)
	}
	if v := c.Query("filter[gradebook_item_detail_id]"); v != "" {
		q = q.Where("gradebook_item_detail_id = ?", v)
	}

	var rows []model.GradeBookScoreModel
	pagination, err := ctl.Repo.Paginate(q, paging, &rows)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", fiber.Map{
		"gradebook_scores": rows,
		"pagination":       pagination,
	})
}

// GET /api/GradeBookScore/:id
func (ctl *GradeBookScoreController) GetByID(c *fiber.Ctx) error {
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

// POST /api/GradeBookScore
func (ctl *GradeBookScoreController) Create(c *fiber.Ctx) error {
	var req dto.CreateGradeBookScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.GradeBookScoreModel{
		GradebookItemDetailID: req.GradebookItemDetailID,
		EnrollmentID:          req.EnrollmentID,
		Score:                 req.Score,
	}
	if err := ctl.Repo.Create(c.UserContext(), &row); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Score created", row)
}

// PUT /api/GradeBookScore/:id
func (ctl *GradeBookScoreController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateGradeBookScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Score != nil {
		updates["score"] = *req.Score
	}

	row, err := ctl.Repo.Update(c.UserContext(), id, updates)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Score updated", row)
}

// DELETE /api/GradeBookScore/:id
func (ctl *GradeBookScoreController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Score deleted", nil)
}

// GET /api/GradeBookScore/get-sync/:section_id
// The full score grid, zero-filled, so the grading UI never special-cases
// missing cells.
func (ctl *GradeBookScoreController) GetSync(c *fiber.Ctx) error {
	sectionID, err := parseIDParam(c, "section_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	rows, err := ctl.Service.GetGradeBookScoreSync(c.UserContext(), sectionID)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "OK", rows)
}

// POST /api/GradeBookScore/sync-score/:section_id
func (ctl *GradeBookScoreController) Sync(c *fiber.Ctx) error {
	if _, err := parseIDParam(c, "section_id"); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var items []dto.GradeBookScoreSyncItem
	if err := c.BodyParser(&items); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	for _, it := range items {
		if err := ctl.Validator.Struct(it); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	synced, err := ctl.Service.SyncGradeBookScores(c.UserContext(), items)
	if err != nil {
		return helper.FromDBError(c, err)
	}
	return helper.Success(c, "Scores synced", synced)
}
