// file: internals/features/gradebook/dto/gradebook_dto.go
package dto

import (
	model "campushub_backend/internals/features/gradebook/model"
)

type CreateGradeBookRequest struct {
	SectionID         *uint  `json:"section_id"`
	AcademicProgramID uint   `json:"academic_program_id" validate:"required"`
	IsTemplate        bool   `json:"is_template"`
	Title             string `json:"title" validate:"required,max=150"`
}

type UpdateGradeBookRequest struct {
	SectionID  *uint   `json:"section_id"`
	IsTemplate *bool   `json:"is_template"`
	Title      *string `json:"title" validate:"omitempty,max=150"`
}

// GradeBookResponse decorates the model with the weight-sum readiness check.
type GradeBookResponse struct {
	model.GradeBookModel
	FullySetup bool `json:"fully_setup"`
}

func NewGradeBookResponse(m *model.GradeBookModel) GradeBookResponse {
	return GradeBookResponse{
		GradeBookModel: *m,
		FullySetup:     m.FullySetup(),
	}
}

type CreateGradingPeriodRequest struct {
	GradebookID uint    `json:"gradebook_id" validate:"required"`
	Title       string  `json:"title" validate:"required,max=100"`
	Weight      float64 `json:"weight" validate:"min=0,max=100"`
}

type UpdateGradingPeriodRequest struct {
	Title  *string  `json:"title" validate:"omitempty,max=100"`
	Weight *float64 `json:"weight" validate:"omitempty,min=0,max=100"`
}

type CreateGradeBookItemRequest struct {
	GradebookGradingPeriodID uint    `json:"gradebook_grading_period_id" validate:"required"`
	Title                    string  `json:"title" validate:"required,max=100"`
	Weight                   float64 `json:"weight" validate:"min=0,max=100"`
}

type UpdateGradeBookItemRequest struct {
	Title  *string  `json:"title" validate:"omitempty,max=100"`
	Weight *float64 `json:"weight" validate:"omitempty,min=0,max=100"`
}

type CreateGradeBookItemDetailRequest struct {
	GradebookItemID uint    `json:"gradebook_item_id" validate:"required"`
	Title           string  `json:"title" validate:"required,max=100"`
	MinScore        float64 `json:"min_score" validate:"min=0"`
	MaxScore        float64 `json:"max_score" validate:"gtefield=MinScore"`
	Weight          float64 `json:"weight" validate:"min=0,max=100"`
}

type UpdateGradeBookItemDetailRequest struct {
	Title    *string  `json:"title" validate:"omitempty,max=100"`
	MinScore *float64 `json:"min_score" validate:"omitempty,min=0"`
	MaxScore *float64 `json:"max_score"`
	Weight   *float64 `json:"weight" validate:"omitempty,min=0,max=100"`
}

type CreateFromTemplateRequest struct {
	TemplateID uint `json:"template_id" validate:"required"`
}
