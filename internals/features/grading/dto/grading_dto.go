// file: internals/features/grading/dto/grading_dto.go
package dto

/* ========================================================
   Sync views (densified grids for the grading UI)
======================================================== */

// FinalGradeSyncRow is one line of the final-grade sheet: one per active
// enrollment, persisted or not. ID is nil when no final_grade row exists yet.
type FinalGradeSyncRow struct {
	ID               *uint   `json:"id"`
	EnrollmentID     uint    `json:"enrollment_id"`
	Grade            float64 `json:"grade"`
	RecommendedGrade float64 `json:"recommended_grade"`
	CreditedUnits    int     `json:"credited_units"`
	IsOverridden     bool    `json:"is_overridden"`
	IsPosted         bool    `json:"is_posted"`
	IsPassed         bool    `json:"is_passed"`
}

// GradingPeriodGradeSyncRow is one line of the per-period sheet: one per
// (active enrollment, grading period) pair.
type GradingPeriodGradeSyncRow struct {
	ID                       *uint   `json:"id"`
	GradebookGradingPeriodID uint    `json:"gradebook_grading_period_id"`
	EnrollmentID             uint    `json:"enrollment_id"`
	Grade                    float64 `json:"grade"`
	RecommendedGrade         float64 `json:"recommended_grade"`
	IsOverridden             bool    `json:"is_overridden"`
	IsPosted                 bool    `json:"is_posted"`
}

// GradeBookScoreSyncRow is one cell of the raw-score sheet: one per
// (active enrollment, item detail) pair. Missing scores come back as 0.
type GradeBookScoreSyncRow struct {
	ID                    *uint   `json:"id"`
	GradebookItemDetailID uint    `json:"gradebook_item_detail_id"`
	EnrollmentID          uint    `json:"enrollment_id"`
	Score                 float64 `json:"score"`
}

/* ========================================================
   Sync writes (create-or-update batches)
======================================================== */

// FinalGradeSyncItem: id present -> update that row, id absent -> insert.
type FinalGradeSyncItem struct {
	ID            *uint   `json:"id"`
	EnrollmentID  uint    `json:"enrollment_id" validate:"required"`
	Grade         float64 `json:"grade" validate:"min=0"`
	CreditedUnits int     `json:"credited_units" validate:"min=0"`
	IsPosted      bool    `json:"is_posted"`
}

type GradingPeriodGradeSyncItem struct {
	ID                       *uint   `json:"id"`
	GradebookGradingPeriodID uint    `json:"gradebook_grading_period_id" validate:"required"`
	EnrollmentID             uint    `json:"enrollment_id" validate:"required"`
	Grade                    float64 `json:"grade" validate:"min=0"`
	IsPosted                 bool    `json:"is_posted"`
}

type GradeBookScoreSyncItem struct {
	ID                    *uint   `json:"id"`
	GradebookItemDetailID uint    `json:"gradebook_item_detail_id" validate:"required"`
	EnrollmentID          uint    `json:"enrollment_id" validate:"required"`
	Score                 float64 `json:"score" validate:"min=0"`
}

/* ========================================================
   CRUD requests
======================================================== */

type CreateFinalGradeRequest struct {
	EnrollmentID  uint    `json:"enrollment_id" validate:"required"`
	Grade         float64 `json:"grade" validate:"min=0"`
	CreditedUnits int     `json:"credited_units" validate:"min=0"`
	IsPosted      bool    `json:"is_posted"`
}

type UpdateFinalGradeRequest struct {
	Grade         *float64 `json:"grade" validate:"omitempty,min=0"`
	CreditedUnits *int     `json:"credited_units" validate:"omitempty,min=0"`
	IsPosted      *bool    `json:"is_posted"`
}

type CreateGradingPeriodGradeRequest struct {
	GradebookGradingPeriodID uint    `json:"gradebook_grading_period_id" validate:"required"`
	EnrollmentID             uint    `json:"enrollment_id" validate:"required"`
	Grade                    float64 `json:"grade" validate:"min=0"`
	IsPosted                 bool    `json:"is_posted"`
}

type UpdateGradingPeriodGradeRequest struct {
	Grade    *float64 `json:"grade" validate:"omitempty,min=0"`
	IsPosted *bool    `json:"is_posted"`
}

type CreateGradeBookScoreRequest struct {
	GradebookItemDetailID uint    `json:"gradebook_item_detail_id" validate:"required"`
	EnrollmentID          uint    `json:"enrollment_id" validate:"required"`
	Score                 float64 `json:"score" validate:"min=0"`
}

type UpdateGradeBookScoreRequest struct {
	Score *float64 `json:"score" validate:"omitempty,min=0"`
}
