// file: internals/features/grading/model/grading_period_grade_model.go
package model

import (
	"time"
)

// GradingPeriodGradeModel maps the `grading_period_grade` table: the
// rolled-up grade of one enrollment in one grading period. Only posted rows
// contribute to the final grade.
type GradingPeriodGradeModel struct {
	ID uint `json:"id" gorm:"column:id;primaryKey"`

	GradebookGradingPeriodID uint    `json:"gradebook_grading_period_id" gorm:"column:gradebook_grading_period_id;not null;index"`
	EnrollmentID             uint    `json:"enrollment_id" gorm:"column:enrollment_id;not null;index"`
	Grade                    float64 `json:"grade" gorm:"column:grade;type:numeric(10,2);not null"`
	IsPosted                 bool    `json:"is_posted" gorm:"column:is_posted;not null;default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (GradingPeriodGradeModel) TableName() string {
	return "grading_period_grade"
}
