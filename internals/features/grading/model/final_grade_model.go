// file: internals/features/grading/model/final_grade_model.go
package model

import (
	"time"
)

// FinalGradeModel maps the `final_grade` table. A stored row is an explicit
// override of the computed recommended grade; without one the recommended
// grade stands.
type FinalGradeModel struct {
	ID uint `json:"id" gorm:"column:id;primaryKey"`

	EnrollmentID  uint    `json:"enrollment_id" gorm:"column:enrollment_id;not null;uniqueIndex:final_grade_unique"`
	Grade         float64 `json:"grade" gorm:"column:grade;type:numeric(10,2);not null"`
	CreditedUnits int     `json:"credited_units" gorm:"column:credited_units;not null;default:0"`
	IsPosted      bool    `json:"is_posted" gorm:"column:is_posted;not null;default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (FinalGradeModel) TableName() string {
	return "final_grade"
}
