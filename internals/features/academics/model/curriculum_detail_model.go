// file: internals/features/academics/model/curriculum_detail_model.go
package model

import (
	"time"
)

// CurriculumDetailModel maps the `curriculum_detail` table. Read-side only
// here: the scholastic filters group enrollments by its year/term ordering.
type CurriculumDetailModel struct {
	ID uint `json:"id" gorm:"column:id;primaryKey"`

	CurriculumID      uint   `json:"curriculum_id" gorm:"column:curriculum_id;not null;index"`
	CourseID          uint   `json:"course_id" gorm:"column:course_id;not null;index"`
	AcademicProgramID uint   `json:"academic_program_id" gorm:"column:academic_program_id;not null;index"`
	YearOrder         int    `json:"year_order" gorm:"column:year_order;not null;default:0"`
	TermOrder         int    `json:"term_order" gorm:"column:term_order;not null;default:0"`
	TermAlias         string `json:"term_alias" gorm:"column:term_alias;type:varchar(50);not null"`
	IsIncludeGWA      bool   `json:"is_include_gwa" gorm:"column:is_include_gwa;not null;default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (CurriculumDetailModel) TableName() string {
	return "curriculum_detail"
}
