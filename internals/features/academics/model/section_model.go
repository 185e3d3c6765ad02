// file: internals/features/academics/model/section_model.go
package model

import (
	"time"
)

// SectionModel maps the `section` table. A section is one offering of a
// curriculum-detail (course slot) in a school year; gradebooks and
// enrollments hang off it.
type SectionModel struct {
	ID uint `json:"id" gorm:"column:id;primaryKey"`

	CurriculumDetailID uint `json:"curriculum_detail_id" gorm:"column:curriculum_detail_id;not null;index"`
	SchoolYearID       uint `json:"school_year_id" gorm:"column:school_year_id;not null;index"`

	SectionRef  string `json:"section_ref" gorm:"column:section_ref;type:varchar(50);not null;uniqueIndex"`
	SectionName string `json:"section_name" gorm:"column:section_name;type:varchar(120);not null"`
	MinStudents int    `json:"min_students" gorm:"column:min_students;not null"`
	MaxStudents int    `json:"max_students" gorm:"column:max_students;not null"`
	IsPosted    bool   `json:"is_posted" gorm:"column:is_posted;not null;default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`

	CurriculumDetail *CurriculumDetailModel `json:"curriculum_detail,omitempty" gorm:"foreignKey:CurriculumDetailID"`
	SchoolYear       *SchoolYearModel       `json:"school_year,omitempty" gorm:"foreignKey:SchoolYearID"`
}

func (SectionModel) TableName() string {
	return "section"
}
