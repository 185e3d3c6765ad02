// file: internals/features/gradebook/model/gradebook_model.go
package model

import (
	"time"
)

// GradeBookModel maps the `gradebook` table. A gradebook is either a
// per-program template (section_id null) or the live copy owned by one
// section.
type GradeBookModel struct {
	ID uint `json:"id" gorm:"column:id;primaryKey"`

	SectionID         *uint `json:"section_id" gorm:"column:section_id;index;uniqueIndex:gradebook_unique,priority:1"`
	AcademicProgramID uint  `json:"academic_program_id" gorm:"column:academic_program_id;not null;uniqueIndex:gradebook_unique,priority:2"`

	IsTemplate bool   `json:"is_template" gorm:"column:is_template;not null;default:false;uniqueIndex:gradebook_unique,priority:3"`
	Title      string `json:"title" gorm:"column:title;type:varchar(150);not null;uniqueIndex:gradebook_unique,priority:4"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`

	GradingPeriods []GradeBookGradingPeriodModel `json:"gradebook_grading_periods,omitempty" gorm:"foreignKey:GradebookID"`
}

func (GradeBookModel) TableName() string {
	return "gradebook"
}

// FullySetup reports whether every weight layer of the loaded gradebook sums
// to 100: the grading periods, each period's items, and each item's details.
// Callers must have preloaded the full structure.
func (m *GradeBookModel) FullySetup() bool {
	if len(m.GradingPeriods) == 0 {
		return false
	}

	var periodTotal float64
	for _, p := range m.GradingPeriods {
		periodTotal += p.Weight
	}
	if periodTotal != 100 {
		return false
	}

	for _, p := range m.GradingPeriods {
		if len(p.Items) == 0 {
			return false
		}
		var itemTotal float64
		for _, it := range p.Items {
			itemTotal += it.Weight
		}
		if itemTotal != 100 {
			return false
		}
		for _, it := range p.Items {
			if len(it.Details) == 0 {
				return false
			}
			var detailTotal float64
			for _, d := range it.Details {
				detailTotal += d.Weight
			}
			if detailTotal != 100 {
				return false
			}
		}
	}
	return true
}
