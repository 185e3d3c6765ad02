// file: internals/features/gradebook/model/gradebook_grading_period_model.go
package model

import (
	"time"
)

// GradeBookGradingPeriodModel maps the `gradebook_grading_period` table.
// Weight is a percentage (0-100) of the final grade.
type GradeBookGradingPeriodModel struct {
	ID uint `json:"id" gorm:"column:id;primaryKey"`

	GradebookID uint    `json:"gradebook_id" gorm:"column:gradebook_id;not null;index;uniqueIndex:gradebook_grading_period_unique,priority:1"`
	Title       string  `json:"title" gorm:"column:title;type:varchar(100);not null;uniqueIndex:gradebook_grading_period_unique,priority:2"`
	Weight      float64 `json:"weight" gorm:"column:weight;type:numeric(10,2);not null"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`

	Items []GradeBookItemModel `json:"gradebook_items,omitempty" gorm:"foreignKey:GradebookGradingPeriodID"`
}

func (GradeBookGradingPeriodModel) TableName() string {
	return "gradebook_grading_period"
}
