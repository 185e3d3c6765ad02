// file: internals/features/gradebook/model/gradebook_item_model.go
package model

import (
	"time"
)

// GradeBookItemModel maps the `gradebook_item` table (e.g. "Quizzes",
// "Major Exam" within one grading period).
type GradeBookItemModel struct {
	ID uint `json:"id" gorm:"column:id;primaryKey"`

	GradebookGradingPeriodID uint    `json:"gradebook_grading_period_id" gorm:"column:gradebook_grading_period_id;not null;index;uniqueIndex:gradebook_item_unique,priority:1"`
	Title                    string  `json:"title" gorm:"column:title;type:varchar(100);not null;uniqueIndex:gradebook_item_unique,priority:2"`
	Weight                   float64 `json:"weight" gorm:"column:weight;type:numeric(10,2);not null"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`

	Details []GradeBookItemDetailModel `json:"gradebook_item_details,omitempty" gorm:"foreignKey:GradebookItemID"`
}

func (GradeBookItemModel) TableName() string {
	return "gradebook_item"
}
