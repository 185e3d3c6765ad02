// file: internals/features/gradebook/model/gradebook_item_detail_model.go
package model

import (
	"time"
)

// GradeBookItemDetailModel maps the `gradebook_item_detail` table. This is
// the atomic scoreable unit ("Quiz 1", "Quiz 2") a GradeBookScore attaches
// to.
type GradeBookItemDetailModel struct {
	ID uint `json:"id" gorm:"column:id;primaryKey"`

	GradebookItemID uint    `json:"gradebook_item_id" gorm:"column:gradebook_item_id;not null;index;uniqueIndex:gradebook_item_detail_unique,priority:1"`
	Title           string  `json:"title" gorm:"column:title;type:varchar(100);not null;uniqueIndex:gradebook_item_detail_unique,priority:2"`
	MinScore        float64 `json:"min_score" gorm:"column:min_score;type:numeric(10,2);not null"`
	MaxScore        float64 `json:"max_score" gorm:"column:max_score;type:numeric(10,2);not null"`
	Weight          float64 `json:"weight" gorm:"column:weight;type:numeric(10,2);not null"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (GradeBookItemDetailModel) TableName() string {
	return "gradebook_item_detail"
}
