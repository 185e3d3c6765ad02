// file: internals/features/grading/model/gradebook_score_model.go
package model

import (
	"time"
)

// GradeBookScoreModel maps the `gradebook_score` table. At most one row per
// (gradebook_item_detail_id, enrollment_id); absence means "ungraded", not
// zero.
type GradeBookScoreModel struct {
	ID uint `json:"id" gorm:"column:id;primaryKey"`

	GradebookItemDetailID uint    `json:"gradebook_item_detail_id" gorm:"column:gradebook_item_detail_id;not null;uniqueIndex:gradebook_score_unique,priority:1"`
	EnrollmentID          uint    `json:"enrollment_id" gorm:"column:enrollment_id;not null;index;uniqueIndex:gradebook_score_unique,priority:2"`
	Score                 float64 `json:"score" gorm:"column:score;type:numeric(10,2);not null"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (GradeBookScoreModel) TableName() string {
	return "gradebook_score"
}
