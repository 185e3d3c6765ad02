// file: internals/features/admissions/model/admission_application_score_model.go
package model

import (
	"time"
)

// AdmissionApplicationScoreModel maps the `admission_application_score`
// table: one evaluator's score for one application against one criteria.
type AdmissionApplicationScoreModel struct {
	ID uint `json:"id" gorm:"column:id;primaryKey"`

	AdmissionApplicationID uint    `json:"admission_application_id" gorm:"column:admission_application_id;not null;index;uniqueIndex:admission_application_score_unique,priority:1"`
	AdmissionCriteriaID    uint    `json:"admission_criteria_id" gorm:"column:admission_criteria_id;not null;uniqueIndex:admission_application_score_unique,priority:2"`
	UserID                 uint    `json:"user_id" gorm:"column:user_id;not null"`
	Score                  float64 `json:"score" gorm:"column:score;type:numeric(10,2);not null"`
	Comments               *string `json:"comments" gorm:"column:comments;type:text"`
	IsPosted               bool    `json:"is_posted" gorm:"column:is_posted;not null;default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (AdmissionApplicationScoreModel) TableName() string {
	return "admission_application_score"
}
