// file: internals/features/admissions/model/admission_criteria_model.go
package model

import (
	"time"
)

// AdmissionCriteriaModel maps the `admission_criteria` table.
type AdmissionCriteriaModel struct {
	ID uint `json:"id" gorm:"column:id;primaryKey"`

	Title  string  `json:"title" gorm:"column:title;type:varchar(120);not null"`
	Weight float64 `json:"weight" gorm:"column:weight;type:numeric(10,2);not null"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (AdmissionCriteriaModel) TableName() string {
	return "admission_criteria"
}
