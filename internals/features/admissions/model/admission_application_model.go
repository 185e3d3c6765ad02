// file: internals/features/admissions/model/admission_application_model.go
package model

import (
	"time"
)

// AdmissionApplicationModel maps the `admission_application` table.
type AdmissionApplicationModel struct {
	ID uint `json:"id" gorm:"column:id;primaryKey"`

	UniversityAdmissionID uint   `json:"university_admission_id" gorm:"column:university_admission_id;not null;index"`
	UserID                uint   `json:"user_id" gorm:"column:user_id;not null;index"`
	ApplicationRef        string `json:"application_ref" gorm:"column:application_ref;type:varchar(64);not null;uniqueIndex"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`

	Scores []AdmissionApplicationScoreModel `json:"scores,omitempty" gorm:"foreignKey:AdmissionApplicationID"`
}

func (AdmissionApplicationModel) TableName() string {
	return "admission_application"
}
