// file: internals/features/admissions/model/university_admission_model.go
package model

import (
	"time"

	academicsmodel "campushub_backend/internals/features/academics/model"
)

// UniversityAdmissionModel maps the `university_admission` table: the
// application window for one school year. At most one row per school year.
type UniversityAdmissionModel struct {
	ID uint `json:"id" gorm:"column:id;primaryKey"`

	SchoolYearID   uint      `json:"school_year_id" gorm:"column:school_year_id;not null;index"`
	OpenDate       time.Time `json:"open_date" gorm:"column:open_date;not null"`
	CloseDate      time.Time `json:"close_date" gorm:"column:close_date;not null"`
	IsOpenOverride bool      `json:"is_open_override" gorm:"column:is_open_override;not null;default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`

	SchoolYear *academicsmodel.SchoolYearModel `json:"school_year,omitempty" gorm:"foreignKey:SchoolYearID"`
}

func (UniversityAdmissionModel) TableName() string {
	return "university_admission"
}
