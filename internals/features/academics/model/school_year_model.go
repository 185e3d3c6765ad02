// file: internals/features/academics/model/school_year_model.go
package model

import (
	"time"
)

// SchoolYearModel maps the `school_year` table.
type SchoolYearModel struct {
	ID uint `json:"id" gorm:"column:id;primaryKey"`

	SchoolYearCode string    `json:"school_year_code" gorm:"column:school_year_code;type:varchar(20);not null;uniqueIndex"`
	Name           string    `json:"name" gorm:"column:name;type:varchar(100);not null"`
	StartDate      time.Time `json:"start_date" gorm:"column:start_date;type:date;not null"`
	EndDate        time.Time `json:"end_date" gorm:"column:end_date;type:date;not null"`
	IsActive       bool      `json:"is_active" gorm:"column:is_active;not null;default:false"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (SchoolYearModel) TableName() string {
	return "school_year"
}
