// file: internals/features/enrollment/model/enrollment_log_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// EnrollmentLogAction is the append-only status trail action code.
type EnrollmentLogAction string

const (
	ActionEnroll                      EnrollmentLogAction = "enroll"
	ActionProgramChairApproved        EnrollmentLogAction = "program_chair_approved"
	ActionRegistrarApproved           EnrollmentLogAction = "registrar_approved"
	ActionDropped                     EnrollmentLogAction = "dropped"
	ActionProgramChairDroppedApproved EnrollmentLogAction = "program_chair_dropped_approved"
	ActionRegistrarDroppedApproved    EnrollmentLogAction = "registrar_dropped_approved"
)

func (a EnrollmentLogAction) Valid() bool {
	switch a {
	case ActionEnroll, ActionProgramChairApproved, ActionRegistrarApproved,
		ActionDropped, ActionProgramChairDroppedApproved, ActionRegistrarDroppedApproved:
		return true
	}
	return false
}

// Label is the display name the admin UI shows for each action.
func (a EnrollmentLogAction) Label() string {
	switch a {
	case ActionEnroll:
		return "Pending"
	case ActionProgramChairApproved:
		return "Program Chair Approved"
	case ActionRegistrarApproved:
		return "Officially Enrolled"
	case ActionDropped:
		return "Dropped Requested"
	case ActionProgramChairDroppedApproved:
		return "Dropped Approved by Program Chair"
	case ActionRegistrarDroppedApproved:
		return "Officially Dropped"
	default:
		return "Pending"
	}
}

// EnrollmentLogModel maps the `enrollment_log` table. Append-only; the
// unique (enrollment_id, action) pair means each action can be logged once
// per enrollment.
type EnrollmentLogModel struct {
	ID uint `json:"id" gorm:"column:id;primaryKey"`

	EnrollmentID   uint                `json:"enrollment_id" gorm:"column:enrollment_id;not null;index;uniqueIndex:enrollment_log_unique,priority:1"`
	UserID         uint                `json:"user_id" gorm:"column:user_id;not null"`
	LoggedByUserID uint                `json:"logged_by_user_id" gorm:"column:logged_by_user_id;not null"`
	Action         EnrollmentLogAction `json:"action" gorm:"column:action;type:varchar(40);not null;uniqueIndex:enrollment_log_unique,priority:2"`
	Meta           datatypes.JSON      `json:"meta,omitempty" gorm:"column:meta;type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (EnrollmentLogModel) TableName() string {
	return "enrollment_log"
}
