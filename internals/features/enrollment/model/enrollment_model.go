// file: internals/features/enrollment/model/enrollment_model.go
package model

import (
	"time"

	"gorm.io/gorm"

	academicsmodel "campushub_backend/internals/features/academics/model"
	gradingmodel "campushub_backend/internals/features/grading/model"
)

// EnrollmentModel maps the `enrollment` table: one student registered in one
// section. Status lives in the append-only enrollment_log trail, never on
// the row itself.
type EnrollmentModel struct {
	ID uint `json:"id" gorm:"column:id;primaryKey"`

	UserID    uint `json:"user_id" gorm:"column:user_id;not null;index"`
	SectionID uint `json:"section_id" gorm:"column:section_id;not null;index"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`

	Section             *academicsmodel.SectionModel          `json:"section,omitempty" gorm:"foreignKey:SectionID"`
	EnrollmentLogs      []EnrollmentLogModel                  `json:"enrollment_logs,omitempty" gorm:"foreignKey:EnrollmentID"`
	GradebookScores     []gradingmodel.GradeBookScoreModel    `json:"gradebook_scores,omitempty" gorm:"foreignKey:EnrollmentID"`
	GradingPeriodGrades []gradingmodel.GradingPeriodGradeModel `json:"grading_period_grades,omitempty" gorm:"foreignKey:EnrollmentID"`
	FinalGrade          *gradingmodel.FinalGradeModel         `json:"final_grade,omitempty" gorm:"foreignKey:EnrollmentID"`
}

func (EnrollmentModel) TableName() string {
	return "enrollment"
}

// LatestStatus derives the current status from the loaded log trail: the
// most recent entry's action, defaulting to "enroll" when nothing has been
// logged.
func (m *EnrollmentModel) LatestStatus() EnrollmentLogAction {
	if len(m.EnrollmentLogs) == 0 {
		return ActionEnroll
	}
	latest := m.EnrollmentLogs[0]
	for _, l := range m.EnrollmentLogs[1:] {
		if l.CreatedAt.After(latest.CreatedAt) || (l.CreatedAt.Equal(latest.CreatedAt) && l.ID > latest.ID) {
			latest = l
		}
	}
	return latest.Action
}

// HasAction reports whether the loaded log trail contains the action.
func (m *EnrollmentModel) HasAction(action EnrollmentLogAction) bool {
	for _, l := range m.EnrollmentLogs {
		if l.Action == action {
			return true
		}
	}
	return false
}

// Validated: both chair and registrar approved, and not dropped.
func (m *EnrollmentModel) Validated() bool {
	return m.HasAction(ActionProgramChairApproved) &&
		m.HasAction(ActionRegistrarApproved) &&
		!m.IsDropped()
}

// IsDropped: a drop was requested and the registrar approved it.
func (m *EnrollmentModel) IsDropped() bool {
	return m.HasAction(ActionDropped) && m.HasAction(ActionRegistrarDroppedApproved)
}

// ScopeActiveInSection narrows an enrollment query to the section's active
// enrollments: registrar-approved and never registrar-dropped-approved. The
// status is probed from the log trail on purpose (no denormalized status
// column exists).
func ScopeActiveInSection(sectionID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where("section_id = ?", sectionID).
			Where("EXISTS (SELECT 1 FROM enrollment_log el WHERE el.enrollment_id = enrollment.id AND el.action = ?)",
				ActionRegistrarApproved).
			Where("NOT EXISTS (SELECT 1 FROM enrollment_log el WHERE el.enrollment_id = enrollment.id AND el.action = ?)",
				ActionRegistrarDroppedApproved)
	}
}
