// file: internals/features/enrollment/dto/enrollment_dto.go
package dto

import (
	"gorm.io/datatypes"

	model "campushub_backend/internals/features/enrollment/model"
)

type CreateEnrollmentRequest struct {
	UserID    uint `json:"user_id" validate:"required"`
	SectionID uint `json:"section_id" validate:"required"`
}

type UpdateEnrollmentRequest struct {
	UserID    *uint `json:"user_id"`
	SectionID *uint `json:"section_id"`
}

type CreateEnrollmentLogRequest struct {
	EnrollmentID   uint           `json:"enrollment_id" validate:"required"`
	UserID         uint           `json:"user_id" validate:"required"`
	LoggedByUserID uint           `json:"logged_by_user_id" validate:"required"`
	Action         string         `json:"action" validate:"required"`
	Meta           datatypes.JSON `json:"meta"`
}

// EnrollmentResponse decorates the row with the statuses derived from the
// loaded log trail.
type EnrollmentResponse struct {
	model.EnrollmentModel
	LatestStatus      model.EnrollmentLogAction `json:"latest_status"`
	LatestStatusLabel string                    `json:"latest_status_label"`
	Validated         bool                      `json:"validated"`
	IsDropped         bool                      `json:"is_dropped"`
}

func NewEnrollmentResponse(m *model.EnrollmentModel) EnrollmentResponse {
	status := m.LatestStatus()
	return EnrollmentResponse{
		EnrollmentModel:   *m,
		LatestStatus:      status,
		LatestStatusLabel: status.Label(),
		Validated:         m.Validated(),
		IsDropped:         m.IsDropped(),
	}
}

func NewEnrollmentResponses(rows []model.EnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewEnrollmentResponse(&rows[i]))
	}
	return out
}

// KeyValuePair is the shape the admin UI's filter dropdowns consume.
type KeyValuePair struct {
	Key   string `json:"key"`
	Value int    `json:"value"`
}

// ScholasticFilterResponse lists the distinct year levels and terms the
// program's students are enrolled in for one school year.
type ScholasticFilterResponse struct {
	Year []KeyValuePair `json:"year"`
	Term []KeyValuePair `json:"term"`
}

// StudentEnrollments is one page entry of the grouped-by-student listing.
type StudentEnrollments struct {
	UserID      uint                 `json:"user_id"`
	Enrollments []EnrollmentResponse `json:"enrollments"`
}
