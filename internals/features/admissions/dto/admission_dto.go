// file: internals/features/admissions/dto/admission_dto.go
package dto

type CreateUniversityAdmissionRequest struct {
	SchoolYearID   uint   `json:"school_year_id" validate:"required"`
	OpenDate       string `json:"open_date" validate:"required,datetime=2006-01-02"`
	CloseDate      string `json:"close_date" validate:"required,datetime=2006-01-02"`
	IsOpenOverride bool   `json:"is_open_override"`
}

type UpdateUniversityAdmissionRequest struct {
	SchoolYearID   uint   `json:"school_year_id" validate:"required"`
	OpenDate       string `json:"open_date" validate:"required,datetime=2006-01-02"`
	CloseDate      string `json:"close_date" validate:"required,datetime=2006-01-02"`
	IsOpenOverride *bool  `json:"is_open_override"`
}

type CreateAdmissionApplicationRequest struct {
	UniversityAdmissionID uint   `json:"university_admission_id" validate:"required"`
	UserID                uint   `json:"user_id" validate:"required"`
	ApplicationRef        string `json:"application_ref" validate:"required,max=64"`
}

type UpdateAdmissionApplicationRequest struct {
	ApplicationRef *string `json:"application_ref" validate:"omitempty,max=64"`
}

type CreateAdmissionCriteriaRequest struct {
	Title  string  `json:"title" validate:"required,max=120"`
	Weight float64 `json:"weight" validate:"min=0,max=100"`
}

type UpdateAdmissionCriteriaRequest struct {
	Title  *string  `json:"title" validate:"omitempty,max=120"`
	Weight *float64 `json:"weight" validate:"omitempty,min=0,max=100"`
}

// AdmissionApplicationScoreItem is one element of the
// createOrUpdateMultiple batch. Create versus update is decided by the
// (admission_application_id, admission_criteria_id) pair, not by id.
type AdmissionApplicationScoreItem struct {
	AdmissionApplicationID uint    `json:"admission_application_id" validate:"required"`
	AdmissionCriteriaID    uint    `json:"admission_criteria_id" validate:"required"`
	UserID                 uint    `json:"user_id" validate:"required"`
	Score                  float64 `json:"score" validate:"min=0"`
	Comments               *string `json:"comments"`
	IsPosted               bool    `json:"is_posted"`
}
