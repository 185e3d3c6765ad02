// file: internals/features/academics/dto/academics_dto.go
package dto

type CreateSchoolYearRequest struct {
	SchoolYearCode string `json:"school_year_code" validate:"required,max=20"`
	Name           string `json:"name" validate:"required,max=100"`
	StartDate      string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string `json:"end_date" validate:"required,datetime=2006-01-02"`
	IsActive       bool   `json:"is_active"`
}

type UpdateSchoolYearRequest struct {
	SchoolYearCode *string `json:"school_year_code" validate:"omitempty,max=20"`
	Name           *string `json:"name" validate:"omitempty,max=100"`
	StartDate      *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate        *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	IsActive       *bool   `json:"is_active"`
}

type CreateSectionRequest struct {
	CurriculumDetailID uint   `json:"curriculum_detail_id" validate:"required"`
	SchoolYearID       uint   `json:"school_year_id" validate:"required"`
	SectionRef         string `json:"section_ref" validate:"required,max=50"`
	SectionName        string `json:"section_name" validate:"required,max=120"`
	MinStudents        int    `json:"min_students" validate:"min=0"`
	MaxStudents        int    `json:"max_students" validate:"gtefield=MinStudents"`
}

type UpdateSectionRequest struct {
	SectionRef  *string `json:"section_ref" validate:"omitempty,max=50"`
	SectionName *string `json:"section_name" validate:"omitempty,max=120"`
	MinStudents *int    `json:"min_students" validate:"omitempty,min=0"`
	MaxStudents *int    `json:"max_students"`
	IsPosted    *bool   `json:"is_posted"`
}

type CreateCurriculumDetailRequest struct {
	CurriculumID      uint   `json:"curriculum_id" validate:"required"`
	CourseID          uint   `json:"course_id" validate:"required"`
	AcademicProgramID uint   `json:"academic_program_id" validate:"required"`
	YearOrder         int    `json:"year_order" validate:"min=1"`
	TermOrder         int    `json:"term_order" validate:"min=1"`
	TermAlias         string `json:"term_alias" validate:"required,max=50"`
	IsIncludeGWA      bool   `json:"is_include_gwa"`
}

type UpdateCurriculumDetailRequest struct {
	YearOrder    *int    `json:"year_order" validate:"omitempty,min=1"`
	TermOrder    *int    `json:"term_order" validate:"omitempty,min=1"`
	TermAlias    *string `json:"term_alias" validate:"omitempty,max=50"`
	IsIncludeGWA *bool   `json:"is_include_gwa"`
}
