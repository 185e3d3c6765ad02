// file: internals/features/admissions/service/admission_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	academicsmodel "campushub_backend/internals/features/academics/model"
	model "campushub_backend/internals/features/admissions/model"
)

var (
	ErrSchoolYearNotFound = errors.New("school year not found")
	ErrAdmissionExists    = errors.New("an admission already exists for this school year")
)

// WindowError is a date-window rule violation, kept separate from infra
// errors so controllers can answer 422 instead of 500.
type WindowError struct {
	Message string
}

func (e *WindowError) Error() string { return e.Message }

/* =========================================================
   UNIVERSITY ADMISSION SERVICE
   Date-window validation against the school year bounds
========================================================= */

type AdmissionService struct {
	DB *gorm.DB
}

func NewAdmissionService(db *gorm.DB) *AdmissionService {
	return &AdmissionService{DB: db}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

func fmtDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// ValidateWindow checks that the admission window fits inside the school
// year. Open is compared at start of day and close at end of day, so a
// close date on the school year's last day is still in bounds.
func ValidateWindow(schoolYearStart, schoolYearEnd, openDate, closeDate time.Time) error {
	yearStart := startOfDay(schoolYearStart)
	yearEnd := endOfDay(schoolYearEnd)
	open := startOfDay(openDate)
	close := endOfDay(closeDate)

	if open.Before(yearStart) || open.After(yearEnd) {
		return &WindowError{Message: fmt.Sprintf(
			"Open date (%s) must be within the school year period (%s to %s)",
			fmtDate(open), fmtDate(yearStart), fmtDate(yearEnd))}
	}
	if close.Before(open) {
		return &WindowError{Message: fmt.Sprintf(
			"Close date (%s) must be after the open date (%s)",
			fmtDate(close), fmtDate(open))}
	}
	if close.After(yearEnd) {
		return &WindowError{Message: fmt.Sprintf(
			"Close date (%s) must be within the school year period (%s to %s)",
			fmtDate(close), fmtDate(yearStart), fmtDate(yearEnd))}
	}
	return nil
}

// ValidateAdmission runs the full pre-persistence check: the school year
// must exist, the window must fit it, and (on create, or on update moving
// to another school year) no other admission may claim the same school
// year. excludeID is the row being updated, zero on create.
func (s *AdmissionService) ValidateAdmission(ctx context.Context, schoolYearID uint, openDate, closeDate time.Time, excludeID uint) error {
	var schoolYear academicsmodel.SchoolYearModel
	if err := s.DB.WithContext(ctx).First(&schoolYear, schoolYearID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSchoolYearNotFound
		}
		return err
	}

	if err := ValidateWindow(schoolYear.StartDate, schoolYear.EndDate, openDate, closeDate); err != nil {
		return err
	}

	q := s.DB.WithContext(ctx).
		Model(&model.UniversityAdmissionModel{}).
		Where("school_year_id = ?", schoolYearID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAdmissionExists
	}
	return nil
}

// CurrentInvitation returns the earliest admission still accepting
// applications that the user has not applied to, or nil when none.
func (s *AdmissionService) CurrentInvitation(ctx context.Context, userID uint) (*model.UniversityAdmissionModel, error) {
	var admission model.UniversityAdmissionModel
	err := s.DB.WithContext(ctx).
		Where("close_date >= ?", startOfDay(time.Now())).
		Order("open_date ASC, id ASC").
		Preload("SchoolYear").
		First(&admission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var applied int64
	err = s.DB.WithContext(ctx).
		Model(&model.AdmissionApplicationModel{}).
		Where("university_admission_id = ?", admission.ID).
		Where("user_id = ?", userID).
		Count(&applied).Error
	if err != nil {
		return nil, err
	}
	if applied > 0 {
		return nil, nil
	}
	return &admission, nil
}
