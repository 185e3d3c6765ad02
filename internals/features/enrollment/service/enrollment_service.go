// file: internals/features/enrollment/service/enrollment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	academicsmodel "campushub_backend/internals/features/academics/model"
	dto "campushub_backend/internals/features/enrollment/dto"
	model "campushub_backend/internals/features/enrollment/model"
	helper "campushub_backend/internals/helpers"
)

var ErrSectionFull = errors.New("section is already full")

/* =========================================================
   ENROLLMENT SERVICE
   Bulk enroll, scholastic filter, grouped-by-student paging
========================================================= */

type EnrollmentService struct {
	DB *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{DB: db}
}

// latestLogActionIs filters enrollments whose most recent log entry carries
// the given action. Ties on created_at break by the larger id, matching the
// append order.
const latestLogActionIs = `EXISTS (
	SELECT 1 FROM enrollment_log el
	WHERE el.enrollment_id = enrollment.id
	  AND el.action = ?
	  AND NOT EXISTS (
		SELECT 1 FROM enrollment_log newer
		WHERE newer.enrollment_id = el.enrollment_id
		  AND (newer.created_at > el.created_at
		       OR (newer.created_at = el.created_at AND newer.id > el.id))
	  )
)`

// CreateMultiple enrolls each (user, section) pair inside one transaction.
// Every section's headcount is checked against max_students first; any full
// section fails the whole batch.
func (s *EnrollmentService) CreateMultiple(ctx context.Context, reqs []dto.CreateEnrollmentRequest) ([]model.EnrollmentModel, error) {
	created := make([]model.EnrollmentModel, 0, len(reqs))

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, req := range reqs {
			var section academicsmodel.SectionModel
			if err := tx.First(&section, req.SectionID).Error; err != nil {
				return err
			}

			var headcount int64
			if err := tx.Model(&model.EnrollmentModel{}).
				Where("section_id = ?", req.SectionID).
				Count(&headcount).Error; err != nil {
				return err
			}
			if section.MaxStudents > 0 && headcount >= int64(section.MaxStudents) {
				return fmt.Errorf("%w: %s", ErrSectionFull, section.SectionName)
			}

			row := model.EnrollmentModel{
				UserID:    req.UserID,
				SectionID: req.SectionID,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			created = append(created, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

type scholasticPair struct {
	YearOrder int
	TermOrder int
}

// ScholasticFilter returns the distinct year levels and terms the program's
// students are enrolled in for the school year, optionally narrowed to a
// latest log status.
func (s *EnrollmentService) ScholasticFilter(ctx context.Context, academicProgramID uint, latestStatus string, schoolYearID uint) (*dto.ScholasticFilterResponse, error) {
	q := s.DB.WithContext(ctx).
		Table("enrollment").
		Select("DISTINCT cd.year_order AS year_order, cd.term_order AS term_order").
		Joins("JOIN section sec ON sec.id = enrollment.section_id").
		Joins("JOIN curriculum_detail cd ON cd.id = sec.curriculum_detail_id").
		Where("cd.academic_program_id = ?", academicProgramID).
		Where("sec.school_year_id = ?", schoolYearID)
	if latestStatus != "" {
		q = q.Where(latestLogActionIs, latestStatus)
	}

	var pairs []scholasticPair
	if err := q.Scan(&pairs).Error; err != nil {
		return nil, err
	}

	resp := buildScholasticFilter(pairs)
	return &resp, nil
}

// buildScholasticFilter collapses the distinct (year_order, term_order)
// pairs into the two sorted dropdown lists the admin UI renders.
func buildScholasticFilter(pairs []scholasticPair) dto.ScholasticFilterResponse {
	yearSet := map[int]bool{}
	termSet := map[int]bool{}
	for _, p := range pairs {
		yearSet[p.YearOrder] = true
		termSet[p.TermOrder] = true
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	terms := make([]int, 0, len(termSet))
	for t := range termSet {
		terms = append(terms, t)
	}
	sort.Ints(terms)

	resp := dto.ScholasticFilterResponse{
		Year: make([]dto.KeyValuePair, 0, len(years)),
		Term: make([]dto.KeyValuePair, 0, len(terms)),
	}
	for _, y := range years {
		resp.Year = append(resp.Year, dto.KeyValuePair{Key: ordinal(y) + " Year", Value: y})
	}
	for _, t := range terms {
		resp.Term = append(resp.Term, dto.KeyValuePair{Key: ordinal(t) + " Term", Value: t})
	}
	return resp
}

func ordinal(n int) string {
	switch n % 100 {
	case 11, 12, 13:
		return fmt.Sprintf("%dth", n)
	}
	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	default:
		return fmt.Sprintf("%dth", n)
	}
}

// GroupedByStudent pages the program's enrollments per student: the page
// unit is a student (user_id), each carrying all of their matching
// enrollments with sections and log trails loaded.
func (s *EnrollmentService) GroupedByStudent(ctx context.Context, academicProgramID uint, latestStatus string, schoolYearID uint, yearOrder, termOrder int, paging helper.Paging) ([]dto.StudentEnrollments, helper.Pagination, error) {
	base := func() *gorm.DB {
		q := s.DB.WithContext(ctx).
			Table("enrollment").
			Joins("JOIN section sec ON sec.id = enrollment.section_id").
			Joins("JOIN curriculum_detail cd ON cd.id = sec.curriculum_detail_id").
			Where("cd.academic_program_id = ?", academicProgramID).
			Where("sec.school_year_id = ?", schoolYearID).
			Where("cd.year_order = ?", yearOrder).
			Where("cd.term_order = ?", termOrder)
		if latestStatus != "" {
			q = q.Where(latestLogActionIs, latestStatus)
		}
		return q
	}

	var total int64
	if err := base().Distinct("enrollment.user_id").Count(&total).Error; err != nil {
		return nil, helper.Pagination{}, err
	}

	var userIDs []uint
	if err := base().
		Distinct("enrollment.user_id").
		Order("enrollment.user_id ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Pluck("enrollment.user_id", &userIDs).Error; err != nil {
		return nil, helper.Pagination{}, err
	}

	if len(userIDs) == 0 {
		return []dto.StudentEnrollments{}, helper.BuildPagination(total, paging, 0), nil
	}

	q := s.DB.WithContext(ctx).
		Joins("JOIN section sec ON sec.id = enrollment.section_id").
		Joins("JOIN curriculum_detail cd ON cd.id = sec.curriculum_detail_id").
		Where("enrollment.user_id IN ?", userIDs).
		Where("cd.academic_program_id = ?", academicProgramID).
		Where("sec.school_year_id = ?", schoolYearID).
		Where("cd.year_order = ?", yearOrder).
		Where("cd.term_order = ?", termOrder).
		Preload("Section").
		Preload("EnrollmentLogs").
		Order("enrollment.user_id ASC, enrollment.id ASC")
	if latestStatus != "" {
		q = q.Where(latestLogActionIs, latestStatus)
	}

	var rows []model.EnrollmentModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, helper.Pagination{}, err
	}

	grouped := groupEnrollmentsByStudent(userIDs, rows)
	return grouped, helper.BuildPagination(total, paging, len(grouped)), nil
}

// groupEnrollmentsByStudent buckets the rows per user, preserving the page's
// user order. Users with no matching rows are dropped rather than emitted
// empty.
func groupEnrollmentsByStudent(userIDs []uint, rows []model.EnrollmentModel) []dto.StudentEnrollments {
	byUser := map[uint][]model.EnrollmentModel{}
	for _, r := range rows {
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}

	out := make([]dto.StudentEnrollments, 0, len(userIDs))
	for _, id := range userIDs {
		bucket, ok := byUser[id]
		if !ok {
			continue
		}
		out = append(out, dto.StudentEnrollments{
			UserID:      id,
			Enrollments: dto.NewEnrollmentResponses(bucket),
		})
	}
	return out
}
