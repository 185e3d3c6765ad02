// file: internals/features/grading/service/grade_service.go
//
// Grade aggregation engine: recommended final grades, densified sync views,
// and the transactional create-or-update batches behind the grading UI.
package service

import (
	"context"
	"math"

	"gorm.io/gorm"

	enrollmentmodel "campushub_backend/internals/features/enrollment/model"
	gradebookmodel "campushub_backend/internals/features/gradebook/model"
	dto "campushub_backend/internals/features/grading/dto"
	model "campushub_backend/internals/features/grading/model"
)

type GradeService struct {
	DB *gorm.DB

	// passing threshold, injected at construction (env PASSING_GRADE)
	PassingGrade float64
}

func NewGradeService(db *gorm.DB, passingGrade float64) *GradeService {
	return &GradeService{
		DB:           db,
		PassingGrade: passingGrade,
	}
}

// round2 matches the 2-decimal fixed-point formatting of the grade columns
// (numeric(10,2), half away from zero).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

/* ========================================================
   Loading
======================================================== */

// activeEnrollments loads the section's active enrollments (registrar
// approved, never registrar-dropped-approved) in one query with the given
// children preloaded, so the sync walks never touch the database again.
func (s *GradeService) activeEnrollments(ctx context.Context, sectionID uint, preloads ...string) ([]enrollmentmodel.EnrollmentModel, error) {
	q := s.DB.WithContext(ctx).
		Scopes(enrollmentmodel.ScopeActiveInSection(sectionID)).
		Order("id ASC")
	for _, p := range preloads {
		q = q.Preload(p)
	}
	var rows []enrollmentmodel.EnrollmentModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// sectionGradingPeriods loads the section gradebook's ordered grading
// periods with items and details. A section without a gradebook yields an
// empty slice, which the builders treat as "recommended grade 0".
func (s *GradeService) sectionGradingPeriods(ctx context.Context, sectionID uint) ([]gradebookmodel.GradeBookGradingPeriodModel, error) {
	var gb gradebookmodel.GradeBookModel
	err := s.DB.WithContext(ctx).
		Where("section_id = ? AND is_template = false", sectionID).
		Preload("GradingPeriods", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("GradingPeriods.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("GradingPeriods.Items.Details", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&gb).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return gb.GradingPeriods, nil
}

/* ========================================================
   Recommended-grade computation
======================================================== */

// recommendedFinalGrade is the weighted sum over POSTED period grades only:
// sum(grade * weight/100), 2dp. Unposted or missing periods are skipped, not
// counted as zero.
func recommendedFinalGrade(periods []gradebookmodel.GradeBookGradingPeriodModel, grades []model.GradingPeriodGradeModel) float64 {
	posted := make(map[uint]float64, len(grades))
	for _, g := range grades {
		if g.IsPosted {
			posted[g.GradebookGradingPeriodID] = g.Grade
		}
	}

	var sum float64
	for _, p := range periods {
		grade, ok := posted[p.ID]
		if !ok {
			continue
		}
		sum += grade * (p.Weight / 100)
	}
	return round2(sum)
}

// scoreColumn is one scoreable cell of a grading period, flattened from the
// item/detail hierarchy.
type scoreColumn struct {
	DetailID     uint
	MaxScore     float64
	DetailWeight float64
	ItemWeight   float64
}

// periodColumns flattens a period's items into score columns, dropping
// details that cannot be normalized (max_score <= 0).
func periodColumns(period gradebookmodel.GradeBookGradingPeriodModel) []scoreColumn {
	var cols []scoreColumn
	for _, item := range period.Items {
		for _, d := range item.Details {
			if d.MaxScore <= 0 {
				continue
			}
			cols = append(cols, scoreColumn{
				DetailID:     d.ID,
				MaxScore:     d.MaxScore,
				DetailWeight: d.Weight,
				ItemWeight:   item.Weight,
			})
		}
	}
	return cols
}

// recommendedPeriodGrade rolls raw scores up into one period grade:
// (score/max) * detailWeight * (itemWeight/100) per column, summed, 2dp.
// A missing score counts as 0 here; this is the display densification, not
// the posted-only final aggregation.
func recommendedPeriodGrade(cols []scoreColumn, scoreByDetail map[uint]float64) float64 {
	if len(cols) == 0 {
		return 0
	}
	var total float64
	for _, col := range cols {
		score := scoreByDetail[col.DetailID]
		total += (score / col.MaxScore) * col.DetailWeight * (col.ItemWeight / 100)
	}
	return round2(total)
}

/* ========================================================
   Sync views
======================================================== */

func buildFinalGradeRow(enr enrollmentmodel.EnrollmentModel, periods []gradebookmodel.GradeBookGradingPeriodModel, passingGrade float64) dto.FinalGradeSyncRow {
	recommended := recommendedFinalGrade(periods, enr.GradingPeriodGrades)

	row := dto.FinalGradeSyncRow{
		EnrollmentID:     enr.ID,
		Grade:            recommended,
		RecommendedGrade: recommended,
	}
	if fg := enr.FinalGrade; fg != nil {
		id := fg.ID
		row.ID = &id
		row.Grade = fg.Grade
		row.CreditedUnits = fg.CreditedUnits
		row.IsPosted = fg.IsPosted
		// exact equality on the stored 2dp value, not approximate
		row.IsOverridden = fg.Grade != recommended
	}
	row.IsPassed = row.Grade >= passingGrade
	return row
}

// GetFinalGradeSync returns one final-grade row per active enrollment in the
// section, computed or persisted.
func (s *GradeService) GetFinalGradeSync(ctx context.Context, sectionID uint) ([]dto.FinalGradeSyncRow, error) {
	enrollments, err := s.activeEnrollments(ctx, sectionID, "FinalGrade", "GradingPeriodGrades")
	if err != nil {
		return nil, err
	}
	periods, err := s.sectionGradingPeriods(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.FinalGradeSyncRow, 0, len(enrollments))
	for _, enr := range enrollments {
		rows = append(rows, buildFinalGradeRow(enr, periods, s.PassingGrade))
	}
	return rows, nil
}

func buildPeriodGradeRows(enr enrollmentmodel.EnrollmentModel, periods []gradebookmodel.GradeBookGradingPeriodModel) []dto.GradingPeriodGradeSyncRow {
	scoreByDetail := make(map[uint]float64, len(enr.GradebookScores))
	for _, sc := range enr.GradebookScores {
		scoreByDetail[sc.GradebookItemDetailID] = sc.Score
	}
	existingByPeriod := make(map[uint]model.GradingPeriodGradeModel, len(enr.GradingPeriodGrades))
	for _, g := range enr.GradingPeriodGrades {
		existingByPeriod[g.GradebookGradingPeriodID] = g
	}

	rows := make([]dto.GradingPeriodGradeSyncRow, 0, len(periods))
	for _, period := range periods {
		recommended := recommendedPeriodGrade(periodColumns(period), scoreByDetail)

		row := dto.GradingPeriodGradeSyncRow{
			GradebookGradingPeriodID: period.ID,
			EnrollmentID:             enr.ID,
			Grade:                    recommended,
			RecommendedGrade:         recommended,
		}
		if existing, ok := existingByPeriod[period.ID]; ok {
			id := existing.ID
			row.ID = &id
			row.Grade = existing.Grade
			row.IsPosted = existing.IsPosted
			row.IsOverridden = existing.Grade != recommended
		}
		rows = append(rows, row)
	}
	return rows
}

// GetGradingPeriodGradeSync returns one row per (active enrollment, grading
// period), with a recommended grade rolled up from the raw scores. No gaps:
// periods without a persisted grade come back as placeholders.
func (s *GradeService) GetGradingPeriodGradeSync(ctx context.Context, sectionID uint) ([]dto.GradingPeriodGradeSyncRow, error) {
	enrollments, err := s.activeEnrollments(ctx, sectionID, "GradingPeriodGrades", "GradebookScores")
	if err != nil {
		return nil, err
	}
	periods, err := s.sectionGradingPeriods(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	var rows []dto.GradingPeriodGradeSyncRow
	for _, enr := range enrollments {
		rows = append(rows, buildPeriodGradeRows(enr, periods)...)
	}
	return rows, nil
}

func buildScoreRows(enr enrollmentmodel.EnrollmentModel, periods []gradebookmodel.GradeBookGradingPeriodModel) []dto.GradeBookScoreSyncRow {
	existingByDetail := make(map[uint]model.GradeBookScoreModel, len(enr.GradebookScores))
	for _, sc := range enr.GradebookScores {
		existingByDetail[sc.GradebookItemDetailID] = sc
	}

	var rows []dto.GradeBookScoreSyncRow
	for _, period := range periods {
		for _, item := range period.Items {
			for _, detail := range item.Details {
				row := dto.GradeBookScoreSyncRow{
					GradebookItemDetailID: detail.ID,
					EnrollmentID:          enr.ID,
				}
				if existing, ok := existingByDetail[detail.ID]; ok {
					id := existing.ID
					row.ID = &id
					row.Score = existing.Score
				}
				rows = append(rows, row)
			}
		}
	}
	return rows
}

// GetGradeBookScoreSync returns the full (active enrollment x item detail)
// score grid of the section, zero-filled where nothing has been entered.
func (s *GradeService) GetGradeBookScoreSync(ctx context.Context, sectionID uint) ([]dto.GradeBookScoreSyncRow, error) {
	enrollments, err := s.activeEnrollments(ctx, sectionID, "GradebookScores")
	if err != nil {
		return nil, err
	}
	periods, err := s.sectionGradingPeriods(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	var rows []dto.GradeBookScoreSyncRow
	for _, enr := range enrollments {
		rows = append(rows, buildScoreRows(enr, periods)...)
	}
	return rows, nil
}

/* ========================================================
   Bulk sync (create-or-update in one transaction)
======================================================== */

// SyncFinalGrades applies the batch all-or-nothing: items with an id update
// that row, the rest insert. Result order matches the input order.
func (s *GradeService) SyncFinalGrades(ctx context.Context, items []dto.FinalGradeSyncItem) ([]model.FinalGradeModel, error) {
	synced := make([]model.FinalGradeModel, 0, len(items))
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, it := range items {
			if it.ID != nil {
				var row model.FinalGradeModel
				if err := tx.First(&row, *it.ID).Error; err != nil {
					return err
				}
				row.EnrollmentID = it.EnrollmentID
				row.Grade = it.Grade
				row.CreditedUnits = it.CreditedUnits
				row.IsPosted = it.IsPosted
				if err := tx.Save(&row).Error; err != nil {
					return err
				}
				synced = append(synced, row)
			} else {
				row := model.FinalGradeModel{
					EnrollmentID:  it.EnrollmentID,
					Grade:         it.Grade,
					CreditedUnits: it.CreditedUnits,
					IsPosted:      it.IsPosted,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				synced = append(synced, row)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return synced, nil
}

func (s *GradeService) SyncGradingPeriodGrades(ctx context.Context, items []dto.GradingPeriodGradeSyncItem) ([]model.GradingPeriodGradeModel, error) {
	synced := make([]model.GradingPeriodGradeModel, 0, len(items))
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, it := range items {
			if it.ID != nil {
				var row model.GradingPeriodGradeModel
				if err := tx.First(&row, *it.ID).Error; err != nil {
					return err
				}
				row.GradebookGradingPeriodID = it.GradebookGradingPeriodID
				row.EnrollmentID = it.EnrollmentID
				row.Grade = it.Grade
				row.IsPosted = it.IsPosted
				if err := tx.Save(&row).Error; err != nil {
					return err
				}
				synced = append(synced, row)
			} else {
				row := model.GradingPeriodGradeModel{
					GradebookGradingPeriodID: it.GradebookGradingPeriodID,
					EnrollmentID:             it.EnrollmentID,
					Grade:                    it.Grade,
					IsPosted:                 it.IsPosted,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				synced = append(synced, row)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return synced, nil
}

func (s *GradeService) SyncGradeBookScores(ctx context.Context, items []dto.GradeBookScoreSyncItem) ([]model.GradeBookScoreModel, error) {
	synced := make([]model.GradeBookScoreModel, 0, len(items))
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, it := range items {
			if it.ID != nil {
				var row model.GradeBookScoreModel
				if err := tx.First(&row, *it.ID).Error; err != nil {
					return err
				}
				row.GradebookItemDetailID = it.GradebookItemDetailID
				row.EnrollmentID = it.EnrollmentID
				row.Score = it.Score
				if err := tx.Save(&row).Error; err != nil {
					return err
				}
				synced = append(synced, row)
			} else {
				row := model.GradeBookScoreModel{
					GradebookItemDetailID: it.GradebookItemDetailID,
					EnrollmentID:          it.EnrollmentID,
					Score:                 it.Score,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				synced = append(synced, row)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return synced, nil
}
