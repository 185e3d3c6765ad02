// file: internals/features/admissions/service/score_service.go
package service

import (
	"context"

	"gorm.io/gorm"

	dto "campushub_backend/internals/features/admissions/dto"
	model "campushub_backend/internals/features/admissions/model"
)

/* =========================================================
   ADMISSION APPLICATION SCORE SERVICE
   Batched create-or-update keyed by (application, criteria)
========================================================= */

type ScoreService struct {
	DB *gorm.DB
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{DB: db}
}

type scoreKey struct {
	ApplicationID uint
	CriteriaID    uint
}

// partitionScoreItems splits the batch into rows to insert and rows to
// update, probing the existing set by composite key. Order within each
// pool follows the input.
func partitionScoreItems(items []dto.AdmissionApplicationScoreItem, existing []model.AdmissionApplicationScoreModel) (toCreate []model.AdmissionApplicationScoreModel, toUpdate []model.AdmissionApplicationScoreModel) {
	byKey := make(map[scoreKey]model.AdmissionApplicationScoreModel, len(existing))
	for _, row := range existing {
		byKey[scoreKey{row.AdmissionApplicationID, row.AdmissionCriteriaID}] = row
	}

	for _, it := range items {
		key := scoreKey{it.AdmissionApplicationID, it.AdmissionCriteriaID}
		if row, ok := byKey[key]; ok {
			row.Score = it.Score
			row.Comments = it.Comments
			row.IsPosted = it.IsPosted
			toUpdate = append(toUpdate, row)
			continue
		}
		toCreate = append(toCreate, model.AdmissionApplicationScoreModel{
			AdmissionApplicationID: it.AdmissionApplicationID,
			AdmissionCriteriaID:    it.AdmissionCriteriaID,
			UserID:                 it.UserID,
			Score:                  it.Score,
			Comments:               it.Comments,
			IsPosted:               it.IsPosted,
		})
	}
	return toCreate, toUpdate
}

// CreateOrUpdateMultiple upserts the batch inside one transaction. All
// existing rows are fetched with a single composite-key query up front, so
// deciding create versus update costs no per-item lookups.
func (s *ScoreService) CreateOrUpdateMultiple(ctx context.Context, items []dto.AdmissionApplicationScoreItem) ([]model.AdmissionApplicationScoreModel, error) {
	if len(items) == 0 {
		return []model.AdmissionApplicationScoreModel{}, nil
	}

	applicationIDs := make([]uint, 0, len(items))
	criteriaIDs := make([]uint, 0, len(items))
	seenApp := map[uint]bool{}
	seenCrit := map[uint]bool{}
	for _, it := range items {
		if !seenApp[it.AdmissionApplicationID] {
			seenApp[it.AdmissionApplicationID] = true
			applicationIDs = append(applicationIDs, it.AdmissionApplicationID)
		}
		if !seenCrit[it.AdmissionCriteriaID] {
			seenCrit[it.AdmissionCriteriaID] = true
			criteriaIDs = append(criteriaIDs, it.AdmissionCriteriaID)
		}
	}

	var result []model.AdmissionApplicationScoreModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []model.AdmissionApplicationScoreModel
		if err := tx.
			Where("admission_application_id IN ?", applicationIDs).
			Where("admission_criteria_id IN ?", criteriaIDs).
			Find(&existing).Error; err != nil {
			return err
		}

		toCreate, toUpdate := partitionScoreItems(items, existing)

		if len(toCreate) > 0 {
			if err := tx.Create(&toCreate).Error; err != nil {
				return err
			}
		}
		for i := range toUpdate {
			if err := tx.Save(&toUpdate[i]).Error; err != nil {
				return err
			}
		}

		result = append(result, toCreate...)
		result = append(result, toUpdate...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
