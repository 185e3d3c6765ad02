// file: internals/features/gradebook/service/template_service.go
package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	model "campushub_backend/internals/features/gradebook/model"
)

var (
	ErrNotATemplate        = errors.New("gradebook is not a template")
	ErrSectionHasGradebook = errors.New("section already has a gradebook")
)

type TemplateService struct {
	DB *gorm.DB
}

func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{DB: db}
}

// CloneToSection copies a template gradebook (periods -> items -> details)
// onto a section in one transaction. Used at section generation time and on
// demand from the admin UI.
func (s *TemplateService) CloneToSection(ctx context.Context, templateID, sectionID uint) (*model.GradeBookModel, error) {
	var clone model.GradeBookModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var template model.GradeBookModel
		if err := tx.
			Preload("GradingPeriods", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
			Preload("GradingPeriods.Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
			Preload("GradingPeriods.Items.Details", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
			First(&template, templateID).Error; err != nil {
			return err
		}
		if !template.IsTemplate {
			return ErrNotATemplate
		}

		var existing int64
		if err := tx.Model(&model.GradeBookModel{}).
			Where("section_id = ? AND is_template = false", sectionID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrSectionHasGradebook
		}

		gb := model.GradeBookModel{
			SectionID:         &sectionID,
			AcademicProgramID: template.AcademicProgramID,
			IsTemplate:        false,
			Title:             template.Title,
		}
		if err := tx.Create(&gb).Error; err != nil {
			return err
		}

		for _, period := range template.GradingPeriods {
			p := model.GradeBookGradingPeriodModel{
				GradebookID: gb.ID,
				Title:       period.Title,
				Weight:      period.Weight,
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			for _, item := range period.Items {
				it := model.GradeBookItemModel{
					GradebookGradingPeriodID: p.ID,
					Title:                    item.Title,
					Weight:                   item.Weight,
				}
				if err := tx.Create(&it).Error; err != nil {
					return err
				}
				for _, detail := range item.Details {
					d := model.GradeBookItemDetailModel{
						GradebookItemID: it.ID,
						Title:           detail.Title,
						MinScore:        detail.MinScore,
						MaxScore:        detail.MaxScore,
						Weight:          detail.Weight,
					}
					if err := tx.Create(&d).Error; err != nil {
						return err
					}
				}
			}
		}

		return tx.
			Preload("GradingPeriods", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
			Preload("GradingPeriods.Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
			Preload("GradingPeriods.Items.Details", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
			First(&clone, gb.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &clone, nil
}
