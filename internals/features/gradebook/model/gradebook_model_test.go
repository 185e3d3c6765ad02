// file: internals/features/gradebook/model/gradebook_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func details(weights ...float64) []GradeBookItemDetailModel {
	out := make([]GradeBookItemDetailModel, 0, len(weights))
	for _, w := range weights {
		out = append(out, GradeBookItemDetailModel{MaxScore: 100, Weight: w})
	}
	return out
}

func completeGradeBook() GradeBookModel {
	return GradeBookModel{
		Title: "Prelim + Final",
		GradingPeriods: []GradeBookGradingPeriodModel{
			{
				Title: "Prelim", Weight: 60,
				Items: []GradeBookItemModel{
					{Title: "Quizzes", Weight: 40, Details: details(50, 50)},
					{Title: "Major Exam", Weight: 60, Details: details(100)},
				},
			},
			{
				Title: "Final", Weight: 40,
				Items: []GradeBookItemModel{
					{Title: "Major Exam", Weight: 100, Details: details(100)},
				},
			},
		},
	}
}

func TestFullySetup(t *testing.T) {
	t.Run("every layer sums to 100", func(t *testing.T) {
		gb := completeGradeBook()
		assert.True(t, gb.FullySetup())
	})

	t.Run("no grading periods", func(t *testing.T) {
		gb := GradeBookModel{Title: "Empty"}
		assert.False(t, gb.FullySetup())
	})

	t.Run("period weights under 100", func(t *testing.T) {
		gb := completeGradeBook()
		gb.GradingPeriods[0].Weight = 50
		assert.False(t, gb.FullySetup())
	})

	t.Run("item weights over 100", func(t *testing.T) {
		gb := completeGradeBook()
		gb.GradingPeriods[0].Items[0].Weight = 60
		assert.False(t, gb.FullySetup())
	})

	t.Run("period without items", func(t *testing.T) {
		gb := completeGradeBook()
		gb.GradingPeriods[1].Items = nil
		assert.False(t, gb.FullySetup())
	})

	t.Run("item without details", func(t *testing.T) {
		gb := completeGradeBook()
		gb.GradingPeriods[0].Items[1].Details = nil
		assert.False(t, gb.FullySetup())
	})

	t.Run("detail weights off by one", func(t *testing.T) {
		gb := completeGradeBook()
		gb.GradingPeriods[0].Items[0].Details = details(50, 49)
		assert.False(t, gb.FullySetup())
	})
}
