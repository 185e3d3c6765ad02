// file: internals/features/enrollment/service/enrollment_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dto "campushub_backend/internals/features/enrollment/dto"
	model "campushub_backend/internals/features/enrollment/model"
)

func TestBuildScholasticFilter(t *testing.T) {
	t.Run("distinct sorted pairs", func(t *testing.T) {
		got := buildScholasticFilter([]scholasticPair{
			{YearOrder: 2, TermOrder: 1},
			{YearOrder: 1, TermOrder: 2},
			{YearOrder: 1, TermOrder: 1},
			{YearOrder: 2, TermOrder: 2},
		})
		assert.Equal(t, []dto.KeyValuePair{
			{Key: "1st Year", Value: 1},
			{Key: "2nd Year", Value: 2},
		}, got.Year)
		assert.Equal(t, []dto.KeyValuePair{
			{Key: "1st Term", Value: 1},
			{Key: "2nd Term", Value: 2},
		}, got.Term)
	})

	t.Run("no enrollments", func(t *testing.T) {
		got := buildScholasticFilter(nil)
		assert.Empty(t, got.Year)
		assert.Empty(t, got.Term)
	})
}

func TestOrdinal(t *testing.T) {
	assert.Equal(t, "1st", ordinal(1))
	assert.Equal(t, "2nd", ordinal(2))
	assert.Equal(t, "3rd", ordinal(3))
	assert.Equal(t, "4th", ordinal(4))
	assert.Equal(t, "11th", ordinal(11))
	assert.Equal(t, "12th", ordinal(12))
	assert.Equal(t, "21st", ordinal(21))
}

func TestGroupEnrollmentsByStudent(t *testing.T) {
	rows := []model.EnrollmentModel{
		{ID: 158, UserID: 4, SectionID: 961},
		{ID: 167, UserID: 4, SectionID: 966},
		{ID: 168, UserID: 5, SectionID: 966},
	}

	t.Run("buckets preserve user order", func(t *testing.T) {
		got := groupEnrollmentsByStudent([]uint{4, 5}, rows)
		assert.Len(t, got, 2)
		assert.Equal(t, uint(4), got[0].UserID)
		assert.Len(t, got[0].Enrollments, 2)
		assert.Equal(t, uint(158), got[0].Enrollments[0].ID)
		assert.Equal(t, uint(5), got[1].UserID)
		assert.Len(t, got[1].Enrollments, 1)
	})

	t.Run("users without rows are skipped", func(t *testing.T) {
		got := groupEnrollmentsByStudent([]uint{4, 9}, rows)
		assert.Len(t, got, 1)
		assert.Equal(t, uint(4), got[0].UserID)
	})

	t.Run("empty page", func(t *testing.T) {
		got := groupEnrollmentsByStudent(nil, nil)
		assert.Empty(t, got)
	})
}
