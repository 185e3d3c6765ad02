// file: internals/features/admissions/service/admission_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	dto "campushub_backend/internals/features/admissions/dto"
	model "campushub_backend/internals/features/admissions/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateWindow(t *testing.T) {
	yearStart := day(2024, time.June, 1)
	yearEnd := day(2025, time.March, 31)

	t.Run("window inside the school year", func(t *testing.T) {
		err := ValidateWindow(yearStart, yearEnd, day(2024, time.June, 15), day(2024, time.August, 15))
		assert.NoError(t, err)
	})

	t.Run("open date before the school year", func(t *testing.T) {
		err := ValidateWindow(yearStart, yearEnd, day(2024, time.May, 1), day(2024, time.August, 15))
		assert.Error(t, err)
		var windowErr *WindowError
		assert.ErrorAs(t, err, &windowErr)
		assert.Contains(t, windowErr.Message, "Open date")
	})

	t.Run("open date after the school year", func(t *testing.T) {
		err := ValidateWindow(yearStart, yearEnd, day(2025, time.April, 1), day(2025, time.April, 30))
		assert.Error(t, err)
	})

	t.Run("close before open", func(t *testing.T) {
		err := ValidateWindow(yearStart, yearEnd, day(2024, time.August, 15), day(2024, time.June, 15))
		assert.Error(t, err)
		var windowErr *WindowError
		assert.ErrorAs(t, err, &windowErr)
		assert.Contains(t, windowErr.Message, "after the open date")
	})

	t.Run("close past the school year end", func(t *testing.T) {
		err := ValidateWindow(yearStart, yearEnd, day(2025, time.March, 1), day(2025, time.April, 1))
		assert.Error(t, err)
		var windowErr *WindowError
		assert.ErrorAs(t, err, &windowErr)
		assert.Contains(t, windowErr.Message, "Close date")
	})

	t.Run("close on the school year's last day", func(t *testing.T) {
		err := ValidateWindow(yearStart, yearEnd, day(2025, time.March, 1), day(2025, time.March, 31))
		assert.NoError(t, err)
	})

	t.Run("single day window on the first day", func(t *testing.T) {
		err := ValidateWindow(yearStart, yearEnd, day(2024, time.June, 1), day(2024, time.June, 1))
		assert.NoError(t, err)
	})
}

func strPtr(s string) *string { return &s }

func TestPartitionScoreItems(t *testing.T) {
	existing := []model.AdmissionApplicationScoreModel{
		{ID: 10, AdmissionApplicationID: 1, AdmissionCriteriaID: 1, UserID: 7, Score: 60},
		{ID: 11, AdmissionApplicationID: 1, AdmissionCriteriaID: 2, UserID: 7, Score: 70},
	}

	items := []dto.AdmissionApplicationScoreItem{
		{AdmissionApplicationID: 1, AdmissionCriteriaID: 1, UserID: 7, Score: 85, Comments: strPtr("better"), IsPosted: true},
		{AdmissionApplicationID: 1, AdmissionCriteriaID: 3, UserID: 7, Score: 90},
		{AdmissionApplicationID: 2, AdmissionCriteriaID: 1, UserID: 8, Score: 75},
	}

	toCreate, toUpdate := partitionScoreItems(items, existing)

	assert.Len(t, toUpdate, 1)
	assert.Equal(t, uint(10), toUpdate[0].ID)
	assert.Equal(t, 85.0, toUpdate[0].Score)
	assert.Equal(t, "better", *toUpdate[0].Comments)
	assert.True(t, toUpdate[0].IsPosted)

	assert.Len(t, toCreate, 2)
	assert.Equal(t, uint(0), toCreate[0].ID)
	assert.Equal(t, uint(3), toCreate[0].AdmissionCriteriaID)
	assert.Equal(t, uint(2), toCreate[1].AdmissionApplicationID)

	t.Run("same criteria id under a different application creates", func(t *testing.T) {
		create, update := partitionScoreItems(
			[]dto.AdmissionApplicationScoreItem{
				{AdmissionApplicationID: 2, AdmissionCriteriaID: 2, UserID: 8, Score: 50},
			}, existing)
		assert.Len(t, create, 1)
		assert.Empty(t, update)
	})

	t.Run("empty batch", func(t *testing.T) {
		create, update := partitionScoreItems(nil, existing)
		assert.Empty(t, create)
		assert.Empty(t, update)
	})
}
