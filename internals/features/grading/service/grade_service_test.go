// file: internals/features/grading/service/grade_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enrollmentmodel "campushub_backend/internals/features/enrollment/model"
	gradebookmodel "campushub_backend/internals/features/gradebook/model"
	model "campushub_backend/internals/features/grading/model"
)

func periodsOf(weights ...float64) []gradebookmodel.GradeBookGradingPeriodModel {
	out := make([]gradebookmodel.GradeBookGradingPeriodModel, 0, len(weights))
	for i, w := range weights {
		out = append(out, gradebookmodel.GradeBookGradingPeriodModel{
			ID:     uint(i + 1),
			Weight: w,
		})
	}
	return out
}

func TestRecommendedFinalGrade(t *testing.T) {
	tests := []struct {
		name    string
		periods []gradebookmodel.GradeBookGradingPeriodModel
		grades  []model.GradingPeriodGradeModel
		want    float64
	}{
		{
			name:    "all posted, weights sum to 100",
			periods: periodsOf(50, 50),
			grades: []model.GradingPeriodGradeModel{
				{GradebookGradingPeriodID: 1, Grade: 80, IsPosted: true},
				{GradebookGradingPeriodID: 2, Grade: 90, IsPosted: true},
			},
			want: 85,
		},
		{
			name:    "unposted period contributes nothing, not zero",
			periods: periodsOf(60, 40),
			grades: []model.GradingPeriodGradeModel{
				{GradebookGradingPeriodID: 1, Grade: 85, IsPosted: true},
				{GradebookGradingPeriodID: 2, Grade: 0, IsPosted: false},
			},
			want: 51,
		},
		{
			name:    "missing period grade is skipped",
			periods: periodsOf(60, 40),
			grades: []model.GradingPeriodGradeModel{
				{GradebookGradingPeriodID: 1, Grade: 85, IsPosted: true},
			},
			want: 51,
		},
		{
			name:    "zero contributing periods yields zero",
			periods: periodsOf(60, 40),
			grades:  nil,
			want:    0,
		},
		{
			name:    "gradebook without periods yields zero",
			periods: nil,
			grades: []model.GradingPeriodGradeModel{
				{GradebookGradingPeriodID: 1, Grade: 99, IsPosted: true},
			},
			want: 0,
		},
		{
			name:    "rounded to two decimals, half away from zero",
			periods: periodsOf(50, 50),
			grades: []model.GradingPeriodGradeModel{
				{GradebookGradingPeriodID: 1, Grade: 85.5, IsPosted: true},
				{GradebookGradingPeriodID: 2, Grade: 90.25, IsPosted: true},
			},
			// 42.75 + 45.125 = 87.875 -> 87.88
			want: 87.88,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recommendedFinalGrade(tt.periods, tt.grades)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildFinalGradeRow(t *testing.T) {
	periods := periodsOf(50, 50)
	base := enrollmentmodel.EnrollmentModel{
		ID: 7,
		GradingPeriodGrades: []model.GradingPeriodGradeModel{
			{GradebookGradingPeriodID: 1, Grade: 80, IsPosted: true},
			{GradebookGradingPeriodID: 2, Grade: 90, IsPosted: true},
		},
	}

	t.Run("no stored final grade", func(t *testing.T) {
		row := buildFinalGradeRow(base, periods, 75)
		assert.Nil(t, row.ID)
		assert.Equal(t, uint(7), row.EnrollmentID)
		assert.Equal(t, 85.0, row.Grade)
		assert.Equal(t, 85.0, row.RecommendedGrade)
		assert.Equal(t, 0, row.CreditedUnits)
		assert.False(t, row.IsOverridden)
		assert.False(t, row.IsPosted)
		assert.True(t, row.IsPassed)
	})

	t.Run("stored grade equal to recommended is not an override", func(t *testing.T) {
		enr := base
		enr.FinalGrade = &model.FinalGradeModel{ID: 3, EnrollmentID: 7, Grade: 85, CreditedUnits: 3, IsPosted: true}
		row := buildFinalGradeRow(enr, periods, 75)
		require.NotNil(t, row.ID)
		assert.Equal(t, uint(3), *row.ID)
		assert.Equal(t, 85.0, row.Grade)
		assert.Equal(t, 3, row.CreditedUnits)
		assert.False(t, row.IsOverridden)
		assert.True(t, row.IsPosted)
	})

	t.Run("stored grade differing from recommended is an override", func(t *testing.T) {
		enr := base
		enr.FinalGrade = &model.FinalGradeModel{ID: 3, EnrollmentID: 7, Grade: 90}
		row := buildFinalGradeRow(enr, periods, 75)
		assert.Equal(t, 90.0, row.Grade)
		assert.Equal(t, 85.0, row.RecommendedGrade)
		assert.True(t, row.IsOverridden)
	})

	t.Run("passing threshold gates is_passed", func(t *testing.T) {
		row := buildFinalGradeRow(base, periods, 85)
		assert.True(t, row.IsPassed)

		row = buildFinalGradeRow(base, periods, 85.01)
		assert.False(t, row.IsPassed)
	})
}

func detailedPeriod(id uint) gradebookmodel.GradeBookGradingPeriodModel {
	return gradebookmodel.GradeBookGradingPeriodModel{
		ID:     id,
		Weight: 50,
		Items: []gradebookmodel.GradeBookItemModel{
			{
				ID: 10, Weight: 60,
				Details: []gradebookmodel.GradeBookItemDetailModel{
					{ID: 100, MaxScore: 20, Weight: 50},
					{ID: 101, MaxScore: 20, Weight: 50},
				},
			},
			{
				ID: 11, Weight: 40,
				Details: []gradebookmodel.GradeBookItemDetailModel{
					{ID: 102, MaxScore: 100, Weight: 100},
				},
			},
		},
	}
}

func TestRecommendedPeriodGrade(t *testing.T) {
	cols := periodColumns(detailedPeriod(1))
	require.Len(t, cols, 3)

	t.Run("full marks reach 100", func(t *testing.T) {
		scores := map[uint]float64{100: 20, 101: 20, 102: 100}
		assert.Equal(t, 100.0, recommendedPeriodGrade(cols, scores))
	})

	t.Run("missing scores count as zero in the rollup", func(t *testing.T) {
		scores := map[uint]float64{100: 20}
		// (20/20)*50*(60/100) = 30
		assert.Equal(t, 30.0, recommendedPeriodGrade(cols, scores))
	})

	t.Run("no columns yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, recommendedPeriodGrade(nil, nil))
	})
}

func TestPeriodColumnsSkipsUnnormalizableDetails(t *testing.T) {
	period := gradebookmodel.GradeBookGradingPeriodModel{
		ID: 1,
		Items: []gradebookmodel.GradeBookItemModel{
			{
				ID: 1, Weight: 100,
				Details: []gradebookmodel.GradeBookItemDetailModel{
					{ID: 1, MaxScore: 0, Weight: 50},
					{ID: 2, MaxScore: -5, Weight: 25},
					{ID: 3, MaxScore: 10, Weight: 25},
				},
			},
		},
	}
	cols := periodColumns(period)
	require.Len(t, cols, 1)
	assert.Equal(t, uint(3), cols[0].DetailID)
}

func TestBuildPeriodGradeRowsDensifies(t *testing.T) {
	periods := []gradebookmodel.GradeBookGradingPeriodModel{
		detailedPeriod(1), detailedPeriod(2), detailedPeriod(3),
	}

	t.Run("no persisted grades: one placeholder per period", func(t *testing.T) {
		enr := enrollmentmodel.EnrollmentModel{ID: 5}
		rows := buildPeriodGradeRows(enr, periods)
		require.Len(t, rows, 3)
		for i, row := range rows {
			assert.Nil(t, row.ID)
			assert.Equal(t, periods[i].ID, row.GradebookGradingPeriodID)
			assert.Equal(t, uint(5), row.EnrollmentID)
			assert.Equal(t, 0.0, row.Grade)
			assert.False(t, row.IsPosted)
			assert.False(t, row.IsOverridden)
		}
	})

	t.Run("persisted grade wins over recommended", func(t *testing.T) {
		enr := enrollmentmodel.EnrollmentModel{
			ID: 5,
			GradebookScores: []model.GradeBookScoreModel{
				{GradebookItemDetailID: 100, Score: 20},
				{GradebookItemDetailID: 101, Score: 20},
				{GradebookItemDetailID: 102, Score: 100},
			},
			GradingPeriodGrades: []model.GradingPeriodGradeModel{
				{ID: 42, GradebookGradingPeriodID: 2, Grade: 88, IsPosted: true},
			},
		}
		rows := buildPeriodGradeRows(enr, periods)
		require.Len(t, rows, 3)

		// period 1: placeholder, recommended from raw scores
		assert.Nil(t, rows[0].ID)
		assert.Equal(t, 100.0, rows[0].Grade)
		assert.Equal(t, 100.0, rows[0].RecommendedGrade)

		// period 2: persisted row
		require.NotNil(t, rows[1].ID)
		assert.Equal(t, uint(42), *rows[1].ID)
		assert.Equal(t, 88.0, rows[1].Grade)
		assert.Equal(t, 100.0, rows[1].RecommendedGrade)
		assert.True(t, rows[1].IsOverridden)
		assert.True(t, rows[1].IsPosted)
	})
}

func TestBuildScoreRowsDensifies(t *testing.T) {
	periods := []gradebookmodel.GradeBookGradingPeriodModel{detailedPeriod(1)}

	t.Run("empty enrollment gets the full zero grid", func(t *testing.T) {
		enr := enrollmentmodel.EnrollmentModel{ID: 9}
		rows := buildScoreRows(enr, periods)
		require.Len(t, rows, 3)
		for _, row := range rows {
			assert.Nil(t, row.ID)
			assert.Equal(t, uint(9), row.EnrollmentID)
			assert.Equal(t, 0.0, row.Score)
		}
	})

	t.Run("persisted scores fill their cells", func(t *testing.T) {
		enr := enrollmentmodel.EnrollmentModel{
			ID: 9,
			GradebookScores: []model.GradeBookScoreModel{
				{ID: 77, GradebookItemDetailID: 101, Score: 15},
			},
		}
		rows := buildScoreRows(enr, periods)
		require.Len(t, rows, 3)

		assert.Nil(t, rows[0].ID)
		require.NotNil(t, rows[1].ID)
		assert.Equal(t, uint(77), *rows[1].ID)
		assert.Equal(t, 15.0, rows[1].Score)
		assert.Equal(t, uint(101), rows[1].GradebookItemDetailID)
		assert.Nil(t, rows[2].ID)
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 51.0, round2(51.0))
	assert.Equal(t, 90.06, round2(90.0575))
	assert.Equal(t, 0.01, round2(0.005))
	assert.Equal(t, 0.0, round2(0.004))
}
