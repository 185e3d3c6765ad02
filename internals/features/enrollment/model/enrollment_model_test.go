// file: internals/features/enrollment/model/enrollment_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func logAt(id uint, action EnrollmentLogAction, at time.Time) EnrollmentLogModel {
	return EnrollmentLogModel{ID: id, Action: action, CreatedAt: at}
}

func TestLatestStatus(t *testing.T) {
	base := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)

	t.Run("no logs defaults to enroll", func(t *testing.T) {
		e := EnrollmentModel{}
		assert.Equal(t, ActionEnroll, e.LatestStatus())
	})

	t.Run("most recent entry wins", func(t *testing.T) {
		e := EnrollmentModel{EnrollmentLogs: []EnrollmentLogModel{
			logAt(1, ActionEnroll, base),
			logAt(3, ActionRegistrarApproved, base.Add(2*time.Hour)),
			logAt(2, ActionProgramChairApproved, base.Add(time.Hour)),
		}}
		assert.Equal(t, ActionRegistrarApproved, e.LatestStatus())
	})

	t.Run("same timestamp breaks by id", func(t *testing.T) {
		e := EnrollmentModel{EnrollmentLogs: []EnrollmentLogModel{
			logAt(5, ActionRegistrarApproved, base),
			logAt(4, ActionProgramChairApproved, base),
		}}
		assert.Equal(t, ActionRegistrarApproved, e.LatestStatus())
	})
}

func TestValidated(t *testing.T) {
	base := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)

	t.Run("both approvals present", func(t *testing.T) {
		e := EnrollmentModel{EnrollmentLogs: []EnrollmentLogModel{
			logAt(1, ActionEnroll, base),
			logAt(2, ActionProgramChairApproved, base.Add(time.Hour)),
			logAt(3, ActionRegistrarApproved, base.Add(2*time.Hour)),
		}}
		assert.True(t, e.Validated())
	})

	t.Run("registrar approval missing", func(t *testing.T) {
		e := EnrollmentModel{EnrollmentLogs: []EnrollmentLogModel{
			logAt(1, ActionEnroll, base),
			logAt(2, ActionProgramChairApproved, base.Add(time.Hour)),
		}}
		assert.False(t, e.Validated())
	})

	t.Run("approved then dropped", func(t *testing.T) {
		e := EnrollmentModel{EnrollmentLogs: []EnrollmentLogModel{
			logAt(1, ActionProgramChairApproved, base),
			logAt(2, ActionRegistrarApproved, base.Add(time.Hour)),
			logAt(3, ActionDropped, base.Add(2*time.Hour)),
			logAt(4, ActionRegistrarDroppedApproved, base.Add(3*time.Hour)),
		}}
		assert.False(t, e.Validated())
		assert.True(t, e.IsDropped())
	})

	t.Run("drop requested but not approved", func(t *testing.T) {
		e := EnrollmentModel{EnrollmentLogs: []EnrollmentLogModel{
			logAt(1, ActionProgramChairApproved, base),
			logAt(2, ActionRegistrarApproved, base.Add(time.Hour)),
			logAt(3, ActionDropped, base.Add(2*time.Hour)),
		}}
		assert.False(t, e.IsDropped())
		assert.True(t, e.Validated())
	})
}

func TestActionValid(t *testing.T) {
	for _, a := range []EnrollmentLogAction{
		ActionEnroll, ActionProgramChairApproved, ActionRegistrarApproved,
		ActionDropped, ActionProgramChairDroppedApproved, ActionRegistrarDroppedApproved,
	} {
		assert.True(t, a.Valid(), string(a))
	}
	assert.False(t, EnrollmentLogAction("graduated").Valid())
}

func TestActionLabel(t *testing.T) {
	assert.Equal(t, "Pending", ActionEnroll.Label())
	assert.Equal(t, "Officially Enrolled", ActionRegistrarApproved.Label())
	assert.Equal(t, "Officially Dropped", ActionRegistrarDroppedApproved.Label())
	assert.Equal(t, "Pending", EnrollmentLogAction("garbage").Label())
}
