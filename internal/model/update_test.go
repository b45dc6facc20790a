package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lessonbook/internal/apperr"
)

func strPtr(s string) *string { return &s }

func TestRejectIntent(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusResponded, TeacherAssignment: strPtr("этюд 12")}

	require.NoError(t, RejectIntent{}.Apply(a))
	assert.Equal(t, AppointmentStatusRejected, a.Status)
	// Задание без нового значения не трогаем
	assert.Equal(t, "этюд 12", *a.TeacherAssignment)

	require.NoError(t, RejectIntent{TeacherAssignment: strPtr("перенос")}.Apply(a))
	assert.Equal(t, "перенос", *a.TeacherAssignment)
}

func TestAssignStatusIntent(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusPending}

	require.NoError(t, AssignStatusIntent{TeacherAssignment: strPtr("гаммы")}.Apply(a))
	assert.Equal(t, AppointmentStatusAssigned, a.Status)
	assert.Equal(t, "гаммы", *a.TeacherAssignment)
}

func TestPlainStatusIntent(t *testing.T) {
	for _, status := range []AppointmentStatus{
		AppointmentStatusPending,
		AppointmentStatusRequested,
		AppointmentStatusAssigned,
		AppointmentStatusResponded,
		AppointmentStatusDone,
		AppointmentStatusRejected,
	} {
		a := &Appointment{Status: AppointmentStatusPending}
		require.NoError(t, PlainStatusIntent{Status: status}.Apply(a))
		assert.Equal(t, status, a.Status)
	}
}

func TestPlainStatusIntentUnknown(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusAssigned}

	err := PlainStatusIntent{Status: "cancelled"}.Apply(a)

	var invalid *apperr.InvalidStatusError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "cancelled", invalid.Status)
	// Запись не изменилась
	assert.Equal(t, AppointmentStatusAssigned, a.Status)
}

func TestAssignTeacherIntent(t *testing.T) {
	t.Run("default status requested", func(t *testing.T) {
		a := &Appointment{Status: AppointmentStatusPending}

		require.NoError(t, AssignTeacherIntent{TeacherID: 7}.Apply(a))
		require.NotNil(t, a.TeacherID)
		assert.Equal(t, int64(7), *a.TeacherID)
		assert.Equal(t, AppointmentStatusRequested, a.Status)
	})

	t.Run("explicit status", func(t *testing.T) {
		a := &Appointment{Status: AppointmentStatusPending}

		intent := AssignTeacherIntent{TeacherID: 7, Status: AppointmentStatusAssigned}
		require.NoError(t, intent.Apply(a))
		assert.Equal(t, AppointmentStatusAssigned, a.Status)
	})

	t.Run("unknown status leaves appointment intact", func(t *testing.T) {
		a := &Appointment{Status: AppointmentStatusPending}

		err := AssignTeacherIntent{TeacherID: 7, Status: "unknown"}.Apply(a)

		var invalid *apperr.InvalidStatusError
		require.ErrorAs(t, err, &invalid)
		assert.Nil(t, a.TeacherID)
		assert.Equal(t, AppointmentStatusPending, a.Status)
	})
}

func TestRespondedIntent(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusRequested}

	require.NoError(t, RespondedIntent{Responded: true}.Apply(a))
	assert.Equal(t, AppointmentStatusResponded, a.Status)

	require.NoError(t, RespondedIntent{Responded: false}.Apply(a))
	assert.Equal(t, AppointmentStatusAssigned, a.Status)
}

func TestFieldPatchIntent(t *testing.T) {
	original := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)
	moved := original.Add(48 * time.Hour)
	a := &Appointment{Status: AppointmentStatusAssigned, StartTime: original}

	require.NoError(t, FieldPatchIntent{}.Apply(a))
	assert.Equal(t, original, a.StartTime)
	assert.Equal(t, AppointmentStatusAssigned, a.Status)

	require.NoError(t, FieldPatchIntent{StartTime: &moved, TeacherAssignment: strPtr("этюд")}.Apply(a))
	assert.Equal(t, moved, a.StartTime)
	assert.Equal(t, "этюд", *a.TeacherAssignment)
	assert.Equal(t, AppointmentStatusAssigned, a.Status)
}

func TestAppointmentStatusIsValid(t *testing.T) {
	valid := []AppointmentStatus{"pending", "requested", "assigned", "responded", "done", "rejected"}
	for _, s := range valid {
		assert.True(t, s.IsValid(), string(s))
	}
	for _, s := range []AppointmentStatus{"", "cancelled", "PENDING", "new"} {
		assert.False(t, s.IsValid(), string(s))
	}
}
