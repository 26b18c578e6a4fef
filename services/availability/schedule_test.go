// File: services/availability/schedule_test.go
package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStartForAlwaysMonday(t *testing.T) {
	// 2025-01-06 is a Monday.
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		anchor := monday.AddDate(0, 0, i).Add(15 * time.Hour)
		got := WeekStartFor(anchor)
		assert.Equal(t, monday, got, "anchor %s", anchor.Format(DateLayout))
		assert.Equal(t, time.Monday, got.Weekday())
	}
}

func TestWeekStartForSundayBelongsToPrecedingMonday(t *testing.T) {
	sunday := time.Date(2025, 1, 12, 10, 0, 0, 0, time.UTC)
	got := WeekStartFor(sunday)
	assert.Equal(t, "2025-01-06", got.Format(DateLayout))
}

func TestScheduleContextValidate(t *testing.T) {
	assert.NoError(t, ScheduleContext{ClinicID: "c1", DoctorID: "d1"}.Validate())
	assert.ErrorIs(t, ScheduleContext{DoctorID: "d1"}.Validate(), ErrNoContextSelected)
	assert.ErrorIs(t, ScheduleContext{ClinicID: "c1"}.Validate(), ErrNoContextSelected)
	assert.ErrorIs(t, ScheduleContext{}.Validate(), ErrNoContextSelected)
}

func TestDefaultForDate(t *testing.T) {
	sctx := ScheduleContext{ClinicID: "c1", DoctorID: "d1"}
	today := time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC)

	future := DefaultForDate(sctx, "2025-01-09", today)
	require.True(t, future.Open)
	require.Len(t, future.Slots, 16)
	for _, s := range future.Slots {
		assert.True(t, s.Available)
	}

	sameDay := DefaultForDate(sctx, "2025-01-08", today)
	assert.False(t, sameDay.Open)
	assert.Equal(t, 0, sameDay.AvailableCount())

	past := DefaultForDate(sctx, "2025-01-01", today)
	assert.False(t, past.Open)
	for _, s := range past.Slots {
		assert.False(t, s.Available)
	}
}

func TestAvailableCountIgnoresFlagsOnOffDay(t *testing.T) {
	sctx := ScheduleContext{ClinicID: "c1", DoctorID: "d1"}
	today := time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC)

	day := DefaultForDate(sctx, "2025-01-09", today)
	day.Open = false
	assert.Equal(t, 0, day.AvailableCount())
	assert.True(t, day.HasAvailableSlot())
}
