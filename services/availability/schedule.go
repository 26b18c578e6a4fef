// File: services/availability/schedule.go
package availability

import (
	"time"

	"clinicore/models"
)

// DateLayout is the storage form for schedule dates.
const DateLayout = "2006-01-02"

// ScheduleContext names the clinic and doctor a schedule operation acts
// on. Every operation validates it up front so a missing selection
// fails loudly instead of writing under an empty key.
type ScheduleContext struct {
	ClinicID string
	DoctorID string
}

// Validate returns ErrNoContextSelected when either part is missing.
func (c ScheduleContext) Validate() error {
	if c.ClinicID == "" || c.DoctorID == "" {
		return ErrNoContextSelected
	}
	return nil
}

// WeekSchedule is the in-memory aggregate for one Monday-anchored week
// of a doctor's availability. Days holds exactly seven entries, Monday
// first.
type WeekSchedule struct {
	Context   ScheduleContext
	WeekStart time.Time
	Days      []*models.AvailabilityDay
}

// Day returns the day record for a date in this week, or nil.
func (w *WeekSchedule) Day(date string) *models.AvailabilityDay {
	for _, d := range w.Days {
		if d.Date == date {
			return d
		}
	}
	return nil
}

// WeekStartFor returns the Monday of the week containing anchor,
// truncated to midnight in anchor's location.
func WeekStartFor(anchor time.Time) time.Time {
	monday := anchor.AddDate(0, 0, -int((anchor.Weekday()+6)%7))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, anchor.Location())
}

// DefaultForDate is the policy for days with no stored record. Days
// after today default to a working day with every slot open; today and
// earlier default to closed so past capacity is never offered.
func DefaultForDate(ctx ScheduleContext, date string, today time.Time) *models.AvailabilityDay {
	todayStr := today.Format(DateLayout)
	open := date > todayStr
	return &models.AvailabilityDay{
		ClinicID: ctx.ClinicID,
		DoctorID: ctx.DoctorID,
		Date:     date,
		Open:     open,
		Slots:    NewDaySlots(open),
		Version:  0,
	}
}
