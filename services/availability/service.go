// File: services/availability/service.go
package availability

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"clinicore/models"
	"clinicore/utils"

	"go.uber.org/zap"
)

func (s *DefaultAvailabilityService) LoadWeek(ctx context.Context, sctx ScheduleContext, anchor time.Time) (*WeekSchedule, error) {
	if err := sctx.Validate(); err != nil {
		return nil, err
	}

	weekStart := WeekStartFor(anchor)
	week := &WeekSchedule{
		Context:   sctx,
		WeekStart: weekStart,
		Days:      make([]*models.AvailabilityDay, 7),
	}
	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i).Format(DateLayout)
		day, err := s.loadDay(ctx, sctx, date)
		if err != nil {
			return nil, err
		}
		week.Days[i] = day
	}
	return week, nil
}

// loadDay fetches the stored day record or falls back to the date
// default. Stored slot flags are overlaid on the canonical grid so
// callers always see the full label set. The date-based default only
// applies when no record exists at all; labels a stored record does
// not carry read as unavailable.
func (s *DefaultAvailabilityService) loadDay(ctx context.Context, sctx ScheduleContext, date string) (*models.AvailabilityDay, error) {
	stored, err := s.repo.GetByDate(ctx, sctx.ClinicID, sctx.DoctorID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability for %s: %w", date, err)
	}
	if stored == nil {
		return DefaultForDate(sctx, date, s.now()), nil
	}
	stored.Slots = NormalizeSlots(stored.Slots, false)
	return stored, nil
}

func (s *DefaultAvailabilityService) ToggleSlot(ctx context.Context, sctx ScheduleContext, date, slotLabel string) (*models.AvailabilityDay, error) {
	if err := sctx.Validate(); err != nil {
		return nil, err
	}

	time24 := slotLabel
	if strings.Contains(slotLabel, " ") {
		converted, err := To24Hour(slotLabel)
		if err != nil {
			return nil, err
		}
		time24 = converted
	}

	lock := s.lockFor(sctx.ClinicID + "-" + sctx.DoctorID + "-" + date)
	lock.Lock()
	defer lock.Unlock()

	day, err := s.loadDay(ctx, sctx, date)
	if err != nil {
		return nil, err
	}
	slot := day.Slot(time24)
	if slot == nil {
		return nil, &UnknownSlotError{Date: date, Time: time24}
	}
	slot.Available = !slot.Available

	if err := s.persistDay(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}

func (s *DefaultAvailabilityService) ToggleDayOff(ctx context.Context, sctx ScheduleContext, date string) (*models.AvailabilityDay, error) {
	if err := sctx.Validate(); err != nil {
		return nil, err
	}

	lock := s.lockFor(sctx.ClinicID + "-" + sctx.DoctorID + "-" + date)
	lock.Lock()
	defer lock.Unlock()

	day, err := s.loadDay(ctx, sctx, date)
	if err != nil {
		return nil, err
	}
	// Slot flags are kept as-is so switching the day back on restores
	// the doctor's previous selections.
	day.Open = !day.Open

	if err := s.persistDay(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}

// persistDay writes one day under the next version. A day switched off
// with no slot selections left is removed from storage entirely; its
// absence then means "default for this date".
func (s *DefaultAvailabilityService) persistDay(ctx context.Context, day *models.AvailabilityDay) error {
	day.Version++
	day.UpdatedAt = s.now()
	if !day.Open && !day.HasAvailableSlot() {
		if err := s.repo.Delete(ctx, day.ClinicID, day.DoctorID, day.Date); err != nil {
			return fmt.Errorf("failed to clear availability for %s: %w", day.Date, err)
		}
		return nil
	}
	if err := s.repo.Upsert(ctx, day); err != nil {
		return fmt.Errorf("failed to save availability for %s: %w", day.Date, err)
	}
	return nil
}

func (s *DefaultAvailabilityService) SaveWeek(ctx context.Context, week *WeekSchedule) (*SaveReport, error) {
	if err := week.Context.Validate(); err != nil {
		return nil, err
	}
	if len(week.Days) != 7 {
		return nil, fmt.Errorf("week must carry exactly 7 days, got %d", len(week.Days))
	}

	sctx := week.Context

	// Snapshot what storage holds now so a partial failure can be
	// undone. A nil snapshot means the day had no stored record.
	snapshots := make(map[string]*models.AvailabilityDay, len(week.Days))
	for _, day := range week.Days {
		prior, err := s.repo.GetByDate(ctx, sctx.ClinicID, sctx.DoctorID, day.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to snapshot %s before save: %w", day.Date, err)
		}
		snapshots[day.Date] = prior
	}

	type outcome struct {
		date string
		err  error
	}
	results := make([]outcome, len(week.Days))
	clones := make([]*models.AvailabilityDay, len(week.Days))

	var wg sync.WaitGroup
	for i, day := range week.Days {
		wg.Add(1)
		go func(i int, day *models.AvailabilityDay) {
			defer wg.Done()
			d := day.Clone()
			d.ClinicID = sctx.ClinicID
			d.DoctorID = sctx.DoctorID
			clones[i] = d
			results[i] = outcome{date: d.Date, err: s.persistDay(ctx, d)}
		}(i, day)
	}
	wg.Wait()

	report := &SaveReport{}
	for _, r := range results {
		if r.err != nil {
			report.FailedDates = append(report.FailedDates, r.date)
			utils.GetLogger().Error("week save failed for day",
				zap.String("date", r.date), zap.Error(r.err))
		} else {
			report.SavedDates = append(report.SavedDates, r.date)
		}
	}
	if len(report.FailedDates) == 0 {
		// Carry the bumped versions back onto the aggregate so the same
		// week can be saved again without tripping the stale-write guard.
		for i, day := range week.Days {
			day.ClinicID = sctx.ClinicID
			day.DoctorID = sctx.DoctorID
			day.Version = clones[i].Version
			day.UpdatedAt = clones[i].UpdatedAt
		}
		return report, nil
	}

	// Roll saved days back to their snapshots so the stored week never
	// mixes old and new state.
	for _, date := range report.SavedDates {
		if err := s.restoreSnapshot(ctx, sctx, date, snapshots[date], week.Day(date)); err != nil {
			utils.GetLogger().Error("rollback failed for day",
				zap.String("date", date), zap.Error(err))
			continue
		}
	}
	report.RolledBack = true
	report.SavedDates = nil

	return report, fmt.Errorf("failed to save week of %s: %d day(s) could not be written",
		week.WeekStart.Format(DateLayout), len(report.FailedDates))
}

// restoreSnapshot puts one day back to its pre-save stored state. The
// restore writes under a version above the one the save used so the
// version guard accepts it.
func (s *DefaultAvailabilityService) restoreSnapshot(ctx context.Context, sctx ScheduleContext, date string, snapshot, saved *models.AvailabilityDay) error {
	if snapshot == nil {
		return s.repo.Delete(ctx, sctx.ClinicID, sctx.DoctorID, date)
	}
	restored := snapshot.Clone()
	restored.Version = saved.Version + 2
	restored.UpdatedAt = s.now()
	return s.repo.Upsert(ctx, restored)
}

func (s *DefaultAvailabilityService) DayAvailability(ctx context.Context, sctx ScheduleContext, date string) (*models.AvailabilityDay, error) {
	if err := sctx.Validate(); err != nil {
		return nil, err
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return s.loadDay(ctx, sctx, date)
}
