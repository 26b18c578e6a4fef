// File: services/availability/interface.go
package availability

import (
	"context"
	"sync"
	"time"

	availabilityRepo "clinicore/database/repository/availability"
	"clinicore/models"
)

// SaveReport summarizes a week save: which days were written, which
// failed, and whether written days were rolled back after a failure.
type SaveReport struct {
	SavedDates  []string `json:"savedDates"`
	FailedDates []string `json:"failedDates"`
	RolledBack  bool     `json:"rolledBack"`
}

// Service manages weekly availability schedules.
type Service interface {
	// LoadWeek assembles the Monday-anchored week containing anchor,
	// filling unstored days from the date-based default policy.
	LoadWeek(ctx context.Context, sctx ScheduleContext, anchor time.Time) (*WeekSchedule, error)
	// ToggleSlot flips one slot's availability and persists the day.
	// The slot label may be in 12-hour or 24-hour form.
	ToggleSlot(ctx context.Context, sctx ScheduleContext, date, slotLabel string) (*models.AvailabilityDay, error)
	// ToggleDayOff flips the day's working flag, keeping individual
	// slot selections so re-opening restores them.
	ToggleDayOff(ctx context.Context, sctx ScheduleContext, date string) (*models.AvailabilityDay, error)
	// SaveWeek persists all seven days, rolling written days back to
	// their prior stored state when any write fails.
	SaveWeek(ctx context.Context, week *WeekSchedule) (*SaveReport, error)
	// DayAvailability returns the effective day record for booking
	// checks, applying the default policy when nothing is stored.
	DayAvailability(ctx context.Context, sctx ScheduleContext, date string) (*models.AvailabilityDay, error)
}

// DefaultAvailabilityService implements Service over an
// AvailabilityRepository.
type DefaultAvailabilityService struct {
	repo availabilityRepo.AvailabilityRepository

	mu       sync.Mutex
	dayLocks map[string]*sync.Mutex

	now func() time.Time
}

// NewAvailabilityService constructs a new DefaultAvailabilityService.
func NewAvailabilityService(repo availabilityRepo.AvailabilityRepository) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		repo:     repo,
		dayLocks: make(map[string]*sync.Mutex),
		now:      time.Now,
	}
}

// lockFor returns the mutex serializing writes for one day key. Writes
// to the same (clinic, doctor, date) go through it so concurrent
// toggles cannot interleave their read-modify-write cycles.
func (s *DefaultAvailabilityService) lockFor(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.dayLocks[key]
	if !ok {
		l = &sync.Mutex{}
		s.dayLocks[key] = l
	}
	return l
}
