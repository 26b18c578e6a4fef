// File: services/dashboard/dashboard.go
package dashboard

import (
	"context"
	"time"

	appointmentRepo "clinicore/database/repository/appointment"
	patientRepo "clinicore/database/repository/patient"
	"clinicore/models"
	"clinicore/services/availability"
)

// Service assembles the dashboard's headline figures.
type Service interface {
	Stats(ctx context.Context, clinicID string) (*models.DashboardStats, error)
}

// DefaultDashboardService is the production implementation.
type DefaultDashboardService struct {
	Patients     patientRepo.PatientRepository
	Appointments appointmentRepo.AppointmentRepository
}

func (s *DefaultDashboardService) Stats(ctx context.Context, clinicID string) (*models.DashboardStats, error) {
	totalPatients, err := s.Patients.CountAll(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	todays, err := s.Appointments.GetByDateRange(ctx, clinicID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		TotalPatients:     totalPatients,
		TodayAppointments: len(todays),
	}
	for _, a := range todays {
		switch a.Status {
		case models.AppointmentCompleted:
			stats.CompletedToday++
		case models.AppointmentUpcoming:
			stats.UpcomingToday++
		}
	}

	weekStart := availability.WeekStartFor(now)
	weekEnd := weekStart.AddDate(0, 0, 7)
	week, err := s.Appointments.GetByDateRange(ctx, clinicID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	stats.WeekAppointments = len(week)

	return stats, nil
}
