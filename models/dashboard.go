// File: models/dashboard.go
package models

// DashboardStats is the headline figure set for the dashboard screen.
type DashboardStats struct {
	TotalPatients     int64 `json:"totalPatients"`
	TodayAppointments int   `json:"todayAppointments"`
	CompletedToday    int   `json:"completedToday"`
	UpcomingToday     int   `json:"upcomingToday"`
	WeekAppointments  int   `json:"weekAppointments"`
}
