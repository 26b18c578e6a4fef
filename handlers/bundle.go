// File: handlers/bundle.go
package handlers

import (
	doctorRepo "clinicore/database/repository/doctor"
)

// HandlerBundle aggregates the handlers and repositories route
// registration needs.
type HandlerBundle struct {
	// DoctorRepo backs the auth middleware.
	DoctorRepo doctorRepo.DoctorRepository

	Doctor       *DoctorHandler
	Availability *AvailabilityHandler
	Appointment  *AppointmentHandler
	Patient      *PatientHandler
	Document     *DocumentHandler
	Dashboard    *DashboardHandler
	Assistant    *AssistantHandler
}
