// File: services/appointment/interface.go
package appointment

import (
	"context"
	"time"

	appointmentRepo "clinicore/database/repository/appointment"
	patientRepo "clinicore/database/repository/patient"
	"clinicore/models"
	"clinicore/services/availability"
	"clinicore/services/tasks"
)

// CreateRequest is the payload for booking an appointment.
type CreateRequest struct {
	ClinicID    string    `json:"clinic_id" binding:"required"`
	DoctorID    string    `json:"doctor_id" binding:"required"`
	PatientID   string    `json:"patient_id"`
	PatientName string    `json:"patient_name" binding:"required"`
	Phone       string    `json:"phone" binding:"required"`
	DateTime    time.Time `json:"date_time" binding:"required"`
	Duration    int       `json:"duration"`
	Symptoms    string    `json:"symptoms"`
}

// UpdateRequest carries the editable appointment fields. Nil pointers
// leave the stored value untouched.
type UpdateRequest struct {
	Status      *string    `json:"status"`
	DateTime    *time.Time `json:"date_time"`
	Duration    *int       `json:"duration"`
	Symptoms    *string    `json:"symptoms"`
	DoctorNotes *string    `json:"doctor_notes"`
}

// Service manages the appointment lifecycle.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*models.Appointment, error)
	Get(ctx context.Context, id string) (*models.Appointment, error)
	List(ctx context.Context, clinicID string, filter models.AppointmentListFilter) ([]models.Appointment, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*models.Appointment, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, clinicID, prefix string) ([]models.Appointment, error)
	// GenerateMeetLink creates a video call link for the appointment
	// and stores it on the record.
	GenerateMeetLink(ctx context.Context, id string) (string, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo         appointmentRepo.AppointmentRepository
	Patients     patientRepo.PatientRepository
	Availability availability.Service
	MeetLinks    MeetLinkProvider
	Reminders    tasks.ReminderScheduler
	ReminderLead time.Duration
}
