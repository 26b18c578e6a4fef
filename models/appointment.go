// File: models/appointment.go
package models

import "time"

// Appointment statuses.
const (
	AppointmentUpcoming  = "upcoming"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Notification statuses for appointment reminders.
const (
	NotificationPending = "pending"
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
)

// Appointment is a patient-facing booking with a doctor.
// Field names mirror the stored documents (patient_name, gmeet_link, ...).
type Appointment struct {
	ID                 string    `bson:"id" json:"id"`
	ClinicID           string    `bson:"clinicId" json:"clinic_id"`
	DoctorID           string    `bson:"doctorId" json:"doctor_id"`
	PatientID          string    `bson:"patientId,omitempty" json:"patient_id,omitempty"`
	PatientName        string    `bson:"patient_name" json:"patient_name"`
	Phone              string    `bson:"phone" json:"phone"`
	Status             string    `bson:"status" json:"status"`
	DateTime           time.Time `bson:"dateTime" json:"date_time"`
	Duration           int       `bson:"duration" json:"duration"` // minutes
	Symptoms           string    `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	DoctorNotes        string    `bson:"doctor_notes,omitempty" json:"doctor_notes,omitempty"`
	GMeetLink          string    `bson:"gmeet_link,omitempty" json:"gmeet_link,omitempty"`
	NotificationStatus string    `bson:"notification_status,omitempty" json:"notification_status,omitempty"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updated_at"`
}

// AppointmentListFilter narrows an appointment listing the way the
// appointments screen does: one status tab plus a free-text search over
// patient name and phone.
type AppointmentListFilter struct {
	Tab    string `json:"tab" form:"tab"` // all | upcoming | today | completed | cancelled
	Search string `json:"search" form:"search"`
}
