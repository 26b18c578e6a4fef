// File: models/reminder.go
package models

// ReminderPayload is the asynq task body for an appointment reminder push.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	PatientID     string `json:"patientId"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
}
