// File: services/appointment/appointment.go
package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clinicore/models"
	"clinicore/services/availability"
	"clinicore/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultAppointmentService) Create(ctx context.Context, req CreateRequest) (*models.Appointment, error) {
	sctx := availability.ScheduleContext{ClinicID: req.ClinicID, DoctorID: req.DoctorID}
	date := req.DateTime.Format(availability.DateLayout)
	slotTime := req.DateTime.Format("15:04")

	day, err := s.Availability.DayAvailability(ctx, sctx, date)
	if err != nil {
		return nil, err
	}
	if !day.Open {
		return nil, fmt.Errorf("doctor is not working on %s", date)
	}
	slot := day.Slot(slotTime)
	if slot == nil {
		return nil, fmt.Errorf("no slot at %s on %s", slotTime, date)
	}
	if !slot.Available {
		return nil, fmt.Errorf("slot %s on %s is not available", slotTime, date)
	}

	appt := &models.Appointment{
		ID:                 uuid.NewString(),
		ClinicID:           req.ClinicID,
		DoctorID:           req.DoctorID,
		PatientID:          req.PatientID,
		PatientName:        req.PatientName,
		Phone:              req.Phone,
		Status:             models.AppointmentUpcoming,
		DateTime:           req.DateTime,
		Duration:           req.Duration,
		Symptoms:           req.Symptoms,
		NotificationStatus: models.NotificationPending,
	}
	if err := s.Repo.Create(ctx, appt); err != nil {
		return nil, err
	}

	s.scheduleReminder(ctx, appt)
	return appt, nil
}

// scheduleReminder enqueues the pre-appointment push. A scheduling
// failure does not fail the booking; the appointment just goes without
// a reminder.
func (s *DefaultAppointmentService) scheduleReminder(ctx context.Context, appt *models.Appointment) {
	if s.Reminders == nil || appt.PatientID == "" {
		return
	}
	fireAt := appt.DateTime.Add(-s.ReminderLead)
	if fireAt.Before(time.Now()) {
		return
	}
	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		Title:         "Upcoming appointment",
		Body:          fmt.Sprintf("Your appointment is at %s.", appt.DateTime.Format("3:04 PM, Jan 2")),
		FireDate:      fireAt.Format(time.RFC3339),
	}
	if err := s.Reminders.Schedule(ctx, payload, fireAt); err != nil {
		utils.GetLogger().Error("failed to schedule appointment reminder",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}

func (s *DefaultAppointmentService) Get(ctx context.Context, id string) (*models.Appointment, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultAppointmentService) List(ctx context.Context, clinicID string, filter models.AppointmentListFilter) ([]models.Appointment, error) {
	appts, err := s.Repo.GetAll(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format(availability.DateLayout)
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]models.Appointment, 0, len(appts))
	for _, a := range appts {
		switch filter.Tab {
		case "", "all":
		case "today":
			if a.DateTime.Format(availability.DateLayout) != today {
				continue
			}
		case models.AppointmentUpcoming, models.AppointmentCompleted, models.AppointmentCancelled:
			if a.Status != filter.Tab {
				continue
			}
		default:
			return nil, fmt.Errorf("unknown tab %q", filter.Tab)
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(a.PatientName), search) &&
			!strings.Contains(a.Phone, search) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered, nil
}

func (s *DefaultAppointmentService) Update(ctx context.Context, id string, req UpdateRequest) (*models.Appointment, error) {
	fields := map[string]interface{}{}
	if req.Status != nil {
		switch *req.Status {
		case models.AppointmentUpcoming, models.AppointmentCompleted, models.AppointmentCancelled:
		default:
			return nil, fmt.Errorf("unknown status %q", *req.Status)
		}
		fields["status"] = *req.Status
	}
	if req.DateTime != nil {
		fields["dateTime"] = *req.DateTime
	}
	if req.Duration != nil {
		fields["duration"] = *req.Duration
	}
	if req.Symptoms != nil {
		fields["symptoms"] = *req.Symptoms
	}
	if req.DoctorNotes != nil {
		fields["doctor_notes"] = *req.DoctorNotes
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	if err := s.Repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Completing a visit stamps the patient's last-visit date.
	if req.Status != nil && *req.Status == models.AppointmentCompleted && appt.PatientID != "" {
		visit := appt.DateTime
		if err := s.Patients.UpdateFields(ctx, appt.PatientID, map[string]interface{}{
			"lastVisit": visit,
		}); err != nil {
			utils.GetLogger().Warn("failed to record patient last visit",
				zap.String("patientId", appt.PatientID), zap.Error(err))
		}
	}
	return appt, nil
}

func (s *DefaultAppointmentService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultAppointmentService) Search(ctx context.Context, clinicID, prefix string) ([]models.Appointment, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return []models.Appointment{}, nil
	}
	return s.Repo.SearchByPatientName(ctx, clinicID, prefix)
}

func (s *DefaultAppointmentService) GenerateMeetLink(ctx context.Context, id string) (string, error) {
	if s.MeetLinks == nil {
		return "", fmt.Errorf("meet link provider not configured")
	}
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if appt.GMeetLink != "" {
		return appt.GMeetLink, nil
	}

	link, err := s.MeetLinks.CreateMeetLink(ctx, appt)
	if err != nil {
		return "", err
	}
	if err := s.Repo.UpdateFields(ctx, id, map[string]interface{}{
		"gmeet_link": link,
	}); err != nil {
		return "", err
	}
	return link, nil
}
